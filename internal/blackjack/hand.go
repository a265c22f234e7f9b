package blackjack

import "github.com/arcanaland/parlor/internal/card"

// BustLimit is the highest value a hand can hold without busting
const BustLimit = 21

// Hand is a Blackjack hand with a running score.
// Aces count 11 until AdjustForAce demotes them to 1.
type Hand struct {
	cards []card.Card
	value int
	aces  int // aces still counted as 11
}

// AddCard appends c and adds its table value
func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
	h.value += c.Rank.BlackjackValue()
	if c.Rank == card.Ace {
		h.aces++
	}
}

// AdjustForAce demotes soft aces from 11 to 1 while the hand is bust
func (h *Hand) AdjustForAce() {
	for h.value > BustLimit && h.aces > 0 {
		h.value -= 10
		h.aces--
	}
}

// Value returns the current score
func (h *Hand) Value() int { return h.value }

// SoftAces returns how many aces are still counted as 11
func (h *Hand) SoftAces() int { return h.aces }

// Busted reports whether the score is over 21
func (h *Hand) Busted() bool { return h.value > BustLimit }

// Len returns the number of cards held
func (h *Hand) Len() int { return len(h.cards) }

// Cards returns the cards in draw order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

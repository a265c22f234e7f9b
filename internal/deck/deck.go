package deck

import (
	"errors"
	"math/rand"

	"github.com/arcanaland/parlor/internal/card"
)

// ErrEmpty is returned when dealing from a deck with no cards left
var ErrEmpty = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// Deck is an ordered pile of cards dealt from the end
type Deck struct {
	cards []card.Card
	rng   *rand.Rand // nil uses the package-level source
}

// New creates a full 52-card deck in suit-major, rank-minor order.
// The deck is not shuffled.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]card.Card, 0, Size),
		rng:   rng,
	}
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			d.cards = append(d.cards, card.New(rank, suit))
		}
	}
	return d
}

// FromCards creates a stacked deck. The last card given is dealt first.
func FromCards(rng *rand.Rand, cards ...card.Card) *Deck {
	d := &Deck{
		cards: make([]card.Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Deal removes and returns the last card
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmpty
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// Len returns the number of cards left to deal
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has run out
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in deal-last order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

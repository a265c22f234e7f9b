package card

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownRank is returned when a rank name does not match any rank.
var ErrUnknownRank = errors.New("unknown rank")

// Suit is one of the four French suits
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Hearts, Diamonds, Spades, Clubs}

var suitNames = [...]string{"Hearts", "Diamonds", "Spades", "Clubs"}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "•"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank from Two up to Ace
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a suit
const NumRanks = 13

// Ranks lists every rank in deck construction order
var Ranks = [NumRanks]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Jack", "Queen", "King", "Ace",
}

// blackjackValues is the shared point table; Ace starts soft at 11
var blackjackValues = [NumRanks]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Plural returns the rank name in plural form, e.g. "Sixes"
func (r Rank) Plural() string {
	if r == Six {
		return r.String() + "es"
	}
	return r.String() + "s"
}

// BlackjackValue returns the rank's point value in Blackjack
func (r Rank) BlackjackValue() int {
	if !r.Valid() {
		return 0
	}
	return blackjackValues[r]
}

// Card is an immutable playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns the card of the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the long form, e.g. "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ParseRank matches a rank name case-insensitively ("six", "SIX", " Six ")
func ParseRank(s string) (Rank, error) {
	name := cases.Title(language.English).String(strings.TrimSpace(s))
	for _, r := range Ranks {
		if rankNames[r] == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

package gofish

import (
	"fmt"

	"github.com/arcanaland/parlor/internal/card"
)

// Side identifies one of the two hands at the table
type Side int

const (
	Player Side = iota
	Opponent
)

func (s Side) String() string {
	if s == Player {
		return "player"
	}
	return "opponent"
}

// Other returns the side across the table
func (s Side) Other() Side {
	if s == Player {
		return Opponent
	}
	return Player
}

// EventKind classifies what happened during a turn
type EventKind int

const (
	// Asked: Side asked the other side for Rank
	Asked EventKind = iota
	// CardsTaken: Side took Count cards of Rank from the other side
	CardsTaken
	// GoFish: the other side had no Rank; Side drew Card
	GoFish
	// DrewRequested: the go-fish draw matched the requested Rank
	DrewRequested
	// BookFormed: Side completed a book of Rank
	BookFormed
	// ReplacementDraw: Side had no playable cards and drew Card
	ReplacementDraw
	// DeckEmpty: the deck ran out and the game is over
	DeckEmpty
)

func (k EventKind) String() string {
	switch k {
	case Asked:
		return "asked"
	case CardsTaken:
		return "cards-taken"
	case GoFish:
		return "go-fish"
	case DrewRequested:
		return "drew-requested"
	case BookFormed:
		return "book-formed"
	case ReplacementDraw:
		return "replacement-draw"
	case DeckEmpty:
		return "deck-empty"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one observable step of the game, reported for rendering
type Event struct {
	Kind  EventKind
	Side  Side
	Rank  card.Rank
	Count int
	Card  card.Card
}

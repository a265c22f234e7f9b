package gofish

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/deck"
	"github.com/charmbracelet/log"
)

// InitialHandSize is the number of cards dealt to each side
const InitialHandSize = 7

var (
	ErrNotYourTurn  = errors.New("not your turn")
	ErrRankNotHeld  = errors.New("rank not in hand")
	ErrRankBooked   = errors.New("rank already booked")
	ErrGameOver     = errors.New("game is over")
	ErrNotDealt     = errors.New("cards have not been dealt")
	ErrAlreadyDealt = errors.New("cards already dealt")
)

// Result is the final standing from the player's point of view
type Result int

const (
	PlayerLoses Result = iota
	PlayerWins
)

func (r Result) String() string {
	if r == PlayerWins {
		return "player-wins"
	}
	return "player-loses"
}

// TurnResult reports a single request. Continues is true when the asking
// side keeps the turn.
type TurnResult struct {
	Continues bool
	Events    []Event
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used for game transitions
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is a two-handed game of Go Fish between the player and a scripted opponent
type Game struct {
	deck   *deck.Deck
	hands  [2]Hand
	turn   Side
	dealt  bool
	over   bool
	rng    *rand.Rand // nil uses the package-level source
	logger *log.Logger
}

// NewGame prepares a game on d. The opponent chooses its requests with rng.
func NewGame(d *deck.Deck, rng *rand.Rand, opts ...Option) *Game {
	g := &Game{
		deck:   d,
		turn:   Player,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Deal gives each side seven cards, alternating from the player
func (g *Game) Deal() ([]Event, error) {
	if g.dealt {
		return nil, ErrAlreadyDealt
	}

	var events []Event
	for i := 0; i < InitialHandSize; i++ {
		for _, side := range []Side{Player, Opponent} {
			c, err := g.deck.Deal()
			if err != nil {
				return events, fmt.Errorf("initial deal: %w", err)
			}
			events = g.add(side, c, events)
		}
	}
	g.dealt = true
	g.logger.Debug("dealt hands", "player", g.hands[Player].Size(), "opponent", g.hands[Opponent].Size(), "deck", g.deck.Len())

	events = g.readyNext(events)
	return events, nil
}

// AskOpponent is the player's request for rank r
func (g *Game) AskOpponent(r card.Rank) (TurnResult, error) {
	if err := g.check(Player); err != nil {
		return TurnResult{}, err
	}
	if !r.Valid() {
		return TurnResult{}, fmt.Errorf("ask for %s: %w", r, card.ErrUnknownRank)
	}

	h := &g.hands[Player]
	if h.Booked(r) {
		return TurnResult{}, fmt.Errorf("ask for %s: %w", r.Plural(), ErrRankBooked)
	}
	if !h.HasCard(r) {
		return TurnResult{}, fmt.Errorf("ask for %s: %w", r.Plural(), ErrRankNotHeld)
	}
	return g.ask(Player, r)
}

// AskPlayer is the opponent's request, chosen uniformly from its own ranks
func (g *Game) AskPlayer() (TurnResult, error) {
	if err := g.check(Opponent); err != nil {
		return TurnResult{}, err
	}

	candidates := g.hands[Opponent].Candidates()
	if len(candidates) == 0 {
		return TurnResult{}, fmt.Errorf("opponent request: %w", ErrRankNotHeld)
	}
	return g.ask(Opponent, candidates[g.intn(len(candidates))])
}

func (g *Game) check(side Side) error {
	switch {
	case !g.dealt:
		return ErrNotDealt
	case g.over:
		return ErrGameOver
	case g.turn != side:
		return fmt.Errorf("%s asked on %s turn: %w", side, g.turn, ErrNotYourTurn)
	}
	return nil
}

func (g *Game) ask(asker Side, r card.Rank) (TurnResult, error) {
	me, other := &g.hands[asker], &g.hands[asker.Other()]
	events := []Event{{Kind: Asked, Side: asker, Rank: r}}

	continues := false
	if other.HasCard(r) {
		n := other.take(r)
		events = append(events, Event{Kind: CardsTaken, Side: asker, Rank: r, Count: n})
		if me.add(r, n) {
			events = append(events, Event{Kind: BookFormed, Side: asker, Rank: r})
		}
		continues = true
		g.logger.Debug("cards taken", "side", asker, "rank", r, "count", n)
	} else {
		c, err := g.deck.Deal()
		if err != nil {
			return TurnResult{}, fmt.Errorf("go fish: %w", err)
		}
		events = append(events, Event{Kind: GoFish, Side: asker, Rank: r, Card: c})
		events = g.add(asker, c, events)
		if c.Rank == r {
			events = append(events, Event{Kind: DrewRequested, Side: asker, Rank: r, Card: c})
			continues = true
		}
		g.logger.Debug("go fish", "side", asker, "requested", r, "drew", c, "continues", continues)
	}

	if !continues {
		g.turn = asker.Other()
	}
	events = g.endTurn(asker, events)
	return TurnResult{Continues: continues, Events: events}, nil
}

// endTurn refills a hand left without playable cards and ends the game
// once the deck runs out
func (g *Game) endTurn(actor Side, events []Event) []Event {
	if len(g.hands[actor].Candidates()) == 0 && !g.deck.Empty() {
		events = g.replace(actor, events)
	}
	if g.deck.Empty() {
		return g.finish(events)
	}
	return g.readyNext(events)
}

// readyNext makes sure the side about to ask holds something to ask for
func (g *Game) readyNext(events []Event) []Event {
	if len(g.hands[g.turn].Candidates()) > 0 {
		return events
	}
	if g.deck.Empty() {
		return g.finish(events)
	}
	events = g.replace(g.turn, events)
	if g.deck.Empty() {
		return g.finish(events)
	}
	return events
}

func (g *Game) replace(side Side, events []Event) []Event {
	c, err := g.deck.Deal()
	if err != nil {
		return events
	}
	events = append(events, Event{Kind: ReplacementDraw, Side: side, Card: c})
	g.logger.Debug("replacement draw", "side", side, "card", c)
	return g.add(side, c, events)
}

func (g *Game) add(side Side, c card.Card, events []Event) []Event {
	if g.hands[side].AddCard(c) {
		events = append(events, Event{Kind: BookFormed, Side: side, Rank: c.Rank})
		g.logger.Debug("book formed", "side", side, "rank", c.Rank, "books", g.hands[side].Books())
	}
	return events
}

func (g *Game) finish(events []Event) []Event {
	g.over = true
	g.logger.Info("game over",
		"player_books", g.hands[Player].Books(),
		"opponent_books", g.hands[Opponent].Books(),
		"result", g.Result())
	return append(events, Event{Kind: DeckEmpty})
}

func (g *Game) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Turn returns the side whose turn it is
func (g *Game) Turn() Side { return g.turn }

// Over reports whether the deck has run out
func (g *Game) Over() bool { return g.over }

// Hand returns the hand held by side
func (g *Game) Hand(side Side) *Hand { return &g.hands[side] }

// DeckLen returns the number of cards left to draw
func (g *Game) DeckLen() int { return g.deck.Len() }

// Result compares books. Equal books count as a loss for the player.
func (g *Game) Result() Result {
	if g.hands[Player].Books() > g.hands[Opponent].Books() {
		return PlayerWins
	}
	return PlayerLoses
}

package blackjack

import (
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/deck"
	"github.com/charmbracelet/log"
)

// DealerStandsAt is the value at which the dealer stops drawing
const DealerStandsAt = 17

// ErrWrongPhase is returned when an action is not allowed in the current phase
var ErrWrongPhase = errors.New("action not allowed in this phase")

// Phase is a step of a round
type Phase int

const (
	Betting Phase = iota
	PlayerTurn
	DealerTurn
	Resolved
)

func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player-turn"
	case DealerTurn:
		return "dealer-turn"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome is how a round finished
type Outcome int

const (
	Undecided Outcome = iota
	PlayerBust
	DealerBust
	PlayerWins
	DealerWins
	Push
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case PlayerBust:
		return "player-bust"
	case DealerBust:
		return "dealer-bust"
	case PlayerWins:
		return "player-wins"
	case DealerWins:
		return "dealer-wins"
	case Push:
		return "push"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PlayerWon reports whether the player collects the bet
func (o Outcome) PlayerWon() bool {
	return o == PlayerWins || o == DealerBust
}

// PlayerLost reports whether the player forfeits the bet
func (o Outcome) PlayerLost() bool {
	return o == DealerWins || o == PlayerBust
}

// Compare resolves two final, unbusted-player hand values
func Compare(player, dealer int) Outcome {
	switch {
	case dealer > BustLimit:
		return DealerBust
	case player > dealer:
		return PlayerWins
	case player < dealer:
		return DealerWins
	default:
		return Push
	}
}

// Move is the player's choice during their turn
type Move int

const (
	Hit Move = iota
	Stand
)

func (m Move) String() string {
	if m == Hit {
		return "hit"
	}
	return "stand"
}

// Option configures a Round or Session
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for state transitions
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Round is a single hand of Blackjack against the dealer
type Round struct {
	deck    *deck.Deck
	chips   *Chips
	player  Hand
	dealer  Hand
	phase   Phase
	outcome Outcome
	logger  *log.Logger
}

// NewRound starts a round in the betting phase. The round mutates chips
// when it resolves.
func NewRound(d *deck.Deck, chips *Chips, opts ...Option) *Round {
	o := buildOptions(opts)
	return &Round{
		deck:   d,
		chips:  chips,
		phase:  Betting,
		logger: o.logger,
	}
}

// PlaceBet validates the wager and deals two cards each, dealer first
func (r *Round) PlaceBet(amount int) error {
	if r.phase != Betting {
		return fmt.Errorf("place bet during %s: %w", r.phase, ErrWrongPhase)
	}
	if err := r.chips.AcceptBet(amount); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		if _, err := r.draw(&r.dealer); err != nil {
			return err
		}
		if _, err := r.drawPlayer(); err != nil {
			return err
		}
	}

	r.phase = PlayerTurn
	r.logger.Debug("dealt initial hands", "bet", amount, "player", r.player.Value(), "dealer", r.dealer.Value())
	return nil
}

// Hit deals one card to the player. A bust resolves the round at once.
func (r *Round) Hit() (card.Card, error) {
	if r.phase != PlayerTurn {
		return card.Card{}, fmt.Errorf("hit during %s: %w", r.phase, ErrWrongPhase)
	}

	c, err := r.drawPlayer()
	if err != nil {
		return card.Card{}, err
	}
	r.logger.Debug("player hit", "card", c, "value", r.player.Value())

	if r.player.Busted() {
		r.resolve(PlayerBust)
	}
	return c, nil
}

// Stand ends the player's turn, plays the dealer and resolves the round
func (r *Round) Stand() error {
	if r.phase != PlayerTurn {
		return fmt.Errorf("stand during %s: %w", r.phase, ErrWrongPhase)
	}
	r.phase = DealerTurn
	r.logger.Debug("player stands", "value", r.player.Value())

	for r.dealer.Value() < DealerStandsAt {
		c, err := r.draw(&r.dealer)
		if err != nil {
			return err
		}
		r.logger.Debug("dealer hit", "card", c, "value", r.dealer.Value())
	}

	r.resolve(Compare(r.player.Value(), r.dealer.Value()))
	return nil
}

// Play applies a move chosen by the player
func (r *Round) Play(m Move) error {
	switch m {
	case Hit:
		_, err := r.Hit()
		return err
	case Stand:
		return r.Stand()
	default:
		return fmt.Errorf("unknown move %d", int(m))
	}
}

// draw moves the top card of the deck into h.
// Dealer aces always count 11.
func (r *Round) draw(h *Hand) (card.Card, error) {
	c, err := r.deck.Deal()
	if err != nil {
		return card.Card{}, fmt.Errorf("deal during %s: %w", r.phase, err)
	}
	h.AddCard(c)
	return c, nil
}

// drawPlayer deals to the player and softens aces while over the limit
func (r *Round) drawPlayer() (card.Card, error) {
	c, err := r.draw(&r.player)
	if err != nil {
		return card.Card{}, err
	}
	r.player.AdjustForAce()
	return c, nil
}

func (r *Round) resolve(o Outcome) {
	r.outcome = o
	r.phase = Resolved
	switch {
	case o.PlayerWon():
		r.chips.WinBet()
	case o.PlayerLost():
		r.chips.LoseBet()
	}
	r.logger.Info("round resolved",
		"outcome", o,
		"player", r.player.Value(),
		"dealer", r.dealer.Value(),
		"bet", r.chips.Bet,
		"total", r.chips.Total)
}

// Phase returns the current phase
func (r *Round) Phase() Phase { return r.phase }

// Outcome returns the result, Undecided until the round resolves
func (r *Round) Outcome() Outcome { return r.outcome }

// Player returns the player's hand
func (r *Round) Player() *Hand { return &r.player }

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand { return &r.dealer }

// DealerUpCards returns the dealer's cards without the hole card
func (r *Round) DealerUpCards() []card.Card {
	cards := r.dealer.Cards()
	if len(cards) == 0 {
		return cards
	}
	return cards[1:]
}

// Chips returns a snapshot of the chips in play
func (r *Round) Chips() Chips { return *r.chips }

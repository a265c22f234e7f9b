package blackjack

import (
	"errors"
	"fmt"

	"github.com/arcanaland/parlor/internal/deck"
	"github.com/charmbracelet/log"
)

// DefaultChips is the stack a new session starts with
const DefaultChips = 100

// ErrUnresolved is returned when settling a round that has not finished
var ErrUnresolved = errors.New("round is not resolved")

// Session carries the chip total from one round into the next
type Session struct {
	total  int
	rounds int
	logger *log.Logger
}

// NewSession starts a session with the given chip total
func NewSession(total int, opts ...Option) *Session {
	o := buildOptions(opts)
	return &Session{total: total, logger: o.logger}
}

// NewRound starts a round staked with the session's current total
func (s *Session) NewRound(d *deck.Deck) *Round {
	return NewRound(d, &Chips{Total: s.total}, WithLogger(s.logger))
}

// Settle carries a resolved round's chip total forward
func (s *Session) Settle(r *Round) error {
	if r.Phase() != Resolved {
		return fmt.Errorf("settle round in %s: %w", r.Phase(), ErrUnresolved)
	}
	s.total = r.Chips().Total
	s.rounds++
	s.logger.Debug("session settled", "round", s.rounds, "total", s.total)
	return nil
}

// Total returns the carried chip total
func (s *Session) Total() int { return s.total }

// Rounds returns how many rounds have been settled
func (s *Session) Rounds() int { return s.rounds }

// Broke reports whether the player has no chips left to play with
func (s *Session) Broke() bool { return s.total <= 0 }

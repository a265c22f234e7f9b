package blackjack

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeBet       = errors.New("bet cannot be negative")
	ErrInsufficientChips = errors.New("bet exceeds chip total")
)

// Chips tracks the player's stack and the wager for the current round
type Chips struct {
	Total int
	Bet   int
}

// AcceptBet sets the wager if 0 <= amount <= Total
func (c *Chips) AcceptBet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBet, amount)
	}
	if amount > c.Total {
		return fmt.Errorf("%w: bet %d, have %d", ErrInsufficientChips, amount, c.Total)
	}
	c.Bet = amount
	return nil
}

// WinBet pays the wager to the player
func (c *Chips) WinBet() {
	c.Total += c.Bet
}

// LoseBet takes the wager from the player
func (c *Chips) LoseBet() {
	c.Total -= c.Bet
}

package blackjack

import (
	"errors"
	"testing"

	"github.com/arcanaland/parlor/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChips(t *testing.T) {
	c := &Chips{Total: 100}
	require.NoError(t, c.AcceptBet(30))
	c.WinBet()
	assert.Equal(t, 130, c.Total)
	c.LoseBet()
	assert.Equal(t, 100, c.Total)

	assert.NoError(t, c.AcceptBet(0))
	assert.NoError(t, c.AcceptBet(100))
	assert.ErrorIs(t, c.AcceptBet(-5), ErrNegativeBet)
	assert.ErrorIs(t, c.AcceptBet(101), ErrInsufficientChips)
	assert.Equal(t, 100, c.Bet)
}

func TestSessionCarriesTotal(t *testing.T) {
	s := NewSession(DefaultChips)

	// player 20 beats dealer 18
	r := s.NewRound(stacked(card.Ten, card.Ten, card.Eight, card.King))
	require.NoError(t, r.PlaceBet(40))
	require.NoError(t, r.Stand())
	require.NoError(t, s.Settle(r))
	assert.Equal(t, 140, s.Total())

	next := s.NewRound(stacked(card.Ten, card.Ten, card.King, card.Eight))
	assert.Equal(t, 140, next.Chips().Total)
	require.NoError(t, next.PlaceBet(140))
	require.NoError(t, next.Stand())
	require.NoError(t, s.Settle(next))

	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 2, s.Rounds())
	assert.True(t, s.Broke())
}

func TestSettleUnresolvedRound(t *testing.T) {
	s := NewSession(DefaultChips)
	r := s.NewRound(stacked(card.Ten, card.Ten, card.Eight, card.King))

	err := s.Settle(r)
	assert.True(t, errors.Is(err, ErrUnresolved))
	assert.Equal(t, DefaultChips, s.Total())
	assert.Equal(t, 0, s.Rounds())
	assert.False(t, s.Broke())
}

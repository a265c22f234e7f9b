package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/arcanaland/parlor/internal/blackjack"
	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/gofish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBet(t *testing.T) {
	chips := blackjack.Chips{Total: 50}

	tests := []struct {
		input string
		want  int
		err   error
	}{
		{"10", 10, nil},
		{" 50 ", 50, nil},
		{"0", 0, nil},
		{"51", 0, ErrBetOutOfRange},
		{"-1", 0, ErrBetOutOfRange},
		{"ten", 0, ErrNotANumber},
		{"", 0, ErrNotANumber},
		{"2.5", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		got, err := Bet(tt.input, chips)
		if tt.err != nil {
			assert.True(t, errors.Is(err, tt.err), "input %q: %v", tt.input, err)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestMove(t *testing.T) {
	m, err := Move("HIT")
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, m)

	m, err = Move(" stand\n")
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, m)

	_, err = Move("double")
	assert.ErrorIs(t, err, ErrUnknownMove)
}

func TestRank(t *testing.T) {
	h := &gofish.Hand{}
	h.AddCard(card.New(card.Six, card.Hearts))
	for _, suit := range card.Suits {
		h.AddCard(card.New(card.King, suit))
	}

	r, err := Rank("six", h)
	require.NoError(t, err)
	assert.Equal(t, card.Six, r)

	_, err = Rank("Seven", h)
	assert.ErrorIs(t, err, ErrNotInHand)

	_, err = Rank("King", h)
	assert.ErrorIs(t, err, ErrNotInHand, "booked ranks cannot be requested")

	_, err = Rank("6", h)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestYesNo(t *testing.T) {
	yes, err := YesNo("Y")
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = YesNo("n")
	require.NoError(t, err)
	assert.False(t, yes)

	_, err = YesNo("yes")
	assert.ErrorIs(t, err, ErrNotYesNo)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "That is not a number.", Message(ErrNotANumber))
	assert.Equal(t, "You can't bet that much.", Message(fmt.Errorf("wrapped: %w", ErrBetOutOfRange)))
	assert.Equal(t, "You must choose from your own hand.", Message(ErrNotInHand))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

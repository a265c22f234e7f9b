package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{New(Ace, Spades), "Ace of Spades"},
		{New(Two, Hearts), "Two of Hearts"},
		{New(Queen, Diamonds), "Queen of Diamonds"},
		{New(Ten, Clubs), "Ten of Clubs"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestBlackjackValue(t *testing.T) {
	want := map[Rank]int{
		Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9, Ten: 10,
		Jack: 10, Queen: 10, King: 10, Ace: 11,
	}
	for r, v := range want {
		assert.Equal(t, v, r.BlackjackValue(), "rank %s", r)
	}
	assert.Equal(t, 0, Rank(42).BlackjackValue())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Sixes", Six.Plural())
	assert.Equal(t, "Kings", King.Plural())
	assert.Equal(t, "Aces", Ace.Plural())
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		input string
		want  Rank
	}{
		{"six", Six},
		{"SIX", Six},
		{"  Queen ", Queen},
		{"aCE", Ace},
		{"Two", Two},
	}
	for _, tt := range tests {
		got, err := ParseRank(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "6", "Sixes", "joker"} {
		_, err := ParseRank(bad)
		assert.True(t, errors.Is(err, ErrUnknownRank), "input %q", bad)
	}
}

func TestSuitRendering(t *testing.T) {
	assert.True(t, Hearts.Red())
	assert.True(t, Diamonds.Red())
	assert.False(t, Spades.Red())
	assert.False(t, Clubs.Red())
	assert.Equal(t, "♠", Spades.Symbol())
	assert.Equal(t, "Suit(9)", Suit(9).String())
}

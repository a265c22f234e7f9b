package gofish

import (
	"testing"

	"github.com/arcanaland/parlor/internal/card"
	"github.com/stretchr/testify/assert"
)

func TestAddCardFormsBook(t *testing.T) {
	h := &Hand{}

	for i, suit := range card.Suits[:3] {
		assert.False(t, h.AddCard(card.New(card.King, suit)))
		assert.Equal(t, i+1, h.Count(card.King))
	}
	assert.Equal(t, []card.Rank{card.King}, h.Candidates())

	assert.True(t, h.AddCard(card.New(card.King, card.Clubs)))
	assert.Equal(t, 1, h.Books())
	assert.True(t, h.Booked(card.King))
	assert.Equal(t, 0, h.Count(card.King))
	assert.False(t, h.HasCard(card.King))
	assert.Empty(t, h.Candidates())
	assert.Equal(t, 0, h.Size())
}

func TestCandidatesSkipBookedAndEmptyRanks(t *testing.T) {
	h := &Hand{}
	h.AddCard(card.New(card.Two, card.Hearts))
	h.AddCard(card.New(card.Nine, card.Hearts))
	h.AddCard(card.New(card.Nine, card.Spades))
	for _, suit := range card.Suits {
		h.AddCard(card.New(card.Queen, suit))
	}

	assert.Equal(t, []card.Rank{card.Two, card.Nine}, h.Candidates())
	assert.Equal(t, 3, h.Size())
	assert.Equal(t, 1, h.Books())
}

func TestBooksOnlyGrow(t *testing.T) {
	h := &Hand{}
	last := 0
	for _, r := range card.Ranks {
		for _, suit := range card.Suits {
			h.AddCard(card.New(r, suit))
			assert.GreaterOrEqual(t, h.Books(), last)
			last = h.Books()
		}
	}
	assert.Equal(t, card.NumRanks, h.Books())
}

func TestTakeEmptiesRank(t *testing.T) {
	h := &Hand{}
	h.AddCard(card.New(card.Five, card.Hearts))
	h.AddCard(card.New(card.Five, card.Clubs))

	assert.Equal(t, 2, h.take(card.Five))
	assert.False(t, h.HasCard(card.Five))
	assert.Equal(t, 0, h.take(card.Five))
}

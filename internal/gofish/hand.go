package gofish

import "github.com/arcanaland/parlor/internal/card"

// BookSize is the number of same-rank cards that form a book
const BookSize = 4

type slot struct {
	count  int
	booked bool
}

// Hand is a Go Fish hand counted by rank. A completed book is taken out of
// play: its count drops to zero and the rank is marked booked for good.
type Hand struct {
	slots [card.NumRanks]slot
	books int
}

// AddCard adds one card and reports whether it completed a book
func (h *Hand) AddCard(c card.Card) bool {
	return h.add(c.Rank, 1)
}

func (h *Hand) add(r card.Rank, n int) bool {
	s := &h.slots[r]
	s.count += n
	if s.count < BookSize {
		return false
	}
	s.count = 0
	s.booked = true
	h.books++
	return true
}

// take removes and returns every card of rank r
func (h *Hand) take(r card.Rank) int {
	n := h.slots[r].count
	h.slots[r].count = 0
	return n
}

// HasCard reports whether the hand holds at least one card of rank r
func (h *Hand) HasCard(r card.Rank) bool {
	return h.slots[r].count > 0
}

// Count returns how many cards of rank r are held
func (h *Hand) Count(r card.Rank) int {
	return h.slots[r].count
}

// Booked reports whether rank r has been collected as a book
func (h *Hand) Booked(r card.Rank) bool {
	return h.slots[r].booked
}

// Books returns the number of completed books
func (h *Hand) Books() int {
	return h.books
}

// Candidates returns the ranks the hand may ask for, in rank order
func (h *Hand) Candidates() []card.Rank {
	var out []card.Rank
	for _, r := range card.Ranks {
		if s := h.slots[r]; !s.booked && s.count > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Size returns the number of cards held outside of books
func (h *Hand) Size() int {
	n := 0
	for _, s := range h.slots {
		n += s.count
	}
	return n
}

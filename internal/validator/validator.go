package validator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/arcanaland/parlor/internal/blackjack"
	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/gofish"
)

var (
	ErrNotANumber    = errors.New("bet is not a number")
	ErrBetOutOfRange = errors.New("bet is out of range")
	ErrUnknownMove   = errors.New("move must be hit or stand")
	ErrInvalidCard   = errors.New("not a card rank")
	ErrNotInHand     = errors.New("rank is not in hand")
	ErrNotYesNo      = errors.New("answer must be y or n")
)

// messages are shown to the player before the question is asked again
var messages = []struct {
	err error
	msg string
}{
	{ErrNotANumber, "That is not a number."},
	{ErrBetOutOfRange, "You can't bet that much."},
	{ErrUnknownMove, "Please enter hit or stand."},
	{ErrInvalidCard, "That's not a valid card."},
	{ErrNotInHand, "You must choose from your own hand."},
	{ErrNotYesNo, "Please enter y or n"},
}

// Message returns the text shown to the player for an input error
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}

// Bet parses a wager and checks it against the chips on hand
func Bet(input string, chips blackjack.Chips) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if amount < 0 || amount > chips.Total {
		return 0, ErrBetOutOfRange
	}
	return amount, nil
}

// Move parses "hit" or "stand" in any case
func Move(input string) (blackjack.Move, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hit":
		return blackjack.Hit, nil
	case "stand":
		return blackjack.Stand, nil
	default:
		return 0, ErrUnknownMove
	}
}

// Rank parses a rank name the player may ask for from hand
func Rank(input string, hand *gofish.Hand) (card.Rank, error) {
	r, err := card.ParseRank(input)
	if err != nil {
		return 0, ErrInvalidCard
	}
	for _, c := range hand.Candidates() {
		if c == r {
			return r, nil
		}
	}
	return 0, ErrNotInHand
}

// YesNo parses a y/n answer
func YesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, ErrNotYesNo
	}
}

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/parlor/internal/blackjack"
	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/gofish"
	"github.com/arcanaland/parlor/internal/validator"
)

const defaultWidth = 80

// Console reads answers line by line and writes prompts and table output
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	width   int
}

// New creates a console. The output width is taken from the terminal when
// out is one, otherwise 80 columns.
func New(in io.Reader, out io.Writer) *Console {
	width := defaultWidth
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		width:   width,
	}
}

// Printf writes formatted output
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of output
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readLine shows the question and returns the next input line.
// It returns io.EOF when input is exhausted.
func (c *Console) readLine(question string) (string, error) {
	fmt.Fprint(c.out, question)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// ask repeats the question until accept takes the answer
func (c *Console) ask(question string, accept func(string) error) error {
	for {
		line, err := c.readLine(question)
		if err != nil {
			return err
		}
		if err := accept(line); err != nil {
			c.Println(validator.Message(err))
			continue
		}
		return nil
	}
}

// Bet asks for a wager between 0 and the chip total
func (c *Console) Bet(chips blackjack.Chips) (int, error) {
	var amount int
	question := fmt.Sprintf("You have %d chip(s). How much would you like to bet? ", chips.Total)
	err := c.ask(question, func(s string) (err error) {
		amount, err = validator.Bet(s, chips)
		return err
	})
	return amount, err
}

// Move asks whether to hit or stand
func (c *Console) Move() (blackjack.Move, error) {
	var move blackjack.Move
	err := c.ask("Will you hit or stand? ", func(s string) (err error) {
		move, err = validator.Move(s)
		return err
	})
	return move, err
}

// Rank asks which rank to request from the opponent
func (c *Console) Rank(hand *gofish.Hand) (card.Rank, error) {
	var rank card.Rank
	err := c.ask("Which card would you like? ", func(s string) (err error) {
		rank, err = validator.Rank(s, hand)
		return err
	})
	return rank, err
}

// Confirm asks a y/n question
func (c *Console) Confirm(question string) (bool, error) {
	var yes bool
	err := c.ask(question, func(s string) (err error) {
		yes, err = validator.YesNo(s)
		return err
	})
	return yes, err
}

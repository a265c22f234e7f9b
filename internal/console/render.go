package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorize "github.com/fatih/color"

	"github.com/arcanaland/parlor/internal/blackjack"
	"github.com/arcanaland/parlor/internal/card"
	"github.com/arcanaland/parlor/internal/gofish"
)

const maxRuleWidth = 48

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1F7A4D")).
			Padding(0, 1).
			Bold(true)

	redCard   = colorize.New(colorize.FgHiRed)
	blackCard = colorize.New(colorize.FgHiWhite)
	heading   = colorize.New(colorize.FgCyan)
	hidden    = colorize.New(colorize.Faint)
)

// Banner prints a game title
func (c *Console) Banner(title string) {
	c.Println()
	c.Println(titleStyle.Render(" ♠ ♥ " + title + " ♦ ♣ "))
	c.Println()
}

// Rule prints a horizontal separator sized to the terminal
func (c *Console) Rule() {
	c.Println(strings.Repeat("─", min(c.width, maxRuleWidth)))
}

// CardString renders a card in its suit colour
func CardString(cd card.Card) string {
	label := fmt.Sprintf("%s %s", cd, cd.Suit.Symbol())
	if cd.Suit.Red() {
		return redCard.Sprint(label)
	}
	return blackCard.Sprint(label)
}

func (c *Console) cards(title string, cards []card.Card) {
	c.Println(heading.Sprint(title))
	for _, cd := range cards {
		c.Println("  " + CardString(cd))
	}
}

// ShowSome prints the table with the dealer's hole card face down
func (c *Console) ShowSome(r *blackjack.Round) {
	c.Rule()
	c.Println(heading.Sprint("The dealer has these cards:"))
	c.Println("  " + hidden.Sprint("<hidden card>"))
	for _, cd := range r.DealerUpCards() {
		c.Println("  " + CardString(cd))
	}
	c.cards(fmt.Sprintf("You have these cards (%d):", r.Player().Value()), r.Player().Cards())
}

// ShowAll prints both hands face up
func (c *Console) ShowAll(r *blackjack.Round) {
	c.Rule()
	c.cards(fmt.Sprintf("The dealer has these cards (%d):", r.Dealer().Value()), r.Dealer().Cards())
	c.cards(fmt.Sprintf("You have these cards (%d):", r.Player().Value()), r.Player().Cards())
}

// ShowOutcome narrates how a resolved round ended
func (c *Console) ShowOutcome(r *blackjack.Round) {
	switch r.Outcome() {
	case blackjack.PlayerBust:
		c.Println("Whoops! You busted!")
		c.Println("The dealer won.")
	case blackjack.DealerBust:
		c.ShowAll(r)
		c.Println("The dealer busted.")
		c.Println("Congratulations! You win!")
	case blackjack.PlayerWins:
		c.ShowAll(r)
		c.Println("Congratulations! You win!")
	case blackjack.DealerWins:
		c.ShowAll(r)
		c.Println("The dealer won.")
	case blackjack.Push:
		c.ShowAll(r)
		c.Println("It's a tie.")
	}
}

// counted renders "1 Six" or "2 Sixes"
func counted(n int, r card.Rank) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", r)
	}
	return fmt.Sprintf("%d %s", n, r.Plural())
}

// ShowHand prints the ranks the player holds outside of books
func (c *Console) ShowHand(h *gofish.Hand) {
	c.Rule()
	c.Println(heading.Sprint("You have:"))
	for _, r := range h.Candidates() {
		c.Println("  " + counted(h.Count(r), r))
	}
	if h.Books() > 0 {
		c.Printf("  (%d book(s) collected)\n", h.Books())
	}
}

// Narrate prints what happened during a Go Fish turn
func (c *Console) Narrate(events []gofish.Event) {
	for _, e := range events {
		if line := describe(e); line != "" {
			c.Println(line)
		}
	}
}

func describe(e gofish.Event) string {
	you := e.Side == gofish.Player
	switch e.Kind {
	case gofish.Asked:
		if you {
			return ""
		}
		return fmt.Sprintf("Do you have any %s?", e.Rank.Plural())
	case gofish.CardsTaken:
		if you {
			return fmt.Sprintf("You got %s from your opponent.", counted(e.Count, e.Rank))
		}
		return fmt.Sprintf("You gave %s to your opponent.", counted(e.Count, e.Rank))
	case gofish.GoFish:
		if you {
			return fmt.Sprintf("Go fish! You drew the %s.", CardString(e.Card))
		}
		return "Go fish!"
	case gofish.DrewRequested:
		if you {
			return "You got the same card you asked for. Go again!"
		}
		return "Your opponent got the same card they asked for. They go again."
	case gofish.BookFormed:
		if you {
			return fmt.Sprintf("You got a book of %s!", e.Rank.Plural())
		}
		return fmt.Sprintf("Your opponent got a book of %s!", e.Rank.Plural())
	case gofish.ReplacementDraw:
		if you {
			return fmt.Sprintf("You ran out of cards and drew the %s.", CardString(e.Card))
		}
		return "Your opponent ran out of cards and drew from the deck."
	case gofish.DeckEmpty:
		return "The deck is empty."
	default:
		return ""
	}
}

// ShowResult prints the final book tally
func (c *Console) ShowResult(g *gofish.Game) {
	c.Rule()
	c.Printf("You have %d book(s) and your opponent has %d book(s).\n",
		g.Hand(gofish.Player).Books(), g.Hand(gofish.Opponent).Books())
	if g.Result() == gofish.PlayerWins {
		c.Println("You win!")
	} else {
		c.Println("You lose.")
	}
}

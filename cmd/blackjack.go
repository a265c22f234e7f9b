package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/parlor/internal/blackjack"
	"github.com/arcanaland/parlor/internal/console"
	"github.com/arcanaland/parlor/internal/deck"
)

// blackjackCmd represents the blackjack command
var blackjackCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play Blackjack against the dealer",
	Long: `Blackjack starts you with 100 chips. Each round you bet, then hit or stand;
the dealer draws until reaching 17. The session ends when you run out of chips
or decline another round.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := setupTable(cmd)
		if err != nil {
			return err
		}
		defer t.Close()

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		err = playBlackjack(con, t)
		if errors.Is(err, io.EOF) {
			t.logger.Info("input closed, leaving the table")
			return nil
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(blackjackCmd)
}

func playBlackjack(con *console.Console, t *table) error {
	session := blackjack.NewSession(blackjack.DefaultChips, blackjack.WithLogger(t.logger))

	for {
		con.Banner("Welcome to Blackjack!")

		d := deck.New(t.rng)
		d.Shuffle()
		round := session.NewRound(d)

		amount, err := con.Bet(round.Chips())
		if err != nil {
			return err
		}
		if err := round.PlaceBet(amount); err != nil {
			return fmt.Errorf("error placing bet: %w", err)
		}
		con.ShowSome(round)

		for round.Phase() == blackjack.PlayerTurn {
			move, err := con.Move()
			if err != nil {
				return err
			}
			if err := round.Play(move); err != nil {
				return fmt.Errorf("error playing %s: %w", move, err)
			}
			if move == blackjack.Hit {
				con.ShowSome(round)
			}
		}

		con.ShowOutcome(round)
		if err := session.Settle(round); err != nil {
			return err
		}
		con.Printf("You now have %d chip(s) in total.\n", session.Total())

		if session.Broke() {
			con.Println("You're broke. You can't play anymore.")
			return nil
		}

		again, err := con.Confirm("Would you like to play again? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/parlor/internal/console"
	"github.com/arcanaland/parlor/internal/deck"
	"github.com/arcanaland/parlor/internal/gofish"
)

var gofishCmd = &cobra.Command{
	Use:     "gofish",
	Aliases: []string{"go-fish"},
	Short:   "Play Go Fish against a computer opponent",
	Long: `Go Fish deals seven cards to you and your opponent. Ask for ranks you hold;
collect four of a kind to make a book. When the deck runs out, the most books wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := setupTable(cmd)
		if err != nil {
			return err
		}
		defer t.Close()

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		err = playGoFish(con, t)
		if errors.Is(err, io.EOF) {
			t.logger.Info("input closed, leaving the table")
			return nil
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(gofishCmd)
}

func playGoFish(con *console.Console, t *table) error {
	for {
		con.Banner("Welcome to Go Fish!")

		d := deck.New(t.rng)
		d.Shuffle()
		g := gofish.NewGame(d, t.rng, gofish.WithLogger(t.logger))

		events, err := g.Deal()
		if err != nil {
			return fmt.Errorf("error dealing: %w", err)
		}
		con.Narrate(events)

		for !g.Over() {
			var res gofish.TurnResult
			if g.Turn() == gofish.Player {
				hand := g.Hand(gofish.Player)
				con.ShowHand(hand)
				rank, err := con.Rank(hand)
				if err != nil {
					return err
				}
				res, err = g.AskOpponent(rank)
				if err != nil {
					return fmt.Errorf("error asking for %s: %w", rank.Plural(), err)
				}
			} else {
				res, err = g.AskPlayer()
				if err != nil {
					return fmt.Errorf("error on opponent turn: %w", err)
				}
			}
			con.Narrate(res.Events)
		}

		con.ShowResult(g)

		again, err := con.Confirm("Do you want to play again (y/n)? ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/parlor/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "parlor",
	Short: "Play Blackjack and Go Fish in the terminal",
	Long: `Parlor is a collection of console card games played against a scripted dealer or opponent.
Settings are read from $XDG_CONFIG_HOME/parlor/config.toml, which is created on first run.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().Int64("seed", 0, "Seed for shuffling (0 picks one from the clock)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured card output")
	RootCmd.PersistentFlags().Bool("debug", false, "Write debug entries to the game log")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// table holds what a game command needs to run
type table struct {
	config *config.Config
	logger *log.Logger
	rng    *rand.Rand
	closer io.Closer

	// colour setting to put back on Close
	noColor bool
}

func (t *table) Close() error {
	colorize.NoColor = t.noColor
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// setupTable loads the config, applies flag overrides and opens the game log
func setupTable(cmd *cobra.Command) (*table, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = log.DebugLevel
	}

	var out io.Writer = io.Discard
	var closer io.Closer
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          strings.ToUpper(cmd.Name()),
		Level:           level,
	})
	logger.Info("starting", "seed", seed)

	prevNoColor := colorize.NoColor
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !cfg.Color {
		colorize.NoColor = true
	}

	return &table{
		config:  cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
		closer:  closer,
		noColor: prevNoColor,
	}, nil
}

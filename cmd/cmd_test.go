package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/parlor/internal/card"
)

// resetFlags puts every persistent flag back to its default so runs of the
// shared RootCmd do not see each other's arguments
func resetFlags(t *testing.T) {
	t.Helper()
	RootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func run(t *testing.T, input string, args ...string) string {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestBlackjackZeroBetKeepsChips(t *testing.T) {
	out := run(t, "abc\n500\n0\nfoo\nstand\nmaybe\nn\n", "blackjack", "--seed", "7", "--no-color")

	assert.Contains(t, out, "Welcome to Blackjack!")
	assert.Contains(t, out, "That is not a number.")
	assert.Contains(t, out, "You can't bet that much.")
	assert.Contains(t, out, "Please enter hit or stand.")
	assert.Contains(t, out, "Please enter y or n")
	assert.Contains(t, out, "You now have 100 chip(s) in total.")
	assert.Equal(t, 1, strings.Count(out, "Welcome to Blackjack!"))
}

func TestBlackjackQuitsOnClosedInput(t *testing.T) {
	out := run(t, "", "blackjack", "--seed", "1", "--no-color")
	assert.Contains(t, out, "How much would you like to bet?")
	assert.NotContains(t, out, "chip(s) in total")
}

func TestGoFishPlaysToEmptyDeck(t *testing.T) {
	var names []string
	for _, r := range card.Ranks {
		names = append(names, r.String())
	}
	line := strings.Join(names, "\n") + "\n"
	out := run(t, strings.Repeat(line, 200), "gofish", "--seed", "42", "--no-color")

	assert.Contains(t, out, "Welcome to Go Fish!")
	assert.Contains(t, out, "The deck is empty.")
	assert.Contains(t, out, "book(s) and your opponent has")
}

func TestConfigInitWritesFile(t *testing.T) {
	out := run(t, "", "config", "init")
	assert.Contains(t, out, "Config file initialized at:")

	_, err := os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "parlor", "config.toml"))
	assert.NoError(t, err)
}

func TestConfigShowPrintsSettings(t *testing.T) {
	out := run(t, "", "config", "show")
	assert.Contains(t, out, "log_level = \"info\"")
	assert.Contains(t, out, "color = true")
}

func TestRunsDoNotLeakFlags(t *testing.T) {
	colorize.NoColor = false
	t.Cleanup(func() { colorize.NoColor = false })

	run(t, "", "blackjack", "--seed", "3", "--no-color")
	assert.False(t, colorize.NoColor)

	run(t, "", "blackjack")
	assert.False(t, RootCmd.PersistentFlags().Changed("seed"))
	assert.False(t, RootCmd.PersistentFlags().Changed("no-color"))
	seed, err := RootCmd.PersistentFlags().GetInt64("seed")
	require.NoError(t, err)
	assert.Zero(t, seed)
}

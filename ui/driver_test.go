package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/liars-pub/liar"
	"github.com/ratel-online/liars-pub/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// A challenged turn: play one card, the first one, call it a jack, and the responder challenges.
const challengedTurn = "1\n1\nJ\ny\n"

func TestRunToWinner(t *testing.T) {
	input := "0\n" + "abc\n" + "1\n1\nX\n" + strings.Repeat(challengedTurn, 6)
	out := bytes.Buffer{}
	driver := ui.Driver{
		In:      strings.NewReader(input),
		Out:     &out,
		Names:   []string{"Alice", "Bob"},
		Options: []liar.Option{liar.WithSeed(1)},
	}

	winner, err := driver.Run()
	require.NoError(t, err)
	assert.Contains(t, []string{"Alice", "Bob"}, winner)

	text := out.String()
	assert.Contains(t, text, "--- Alice's turn ---")
	assert.Contains(t, text, "Invalid number. You have 5 cards.")
	assert.Contains(t, text, "Input invalid.")
	assert.Contains(t, text, "Invalid declaration")
	assert.Contains(t, text, "Bob, do you want to challenge? (y/n): ")
	assert.Contains(t, text, "is killed!")
	assert.Contains(t, text, winner+" wins the game!")
}

func TestRunWithoutChallenges(t *testing.T) {
	out := bytes.Buffer{}
	driver := ui.Driver{
		In:      strings.NewReader("1\n1\nQ\nn\n" + "2\n1 2\nK\nn\n"),
		Out:     &out,
		Names:   []string{"Alice", "Bob", "Carol"},
		Options: []liar.Option{liar.WithSeed(2)},
	}

	_, err := driver.Run()
	assert.Equal(t, io.EOF, err)

	text := out.String()
	assert.Contains(t, text, "No one challenged. Moving to next player.")
	assert.Contains(t, text, "Alice: o o o o  <- Alice declared 1 Q(s)")
	assert.Contains(t, text, "--- Carol's turn ---")
	assert.Equal(t, 2, strings.Count(text, "do you want to challenge?"))
}

func TestRunRejectsInvalidTable(t *testing.T) {
	driver := ui.Driver{
		In:    strings.NewReader(""),
		Out:   io.Discard,
		Names: []string{"Solo"},
	}
	_, err := driver.Run()
	assert.Error(t, err)
}

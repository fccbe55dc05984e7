package notify

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ratel-online/liars-pub/liar"
)

const (
	FrameInterval = 100 * time.Millisecond
	clearScreen   = "\033[H\033[2J"
)

type Options struct {
	Rand     *rand.Rand
	Interval time.Duration
	// Frames stops after that many frames; zero runs until ctx is done.
	Frames int
}

var highlight = color.New(color.FgHiWhite, color.BgBlue).SprintFunc()

// Frame renders one screen: background noise with the window on top.
func Frame(r *rand.Rand, window Window, b *Bouncer) string {
	lines := Place(Background(r, Width, Height), window, b.X, b.Y)
	for i := range window.Rows {
		y := b.Y + i
		if y < 0 || y >= len(lines) {
			continue
		}
		line := lines[y]
		lines[y] = line[:b.X] + highlight(line[b.X:b.X+window.Width]) + line[b.X+window.Width:]
	}
	return strings.Join(lines, "\n") + "\n"
}

func Run(ctx context.Context, out io.Writer, window Window, opts Options) error {
	r := opts.Rand
	if r == nil {
		var err error
		if r, err = liar.NewRand(0); err != nil {
			return err
		}
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = FrameInterval
	}
	b := NewBouncer(window.Width, window.Height(), Width, Height)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for frames := 0; opts.Frames == 0 || frames < opts.Frames; frames++ {
		if _, err := io.WriteString(out, clearScreen+Frame(r, window, b)); err != nil {
			return err
		}
		b.Step()
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// Package notify bounces a notification window around a noisy terminal background.
package notify

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	MaxMessage = 87
	MinInner   = 30
	Width      = 93
	Height     = 30
)

var ErrMessageTooLong = errors.New("notification too long, keep it under 87 characters")

// material is 100 cells: one each of '.', '*' and '-', the rest blank.
var material = []byte("." + "*" + "-" + strings.Repeat(" ", 97))

type Window struct {
	Rows  []string
	Width int
}

func (w Window) Height() int {
	return len(w.Rows)
}

func NewWindow(message string) (Window, error) {
	if len(message) > MaxMessage {
		return Window{}, ErrMessageTooLong
	}
	width := len(message)
	if width < MinInner {
		width = MinInner
	}
	width += 4
	inner := width - 2
	border := "+" + strings.Repeat("-", inner) + "+"
	return Window{
		Width: width,
		Rows: []string{
			border,
			"|" + strings.Repeat(" ", inner) + "|",
			"| " + padRight(message, inner-2) + " |",
			"|" + padLeft("[ Close Ctrl+C ]", inner-1) + " |",
			border,
		},
	}, nil
}

func Background(r *rand.Rand, width, height int) []string {
	lines := make([]string, height)
	line := make([]byte, width)
	for y := range lines {
		for x := range line {
			line[x] = material[r.Intn(len(material))]
		}
		lines[y] = string(line)
	}
	return lines
}

// Place draws the window over the background with its top-left corner at x, y.
func Place(background []string, window Window, x, y int) []string {
	frame := append([]string(nil), background...)
	for i, row := range window.Rows {
		if y+i < 0 || y+i >= len(frame) {
			continue
		}
		line := frame[y+i]
		if x > len(line) {
			line += strings.Repeat(" ", x-len(line))
		}
		end := x + len(row)
		rest := ""
		if end < len(line) {
			rest = line[end:]
		}
		frame[y+i] = line[:x] + row + rest
	}
	return frame
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
)

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) promptString(message string) (string, error) {
	p.printf("%s", message)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) promptInteger(message string) (int, error) {
	input, err := p.promptString(message)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, consts.ErrorsInputInvalid
	}
	return n, nil
}

func (p *prompter) promptIndices(message string) ([]int, error) {
	input, err := p.promptString(message)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(input)
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		index, err := strconv.Atoi(field)
		if err != nil {
			return nil, consts.ErrorsInvalidPlay
		}
		indices = append(indices, index)
	}
	return indices, nil
}

func (p *prompter) promptRank(message string) (liar.Card, error) {
	input, err := p.promptString(message)
	if err != nil {
		return 0, err
	}
	return liar.ParseRank(input)
}

func (p *prompter) promptYesNo(message string) (bool, error) {
	for {
		input, err := p.promptString(message)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		p.printf("Please answer y or n.\n")
	}
}

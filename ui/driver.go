// Package ui plays a whole Liars Pub game on one terminal, passing the
// keyboard from player to player.
package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
	"github.com/ratel-online/liars-pub/render"
)

type Driver struct {
	In      io.Reader
	Out     io.Writer
	Names   []string
	Options []liar.Option

	*prompter
}

// Run plays until one player is left and returns the winner. It only fails
// on a broken input stream or an invalid table.
func (d *Driver) Run() (string, error) {
	d.prompter = newPrompter(d.In, d.Out)
	s, err := liar.Start(d.Names, d.Options...)
	if err != nil {
		return "", err
	}
	d.printf("%s\n", render.Instructions(s.Rules()))
	for {
		player := s.CurrentPlayer()
		d.printf("\n--- %s's turn ---\n", player)
		d.printf("%s", render.Remains(s.Snapshot()))
		if err := d.declare(s, player); err != nil {
			return "", err
		}
		challenger, err := d.askChallengers(s)
		if err != nil {
			return "", err
		}
		if challenger == "" {
			d.printf("No one challenged. Moving to next player.\n")
			if err := s.Accept(); err != nil {
				return "", err
			}
			continue
		}
		outcome, err := s.Challenge(challenger)
		if err != nil {
			return "", err
		}
		d.printf("\n%s", render.Challenge(*outcome))
		shot, err := s.ResolveShot(outcome.Loser)
		if err != nil {
			return "", err
		}
		d.printf("%s", render.Shot(outcome.Loser, shot))
		if winner, ok := s.CheckWin(); ok {
			d.printf("\n%s", render.Winner(winner))
			return winner, nil
		}
		if _, err := s.AdvanceTurn(); err != nil {
			return "", err
		}
	}
}

func (d *Driver) declare(s *liar.Session, player string) error {
	for {
		hand, err := s.Hand(player)
		if err != nil {
			return err
		}
		d.printf("\nYour cards: %s\n", render.Hand(hand))
		cards, rank, err := d.askDeclaration(s, player, len(hand))
		if err != nil {
			if isRecoverable(err) {
				d.printf("%s\n", err)
				continue
			}
			return err
		}
		_, err = s.Declare(player, cards, rank)
		if err == nil {
			return nil
		}
		if errors.Is(err, consts.ErrorsDeckExhausted) {
			d.printf("%s\n", err)
			if err := s.Reset(); err != nil {
				return err
			}
			d.printf("The deck has been reset and every hand dealt again.\n")
			return nil
		}
		if !isRecoverable(err) {
			return err
		}
		d.printf("%s\n", err)
	}
}

func (d *Driver) askDeclaration(s *liar.Session, player string, size int) ([]liar.Card, liar.Card, error) {
	count, err := d.promptInteger("How many cards do you want to play? ")
	if err != nil {
		return nil, 0, err
	}
	if count < 1 || count > size {
		return nil, 0, consts.NewErr(consts.ErrorsInvalidPlay.Code, false, fmt.Sprintf("Invalid number. You have %d cards.", size))
	}
	indices, err := d.promptIndices(fmt.Sprintf("Enter the indices (1-%d) of cards to play, separated by spaces: ", size))
	if err != nil {
		return nil, 0, err
	}
	if len(indices) != count {
		return nil, 0, consts.NewErr(consts.ErrorsInvalidPlay.Code, false, "Number of cards doesn't match the indices provided.")
	}
	cards, err := s.Pick(player, indices)
	if err != nil {
		return nil, 0, err
	}
	rank, err := d.promptRank("What are you declaring? (J, Q, K, A): ")
	if err != nil {
		return nil, 0, err
	}
	return cards, rank, nil
}

func (d *Driver) askChallengers(s *liar.Session) (string, error) {
	for _, name := range s.Challengers() {
		yes, err := d.promptYesNo(fmt.Sprintf("%s, do you want to challenge? (y/n): ", name))
		if err != nil {
			return "", err
		}
		if yes {
			return name, nil
		}
	}
	return "", nil
}

func isRecoverable(err error) bool {
	var e consts.Error
	return errors.As(err, &e) && !e.Exit
}

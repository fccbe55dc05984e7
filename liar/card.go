package liar

import (
	"strings"

	"github.com/ratel-online/liars-pub/consts"
)

type Card int

const (
	_ Card = iota
	Jack
	Queen
	King
	Ace
	Joker
)

var Ranks = []Card{Jack, Queen, King, Ace}

var aliases = map[Card]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
	Joker: "O",
}

func (c Card) String() string {
	if alias, ok := aliases[c]; ok {
		return alias
	}
	return "?"
}

func (c Card) IsWild() bool {
	return c == Joker
}

// Matches reports whether c satisfies a declaration of rank.
func (c Card) Matches(rank Card) bool {
	return c == rank || c.IsWild()
}

func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "JOKER" {
		return Joker, nil
	}
	for card, alias := range aliases {
		if alias == s {
			return card, nil
		}
	}
	return 0, consts.ErrorsInvalidDeclaration
}

// ParseRank parses a declarable rank. The wildcard can't be declared.
func ParseRank(s string) (Card, error) {
	card, err := ParseCard(s)
	if err != nil || !isRank(card) {
		return 0, consts.ErrorsInvalidDeclaration
	}
	return card, nil
}

func isRank(card Card) bool {
	for _, rank := range Ranks {
		if rank == card {
			return true
		}
	}
	return false
}

// IsTruthful reports whether every played card is the declared rank or the wildcard.
func IsTruthful(played []Card, rank Card) bool {
	for _, card := range played {
		if !card.Matches(rank) {
			return false
		}
	}
	return true
}

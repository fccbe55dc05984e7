package liar

import (
	"github.com/ratel-online/liars-pub/consts"
)

type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]Card, 0, HandSize)}
}

func (h *Hand) AddCards(cards []Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Clear empties the hand and returns what it held.
func (h *Hand) Clear() []Card {
	cards := h.cards
	h.cards = make([]Card, 0, HandSize)
	return cards
}

// Contains reports whether the hand holds every card of the multiset.
func (h *Hand) Contains(cards []Card) bool {
	counts := map[Card]int{}
	for _, card := range h.cards {
		counts[card]++
	}
	for _, card := range cards {
		if counts[card] == 0 {
			return false
		}
		counts[card]--
	}
	return true
}

// RemoveCards removes a single copy of each card, keeping the order of the
// rest. Nothing is removed unless the whole multiset is in the hand.
func (h *Hand) RemoveCards(cards []Card) error {
	if len(cards) == 0 || !h.Contains(cards) {
		return consts.ErrorsInvalidPlay
	}
	for _, card := range cards {
		for index, cardInHand := range h.cards {
			if cardInHand == card {
				h.cards = append(h.cards[:index], h.cards[index+1:]...)
				break
			}
		}
	}
	return nil
}

// Pick maps 1-based positions to cards. Positions must be distinct and in range.
func (h *Hand) Pick(indices []int) ([]Card, error) {
	if len(indices) == 0 || len(indices) > len(h.cards) {
		return nil, consts.ErrorsInvalidPlay
	}
	seen := map[int]bool{}
	cards := make([]Card, 0, len(indices))
	for _, index := range indices {
		if index < 1 || index > len(h.cards) || seen[index] {
			return nil, consts.ErrorsInvalidPlay
		}
		seen[index] = true
		cards = append(cards, h.cards[index-1])
	}
	return cards, nil
}

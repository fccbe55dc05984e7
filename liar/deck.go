package liar

import (
	"math/rand"

	"github.com/ratel-online/liars-pub/consts"
)

const (
	CopiesPerCard = 4
	DeckSize      = 20
	HandSize      = 5
)

// Deck tracks every card that is not in a hand: the draw pile, the discard
// pile of declared cards and the cards removed with eliminated players.
type Deck struct {
	rand    *rand.Rand
	cards   []Card
	discard []Card
	removed []Card
}

func NewDeck(r *rand.Rand) *Deck {
	deck := &Deck{rand: r}
	fillDeck(deck)
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Discarded() []Card {
	cards := make([]Card, len(d.discard))
	copy(cards, d.discard)
	return cards
}

func (d *Deck) Removed() []Card {
	cards := make([]Card, len(d.removed))
	copy(cards, d.removed)
	return cards
}

// Total counts draw, discard and removed cards.
func (d *Deck) Total() int {
	return len(d.cards) + len(d.discard) + len(d.removed)
}

func (d *Deck) Draw(amount int) ([]Card, error) {
	if amount > len(d.cards) {
		return nil, consts.ErrorsDeckExhausted
	}
	cards := make([]Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

func (d *Deck) Discard(cards []Card) {
	d.discard = append(d.discard, cards...)
}

func (d *Deck) Remove(cards []Card) {
	d.removed = append(d.removed, cards...)
}

// Refill puts the discard pile back into the draw pile and shuffles it.
func (d *Deck) Refill() {
	d.cards = append(d.cards, d.discard...)
	d.discard = d.discard[:0]
	d.shuffle()
}

// Collect returns cards taken back from hands to the draw pile and shuffles.
func (d *Deck) Collect(cards []Card) {
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

// Reset restores the full 20 card deck, dropping discard and removed piles.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	d.discard = d.discard[:0]
	d.removed = d.removed[:0]
	fillDeck(d)
}

func (d *Deck) shuffle() {
	d.rand.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func fillDeck(deck *Deck) {
	cards := make([]Card, 0, DeckSize)
	for _, card := range []Card{Jack, Queen, King, Ace, Joker} {
		for i := 0; i < CopiesPerCard; i++ {
			cards = append(cards, card)
		}
	}
	deck.cards = append(deck.cards, cards...)
	deck.shuffle()
}

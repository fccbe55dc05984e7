package liar

// MustParseCards parses card aliases and panics on an unknown one.
func MustParseCards(names ...string) []Card {
	cards := make([]Card, 0, len(names))
	for _, name := range names {
		card, err := ParseCard(name)
		if err != nil {
			panic("unknown card " + name)
		}
		cards = append(cards, card)
	}
	return cards
}

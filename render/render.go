package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/liars-pub/liar"
)

const cardGap = "  "

var art = map[liar.Card][]string{
	liar.Jack: {
		`|--------|`,
		`|    |   |`,
		`|    |   |`,
		`|  __|   |`,
		`|________|`,
	},
	liar.Queen: {
		`|--------|`,
		`|   __   |`,
		`|  |__|  |`,
		`|     \  |`,
		`|________|`,
	},
	liar.King: {
		`|--------|`,
		`|  | /   |`,
		`|  |<    |`,
		`|  | \   |`,
		`|________|`,
	},
	liar.Ace: {
		`|--------|`,
		`|   /\   |`,
		`|  /--\  |`,
		`| |    | |`,
		`|________|`,
	},
	liar.Joker: {
		`|--------|`,
		`|  O  |JO|`,
		`| /|\ |KE|`,
		`| / \ |R'|`,
		`|________|`,
	},
}

var (
	safe   = color.New(color.FgHiGreen).SprintfFunc()
	killed = color.New(color.FgHiRed).SprintfFunc()
	wild   = color.New(color.FgHiYellow).SprintFunc()
	out    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintfFunc()
)

// Cards draws the cards side by side, five rows high.
func Cards(cards []liar.Card) string {
	rows := make([]string, 5)
	for _, card := range cards {
		face, ok := art[card]
		if !ok {
			continue
		}
		for i := range rows {
			row := face[i]
			if card.IsWild() {
				row = wild(row)
			}
			rows[i] += row + cardGap
		}
	}
	return strings.Join(rows, "\n") + "\n"
}

// Hand lists the cards with the 1-based positions players pick them by.
func Hand(cards []liar.Card) string {
	labels := make([]string, 0, len(cards))
	for i, card := range cards {
		labels = append(labels, fmt.Sprintf("%d:%s", i+1, card))
	}
	return strings.Join(labels, " ")
}

// Remains shows one row per seat with a glyph per card left:
//
//	# Player1: o o o o o
//	# Player2: o o o  <- Player2 declared 2 K(s)
//	# Player3: (out)
func Remains(snapshot liar.Snapshot) string {
	buf := bytes.Buffer{}
	for _, seat := range snapshot.Seats {
		buf.WriteString("# ")
		if seat.Out {
			buf.WriteString(out(fmt.Sprintf("%s: (out)", seat.Name)))
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(fmt.Sprintf("%s: %s", seat.Name, strings.Repeat("o ", seat.Cards)))
		if snapshot.Last != nil && snapshot.Last.Player == seat.Name {
			buf.WriteString(fmt.Sprintf(" <- %s %s", seat.Name, snapshot.Last))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func Shot(player string, shot liar.Shot) string {
	buf := bytes.Buffer{}
	buf.WriteString("~    |\\ ____________  _\n")
	buf.WriteString("~   / |_____________||")
	if shot == liar.Eliminated {
		buf.WriteString(killed("> %s is killed! > x <", player))
	} else {
		buf.WriteString(safe(" > %s is safe! ^ _ ^", player))
	}
	buf.WriteString("\n")
	buf.WriteString("~  /  |______________|--\n")
	buf.WriteString("~ /  /\n")
	buf.WriteString("~|_|_|\n")
	return buf.String()
}

func Challenge(outcome liar.Outcome) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%s challenges %s's declaration!\n", outcome.Challenger, outcome.Declarer))
	buf.WriteString("The played cards are:\n")
	buf.WriteString(Cards(outcome.Cards))
	if outcome.Truthful {
		buf.WriteString(fmt.Sprintf("%s's declaration was truthful! %s gets shot.\n", outcome.Declarer, outcome.Loser))
	} else {
		buf.WriteString(fmt.Sprintf("%s was lying! %s gets shot.\n", outcome.Declarer, outcome.Loser))
	}
	return buf.String()
}

func Winner(player string) string {
	return bold("%s wins the game!", player) + "\n"
}

func Instructions(rules liar.Rules) string {
	buf := bytes.Buffer{}
	buf.WriteString("Liars Pub.\n")
	buf.WriteString("A card game for 2 to 4 players. The goal is to be the last one alive.\n")
	buf.WriteString("Rules:\n")
	buf.WriteString("- Each player is dealt 5 cards from a deck of J, Q, K, A (four each) and four jokers (O).\n")
	buf.WriteString("- On your turn play cards face down and declare their rank (J, Q, K or A).\n")
	buf.WriteString("- A joker counts as any rank.\n")
	if rules.Challenge == liar.ChallengeAny {
		buf.WriteString("- Any other player may challenge the declaration.\n")
	} else {
		buf.WriteString("- The next player may challenge the declaration.\n")
	}
	buf.WriteString("- If the declaration is true, the challenger faces the revolver.\n")
	buf.WriteString("- If the declaration is false, the declarer faces the revolver.\n")
	buf.WriteString("- The revolver has 6 chambers, 1 loaded and 5 empty.\n")
	switch rules.Refill {
	case liar.RefillTable:
		buf.WriteString("- When a player runs out of cards, the whole table is dealt again.\n")
	default:
		buf.WriteString("- When a player runs out of cards, their hand is refilled.\n")
	}
	buf.WriteString("- The last player remaining wins the game.\n")
	return buf.String()
}

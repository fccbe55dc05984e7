package liar

import (
	"testing"

	"github.com/ratel-online/liars-pub/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pin replaces every hand and the draw pile. The cards must add up to the full deck.
func pin(t *testing.T, s *Session, hands map[string][]Card, draw []Card) {
	t.Helper()
	total := len(draw)
	for name, cards := range hands {
		s.hands[name].Clear()
		s.hands[name].AddCards(cards)
		total += len(cards)
	}
	s.deck.cards = append([]Card(nil), draw...)
	s.deck.discard = nil
	s.deck.removed = nil
	require.Equal(t, DeckSize, total)
}

func load(s *Session, chambers ...bool) {
	copy(s.revolver.chambers[:], chambers)
	s.revolver.fired = 0
}

func TestWildcardDeclarationSurvivesChallenge(t *testing.T) {
	players := []string{"Player1", "Player2", "Player3", "Player4"}
	s, err := Start(players, WithSeed(2024))
	require.NoError(t, err)
	require.Equal(t, DeckSize, s.TotalCards())

	pin(t, s, map[string][]Card{
		"Player1": MustParseCards("K", "O", "J", "Q", "A"),
		"Player2": MustParseCards("K", "O", "J", "Q", "A"),
		"Player3": MustParseCards("K", "O", "J", "Q", "A"),
		"Player4": MustParseCards("K", "O", "J", "Q", "A"),
	}, nil)
	load(s, false, false, false, true, false, false)

	action, err := s.Declare("Player1", MustParseCards("K", "O"), King)
	require.NoError(t, err)
	assert.Equal(t, 2, action.Count)
	hand, _ := s.Hand("Player1")
	assert.Equal(t, MustParseCards("J", "Q", "A"), hand)

	outcome, err := s.Challenge("Player2")
	require.NoError(t, err)
	assert.True(t, outcome.Truthful)
	assert.Equal(t, "Player2", outcome.Loser)

	shot, err := s.ResolveShot("Player2")
	require.NoError(t, err)
	assert.Equal(t, Safe, shot)
	assert.True(t, s.IsActive("Player2"))

	next, err := s.AdvanceTurn()
	require.NoError(t, err)
	assert.Equal(t, "Player3", next)
	assert.Equal(t, DeckSize, s.TotalCards())
}

func TestLiarIsEliminatedAndWinnerFound(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(3))
	require.NoError(t, err)
	pin(t, s, map[string][]Card{
		"A": MustParseCards("J", "J", "J", "J", "O"),
		"B": MustParseCards("Q", "Q", "Q", "Q", "O"),
	}, MustParseCards("K", "K", "K", "K", "A", "A", "A", "A", "O", "O"))
	load(s, true, false, false, false, false, false)

	_, err = s.Declare("A", MustParseCards("J"), Queen)
	require.NoError(t, err)
	outcome, err := s.Challenge("B")
	require.NoError(t, err)
	assert.False(t, outcome.Truthful)
	assert.Equal(t, "A", outcome.Loser)

	shot, err := s.ResolveShot("A")
	require.NoError(t, err)
	assert.Equal(t, Eliminated, shot)
	assert.False(t, s.IsActive("A"))

	winner, ok := s.CheckWin()
	assert.True(t, ok)
	assert.Equal(t, "B", winner)
	assert.Equal(t, Finished, s.Phase())
	assert.Equal(t, "B", s.Snapshot().Winner)

	hand, _ := s.Hand("A")
	assert.Empty(t, hand)
	assert.Len(t, s.deck.Removed(), 4)
	assert.Equal(t, DeckSize, s.TotalCards())

	_, err = s.AdvanceTurn()
	assert.Equal(t, consts.ErrorsGameOver, err)
	_, err = s.Declare("B", MustParseCards("Q"), Queen)
	assert.Equal(t, consts.ErrorsGameOver, err)
	assert.Equal(t, consts.ErrorsGameOver, s.Reset())
}

func TestEliminatedPlayersAreSkipped(t *testing.T) {
	s, err := Start([]string{"A", "B", "C"}, WithSeed(8))
	require.NoError(t, err)
	pin(t, s, map[string][]Card{
		"A": MustParseCards("J", "J", "J", "J", "O"),
		"B": MustParseCards("Q", "Q", "Q", "Q", "O"),
		"C": MustParseCards("K", "K", "K", "K", "O"),
	}, MustParseCards("A", "A", "A", "A", "O"))
	load(s, true, false, false, false, false, false)

	_, err = s.Declare("A", MustParseCards("O"), Ace)
	require.NoError(t, err)
	outcome, err := s.Challenge("B")
	require.NoError(t, err)
	require.Equal(t, "B", outcome.Loser)
	shot, err := s.ResolveShot("B")
	require.NoError(t, err)
	require.Equal(t, Eliminated, shot)

	_, ok := s.CheckWin()
	assert.False(t, ok)
	for _, want := range []string{"C", "A", "C", "A"} {
		next, err := s.AdvanceTurn()
		require.NoError(t, err)
		assert.Equal(t, want, next)
	}
	_, err = s.Declare("B", MustParseCards("Q"), Queen)
	assert.Equal(t, consts.ErrorsPlayerEliminated, err)
	seat, _ := s.Snapshot().Seat("B")
	assert.True(t, seat.Out)
	assert.Equal(t, 0, seat.Cards)
}

// playOut empties A's hand over three declarations: A plays 2, B plays 2, A plays 3.
func playOut(t *testing.T, s *Session) error {
	t.Helper()
	hand, _ := s.Hand("A")
	_, err := s.Declare("A", hand[:2], Jack)
	require.NoError(t, err)
	hand, _ = s.Hand("B")
	_, err = s.Declare("B", hand[:2], Jack)
	require.NoError(t, err)
	hand, _ = s.Hand("A")
	require.Len(t, hand, 3)
	_, err = s.Declare("A", hand, Jack)
	return err
}

func handSizes(s *Session) (int, int) {
	return s.hands["A"].Size(), s.hands["B"].Size()
}

func TestRefillSelf(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(10), WithRules(Rules{Refill: RefillSelf}))
	require.NoError(t, err)
	require.NoError(t, playOut(t, s))

	a, b := handSizes(s)
	assert.Equal(t, HandSize, a)
	assert.Equal(t, 3, b)
	assert.Empty(t, s.deck.Discarded())
	assert.Equal(t, DeckSize, s.TotalCards())
	assert.Equal(t, AwaitingChallenge, s.Phase())
}

func TestRefillEmpty(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(10), WithRules(Rules{Refill: RefillEmpty}))
	require.NoError(t, err)
	require.NoError(t, playOut(t, s))
	a, b := handSizes(s)
	assert.Equal(t, HandSize, a)
	assert.Equal(t, 3, b)

	s, err = Start([]string{"A", "B"}, WithSeed(10), WithRules(Rules{Refill: RefillEmpty}))
	require.NoError(t, err)
	s.deck.Discard(s.hands["B"].Clear())
	hand, _ := s.Hand("A")
	_, err = s.Declare("A", hand, Ace)
	require.NoError(t, err)
	a, b = handSizes(s)
	assert.Equal(t, HandSize, a)
	assert.Equal(t, HandSize, b)
	assert.Equal(t, DeckSize, s.TotalCards())
}

func TestRefillTable(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(10), WithRules(Rules{Refill: RefillTable}))
	require.NoError(t, err)
	require.NoError(t, playOut(t, s))

	a, b := handSizes(s)
	assert.Equal(t, HandSize, a)
	assert.Equal(t, HandSize, b)
	assert.Empty(t, s.deck.Discarded())
	assert.Equal(t, DeckSize-2*HandSize, s.deck.Size())
	assert.Equal(t, DeckSize, s.TotalCards())
}

func TestDeckExhaustedNeedsReset(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(12))
	require.NoError(t, err)
	pin(t, s, map[string][]Card{
		"A": MustParseCards("J", "J", "J", "J", "O"),
		"B": MustParseCards("Q", "Q", "Q", "Q", "O"),
	}, MustParseCards("K", "K", "K", "K", "A", "A", "A", "A", "O", "O"))
	s.deck.Remove(s.deck.cards)
	s.deck.cards = nil
	s.hands["A"].Clear()
	s.hands["A"].AddCards(MustParseCards("J"))
	s.deck.Remove(MustParseCards("J", "J", "J", "O"))
	require.Equal(t, DeckSize, s.TotalCards())

	action, err := s.Declare("A", MustParseCards("J"), Jack)
	assert.Equal(t, consts.ErrorsDeckExhausted, err)
	require.NotNil(t, action)
	assert.Equal(t, "A", action.Player)
	assert.True(t, s.hands["A"].Empty())
	assert.Equal(t, DeckSize, s.TotalCards())

	require.NoError(t, s.Reset())
	a, b := handSizes(s)
	assert.Equal(t, HandSize, a)
	assert.Equal(t, HandSize, b)
	assert.Equal(t, DeckSize-2*HandSize, s.deck.Size())
	assert.Empty(t, s.deck.Removed())
	assert.Equal(t, DeckSize, s.TotalCards())

	outcome, err := s.Challenge("B")
	require.NoError(t, err)
	assert.True(t, outcome.Truthful)
}

func TestSameSeedSameChambers(t *testing.T) {
	first, err := Start([]string{"A", "B"}, WithSeed(77))
	require.NoError(t, err)
	second, err := Start([]string{"A", "B"}, WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, first.revolver.chambers, second.revolver.chambers)
}

func TestSnapshotShowsFreshCylinderAfterFullCycle(t *testing.T) {
	s, err := Start([]string{"A", "B"}, WithSeed(5))
	require.NoError(t, err)
	load(s, false, false, false, false, false, true)
	for i := 0; i < Chambers-1; i++ {
		assert.False(t, s.revolver.Fire())
		assert.Equal(t, Chambers-i-1, s.Snapshot().Chambers)
	}
	assert.True(t, s.revolver.Fire())
	assert.Equal(t, Chambers, s.Snapshot().Chambers)
}

package liar

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/ratel-online/liars-pub/consts"
)

type Phase int

const (
	AwaitingDeclaration Phase = iota
	AwaitingChallenge
	Resolving
	Resolved
	Finished
)

var phaseNames = map[Phase]string{
	AwaitingDeclaration: "awaiting declaration",
	AwaitingChallenge:   "awaiting challenge",
	Resolving:           "resolving",
	Resolved:            "resolved",
	Finished:            "finished",
}

func (p Phase) String() string {
	return phaseNames[p]
}

type Action struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
	Rank   Card   `json:"rank"`
}

func (a Action) String() string {
	return fmt.Sprintf("declared %d %s(s)", a.Count, a.Rank)
}

type Outcome struct {
	Declarer   string `json:"declarer"`
	Challenger string `json:"challenger"`
	Cards      []Card `json:"cards"`
	Rank       Card   `json:"rank"`
	Truthful   bool   `json:"truthful"`
	Loser      string `json:"loser"`
}

type Shot int

const (
	Safe Shot = iota
	Eliminated
)

func (s Shot) String() string {
	if s == Eliminated {
		return "eliminated"
	}
	return "safe"
}

type Option func(*Session)

func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithRand shares r for every shuffle and every spin of the session.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rand = r
	}
}

func WithRules(rules Rules) Option {
	return func(s *Session) {
		s.rules = rules
	}
}

// Session is one game of Liars Pub. It is not safe for concurrent use.
type Session struct {
	ID string

	seed     int64
	rand     *rand.Rand
	rules    Rules
	players  []string
	hands    map[string]*Hand
	cycler   *Cycler
	deck     *Deck
	revolver *Revolver
	phase    Phase
	last     *Action
	pending  []Card
	outcome  *Outcome
	winner   string
}

func Start(players []string, opts ...Option) (*Session, error) {
	if len(players) < consts.MinPlayers || len(players)*HandSize > DeckSize {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	seen := map[string]bool{}
	for _, name := range players {
		if name == "" || seen[name] {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		seen[name] = true
	}
	s := &Session{
		ID:      uuid.NewString(),
		rules:   DefaultRules,
		players: append([]string(nil), players...),
		hands:   make(map[string]*Hand, len(players)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		r, err := NewRand(s.seed)
		if err != nil {
			return nil, err
		}
		s.rand = r
	}
	s.cycler = NewCycler(s.players)
	s.deck = NewDeck(s.rand)
	s.revolver = NewRevolver(s.rand)
	for _, name := range s.players {
		s.hands[name] = NewHand()
	}
	if err := s.deal(s.players); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Rules() Rules {
	return s.rules
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Players() []string {
	return append([]string(nil), s.players...)
}

func (s *Session) Active() []string {
	return s.cycler.Active()
}

func (s *Session) CurrentPlayer() string {
	return s.cycler.Current()
}

func (s *Session) IsActive(player string) bool {
	return s.cycler.IsActive(player)
}

func (s *Session) Hand(player string) ([]Card, error) {
	hand, ok := s.hands[player]
	if !ok {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return hand.Cards(), nil
}

// Pick resolves 1-based hand positions of player into cards.
func (s *Session) Pick(player string, indices []int) ([]Card, error) {
	hand, ok := s.hands[player]
	if !ok {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return hand.Pick(indices)
}

// LastAction is the most recent declaration, nil before the first one.
func (s *Session) LastAction() *Action {
	if s.last == nil {
		return nil
	}
	last := *s.last
	return &last
}

// Outcome is the challenge waiting for, or just settled by, a shot.
func (s *Session) Outcome() *Outcome {
	if s.outcome == nil {
		return nil
	}
	outcome := *s.outcome
	outcome.Cards = append([]Card(nil), s.outcome.Cards...)
	return &outcome
}

// TotalCards counts every card the session owns; it is always DeckSize.
func (s *Session) TotalCards() int {
	total := s.deck.Total()
	for _, hand := range s.hands {
		total += hand.Size()
	}
	return total
}

func (s *Session) Declare(player string, cards []Card, rank Card) (*Action, error) {
	switch s.phase {
	case Finished:
		return nil, consts.ErrorsGameOver
	case Resolving:
		return nil, consts.ErrorsShotPending
	case Resolved:
		return nil, consts.ErrorsTurnPending
	}
	if !s.cycler.IsActive(player) {
		return nil, consts.ErrorsPlayerEliminated
	}
	if player != s.cycler.Current() {
		return nil, consts.ErrorsNotYourTurn
	}
	if !isRank(rank) {
		return nil, consts.ErrorsInvalidDeclaration
	}
	hand := s.hands[player]
	if err := hand.RemoveCards(cards); err != nil {
		return nil, err
	}
	played := append([]Card(nil), cards...)
	s.deck.Discard(played)
	s.last = &Action{Player: player, Count: len(played), Rank: rank}
	s.pending = played
	s.outcome = nil
	s.phase = AwaitingChallenge
	s.cycler.Next()
	action := *s.last
	if hand.Empty() {
		if err := s.refill(player); err != nil {
			return &action, err
		}
	}
	return &action, nil
}

// Accept settles the pending declaration without a challenge.
func (s *Session) Accept() error {
	if s.phase != AwaitingChallenge {
		return consts.ErrorsNoDeclaration
	}
	s.pending = nil
	s.phase = AwaitingDeclaration
	return nil
}

// Challengers lists who may challenge the pending declaration, in seat order.
func (s *Session) Challengers() []string {
	if s.phase != AwaitingChallenge || s.last == nil {
		return nil
	}
	declarer := s.last.Player
	if s.rules.Challenge == ChallengeNext {
		next := s.cycler.After(declarer)
		if next == declarer {
			return nil
		}
		return []string{next}
	}
	challengers := make([]string, 0, len(s.players))
	for seat := s.cycler.After(declarer); seat != declarer; seat = s.cycler.After(seat) {
		challengers = append(challengers, seat)
		if len(challengers) == len(s.players) {
			break
		}
	}
	return challengers
}

func (s *Session) Challenge(by string) (*Outcome, error) {
	if s.phase == Finished {
		return nil, consts.ErrorsGameOver
	}
	if s.phase != AwaitingChallenge {
		return nil, consts.ErrorsNoDeclaration
	}
	allowed := false
	for _, challenger := range s.Challengers() {
		if challenger == by {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, consts.ErrorsChallengeNotAllowed
	}
	outcome := &Outcome{
		Declarer:   s.last.Player,
		Challenger: by,
		Cards:      append([]Card(nil), s.pending...),
		Rank:       s.last.Rank,
		Truthful:   IsTruthful(s.pending, s.last.Rank),
	}
	if outcome.Truthful {
		outcome.Loser = by
	} else {
		outcome.Loser = s.last.Player
	}
	s.outcome = outcome
	s.pending = nil
	s.phase = Resolving
	return s.Outcome(), nil
}

func (s *Session) ResolveShot(loser string) (Shot, error) {
	if s.phase == Finished {
		return Safe, consts.ErrorsGameOver
	}
	if s.phase != Resolving || s.outcome == nil {
		return Safe, consts.ErrorsNothingToResolve
	}
	if loser != s.outcome.Loser {
		return Safe, consts.ErrorsWrongLoser
	}
	shot := Safe
	if s.revolver.Fire() {
		shot = Eliminated
		s.eliminate(loser)
	}
	if winner, ok := s.CheckWin(); ok {
		s.winner = winner
		s.phase = Finished
	} else {
		s.phase = Resolved
	}
	return shot, nil
}

func (s *Session) CheckWin() (string, bool) {
	active := s.cycler.Active()
	if len(active) == 1 {
		return active[0], true
	}
	return "", false
}

// AdvanceTurn moves to the next active seat and drops anything left of
// the previous declaration.
func (s *Session) AdvanceTurn() (string, error) {
	switch s.phase {
	case Finished:
		return "", consts.ErrorsGameOver
	case Resolving:
		return "", consts.ErrorsShotPending
	}
	s.pending = nil
	s.outcome = nil
	s.phase = AwaitingDeclaration
	return s.cycler.Next(), nil
}

// Reset gathers all 20 cards, shuffles and deals a fresh hand to every
// active player. Turn, phase and revolver are left as they are.
func (s *Session) Reset() error {
	if s.phase == Finished {
		return consts.ErrorsGameOver
	}
	for _, hand := range s.hands {
		hand.Clear()
	}
	s.deck.Reset()
	return s.deal(s.cycler.Active())
}

func (s *Session) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:        s.ID,
		Seats:     make([]Seat, 0, len(s.players)),
		Current:   s.cycler.Current(),
		Last:      s.LastAction(),
		Phase:     s.phase,
		Winner:    s.winner,
		Rules:     s.rules,
		Deck:      s.deck.Size(),
		Discarded: len(s.deck.discard),
		Chambers:  s.revolver.Remaining(),
	}
	for _, name := range s.players {
		snapshot.Seats = append(snapshot.Seats, Seat{
			Name:  name,
			Cards: s.hands[name].Size(),
			Out:   !s.cycler.IsActive(name),
		})
	}
	return snapshot
}

func (s *Session) eliminate(player string) {
	s.cycler.Deactivate(player)
	s.deck.Remove(s.hands[player].Clear())
}

func (s *Session) deal(players []string) error {
	if len(players)*HandSize > s.deck.Size() {
		return consts.ErrorsDeckExhausted
	}
	for _, name := range players {
		cards, err := s.deck.Draw(HandSize)
		if err != nil {
			return err
		}
		s.hands[name].AddCards(cards)
	}
	return nil
}

func (s *Session) refill(player string) error {
	switch s.rules.Refill {
	case RefillEmpty:
		empty := make([]string, 0, len(s.players))
		for _, name := range s.cycler.Active() {
			if s.hands[name].Empty() {
				empty = append(empty, name)
			}
		}
		s.deck.Refill()
		return s.deal(empty)
	case RefillTable:
		active := s.cycler.Active()
		held := 0
		for _, name := range active {
			held += s.hands[name].Size()
		}
		if s.deck.Size()+len(s.deck.discard)+held < len(active)*HandSize {
			return consts.ErrorsDeckExhausted
		}
		s.deck.Refill()
		for _, name := range active {
			s.deck.Collect(s.hands[name].Clear())
		}
		return s.deal(active)
	default:
		s.deck.Refill()
		return s.deal([]string{player})
	}
}

package database

import (
	"fmt"
	"sync"

	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
)

// Signals passed through Liar.States. Only the seat holding a signal may touch the session.
const (
	StatePlay = iota + 1
	StateChallenge
	StateWaiting
)

// Liar is a running table: one session plus the seats' hand-off channels.
type Liar struct {
	sync.Mutex

	Room      *Room              `json:"room"`
	PlayerIDs []int64            `json:"playerIds"`
	States    map[int64]chan int `json:"states"`
	Session   *liar.Session      `json:"session"`

	// Asked is how many of the pending challengers have declined.
	Asked int `json:"asked"`

	names   map[int64]string
	ids     map[string]int64
	aborted bool
}

// NewLiar seats the room's players in id order and starts a session.
func NewLiar(room *Room) (*Liar, error) {
	ids := RoomPlayers(room.ID)
	if len(ids) < consts.MinPlayers || len(ids) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	table := &Liar{
		Room:      room,
		PlayerIDs: ids,
		States:    make(map[int64]chan int, len(ids)),
		names:     make(map[int64]string, len(ids)),
		ids:       make(map[string]int64, len(ids)),
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := seatName(id)
		if _, taken := table.ids[name]; taken {
			name = fmt.Sprintf("%s[%d]", name, id)
		}
		table.names[id] = name
		table.ids[name] = id
		table.States[id] = make(chan int, 2)
		names = append(names, name)
	}
	session, err := liar.Start(names, liar.WithRules(room.Rules), liar.WithSeed(room.Seed))
	if err != nil {
		return nil, err
	}
	table.Session = session
	return table, nil
}

func seatName(id int64) string {
	if player := getPlayer(id); player != nil {
		return player.Name
	}
	return ""
}

// Name is the seat name a player plays under.
func (l *Liar) Name(playerId int64) string {
	return l.names[playerId]
}

// PlayerID maps a seat name back to the connected player.
func (l *Liar) PlayerID(name string) int64 {
	return l.ids[name]
}

// Signal hands the turn token to a seat. It never blocks.
func (l *Liar) Signal(playerId int64, state int) {
	if ch, ok := l.States[playerId]; ok {
		select {
		case ch <- state:
		default:
		}
	}
}

// SignalName is Signal addressed by seat name.
func (l *Liar) SignalName(name string, state int) {
	l.Signal(l.PlayerID(name), state)
}

func (l *Liar) Abort() {
	l.Lock()
	l.aborted = true
	l.Unlock()
	for _, id := range l.PlayerIDs {
		l.Signal(id, StateWaiting)
	}
}

func (l *Liar) Aborted() bool {
	l.Lock()
	defer l.Unlock()
	return l.aborted
}

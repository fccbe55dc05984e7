package database

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
)

type Room struct {
	sync.Mutex

	ID         int64      `json:"id"`
	Type       int        `json:"type"`
	Liar       *Liar      `json:"liar"`
	State      int        `json:"state"`
	Players    int        `json:"players"`
	Creator    int64      `json:"creator"`
	MaxPlayers int        `json:"maxPlayers"`
	Password   string     `json:"password"`
	EnableChat bool       `json:"enableChat"`
	Rules      liar.Rules `json:"rules"`
	Seed       int64      `json:"seed"`

	activeTime atomic.Int64
}

// touch marks the room as active now.
func (room *Room) touch() {
	room.activeTime.Store(time.Now().UnixNano())
}

func (room *Room) ActiveTime() time.Time {
	return time.Unix(0, room.activeTime.Load())
}

func (r *Room) Model() model.Room {
	return model.Room{
		ID:        r.ID,
		Type:      r.Type,
		TypeDesc:  consts.GameTypes[r.Type],
		Players:   r.Players,
		State:     r.State,
		StateDesc: consts.RoomStates[r.State],
		Creator:   r.Creator,
	}
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.touch()
	playersIds := getRoomPlayers(room.ID)
	if playersIds == nil {
		return
	}
	ok, left := playersIds.remove(player.ID)
	if ok {
		room.Players--
		player.RoomID = 0
		if left > 0 && room.Creator == player.ID {
			room.Creator = playersIds.list()[0]
		}
	}
	if left == 0 {
		room.delete()
	}
}

// Cancel removes the room once it has idled for a day or nobody in it is online.
func (room *Room) Cancel() {
	if room.ActiveTime().Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	for _, id := range RoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.Online() {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

// Finish puts a running room back to waiting and drops its table.
func (room *Room) Finish() {
	room.Lock()
	defer room.Unlock()
	room.State = consts.RoomStateWaiting
	room.Liar = nil
	room.touch()
}

// Abort stops the room's game if one is running.
func (room *Room) Abort() {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		room.abort()
	}
}

// abort stops the running game and sends every seat back to the waiting room.
func (room *Room) abort() {
	if room.Liar != nil {
		log.Infof("room %d game %s aborted\n", room.ID, room.Liar.Session.ID)
		room.Liar.Abort()
	}
	room.State = consts.RoomStateWaiting
	room.Liar = nil
	room.broadcast("Game aborted, back to the waiting room.\n")
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.touch()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerId := range RoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && player.Online() && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		if room.Liar != nil {
			room.Liar.Abort()
		}
	}
}

package database

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

var defaults = struct {
	sync.RWMutex
	rules liar.Rules
	seed  int64
}{rules: liar.DefaultRules}

// Configure sets the rules and seed new rooms start with.
func Configure(rules liar.Rules, seed int64) {
	defaults.Lock()
	defer defaults.Unlock()
	defaults.rules = rules
	defaults.seed = seed
}

// Sweep drops rooms nobody is connected to, once per interval, until stop is closed.
func Sweep(interval time.Duration, stop <-chan struct{}) {
	async.Async(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			for _, room := range GetRooms() {
				room.Lock()
				room.Cancel()
				room.Unlock()
			}
		}
	})
}

func Connected(conn Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  strings.TrimSpace(info.Name),
		Score: info.Score,
	}
	if player.Name == "" {
		player.Name = "player"
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64) *Room {
	defaults.RLock()
	rules, seed := defaults.rules, defaults.seed
	defaults.RUnlock()
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		Type:       consts.GameTypeLiar,
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		MaxPlayers: consts.MaxPlayers,
		EnableChat: true,
		Rules:      rules,
		Seed:       seed,
	}
	room.touch()
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, newSeats())
	log.Infof("room %d created by %d\n", room.ID, creator)
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// RoomPlayers returns the ids seated in the room, sorted.
func RoomPlayers(roomId int64) []int64 {
	if s := getRoomPlayers(roomId); s != nil {
		return s.list()
	}
	return []int64{}
}

func getRoomPlayers(roomId int64) *seats {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(*seats)
	}
	return nil
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playersIds := getRoomPlayers(roomId)
	if playersIds == nil {
		return consts.ErrorsRoomInvalid
	}
	if playersIds.add(playerId) {
		room.Players++
	}
	room.touch()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

// SetRoomProps changes one room setting from the waiting room's "set <key> <value>" command.
func SetRoomProps(room *Room, key, val string) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	switch strings.ToLower(key) {
	case consts.RoomPropsRefill:
		refill, err := liar.ParseRefillPolicy(val)
		if err != nil {
			return err
		}
		room.Rules.Refill = refill
	case consts.RoomPropsChallenge:
		challenge, err := liar.ParseChallengeRule(val)
		if err != nil {
			return err
		}
		room.Rules.Challenge = challenge
	case consts.RoomPropsPassword:
		if strings.ToLower(val) == "off" {
			val = ""
		}
		room.Password = val
	case consts.RoomPropsChat:
		switch strings.ToLower(val) {
		case "on":
			room.EnableChat = true
		case "off":
			room.EnableChat = false
		default:
			return consts.ErrorsRoomPropsInvalid
		}
	default:
		return consts.ErrorsRoomPropsInvalid
	}
	room.broadcast(fmt.Sprintf("%s set to %s\n", key, val))
	return nil
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}

func BroadcastChat(player *Player, msg string, exclude ...int64) error {
	room := getRoom(player.RoomID)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	if !room.EnableChat {
		return consts.ErrorsChatUnopened
	}
	log.Infof("chat msg, player %s %s say: %s\n", player, player.IP, strings.TrimSpace(msg))
	room.broadcast(msg, exclude...)
	return nil
}

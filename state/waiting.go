package state

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/database"
	"github.com/ratel-online/liars-pub/state/game"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateLiarGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			if newOwner := database.GetPlayer(room.Creator); newOwner != nil && newOwner.ID != player.ID {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		command := strings.ToLower(signal)
		switch {
		case isLs(command):
			viewRoomPlayers(room, player)
		case command == "start" || command == "s":
			if room.Creator != player.ID {
				_ = player.WriteString("Only the room owner can start the game.\n")
				continue
			}
			if err := startGame(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		case strings.HasPrefix(command, "set "):
			tags := strings.Fields(signal)
			if len(tags) != 3 || room.Creator != player.ID {
				_ = player.WriteError(consts.ErrorsRoomPropsInvalid)
				continue
			}
			if err := database.SetRoomProps(room, tags[1], tags[2]); err != nil {
				_ = player.WriteError(err)
			}
		case len(signal) > 0:
			if err := database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal)); err != nil {
				_ = player.WriteError(err)
			}
		}
	}
}

func startGame(room *database.Room) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return nil
	}
	if room.Players < consts.MinPlayers {
		return consts.ErrorsGamePlayersInvalid
	}
	table, err := game.InitLiar(room)
	if err != nil {
		return err
	}
	room.Liar = table
	room.State = consts.RoomStateRunning
	log.Infof("room %d started game %s with %d players\n", room.ID, table.Session.ID, room.Players)
	return nil
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, playerId := range database.RoomPlayers(room.ID) {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		player := database.GetPlayer(playerId)
		if player == nil {
			continue
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-11s%-10v\n", "refill:", room.Rules.Refill))
	buf.WriteString(fmt.Sprintf("%-11s%-10v\n", "challenge:", room.Rules.Challenge))
	buf.WriteString(fmt.Sprintf("%-11s%-10v\n", "ct:", sprintPropsState(room.EnableChat)))
	pwd := room.Password
	if pwd != "" {
		if room.Creator != currPlayer.ID {
			pwd = "********"
		}
	} else {
		pwd = "off"
	}
	buf.WriteString(fmt.Sprintf("%-11s%-20v\n", "pwd:", pwd))
	_ = currPlayer.WriteString(buf.String())
}

func sprintPropsState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

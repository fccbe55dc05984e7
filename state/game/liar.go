package game

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/database"
	"github.com/ratel-online/liars-pub/liar"
	"github.com/ratel-online/liars-pub/render"
)

type Liar struct{}

// InitLiar starts a session for the room and hands the first turn out.
func InitLiar(room *database.Room) (*database.Liar, error) {
	table, err := database.NewLiar(room)
	if err != nil {
		return nil, err
	}
	table.SignalName(table.Session.CurrentPlayer(), database.StatePlay)
	return table, nil
}

func (g *Liar) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	table := room.Liar
	if table == nil {
		return consts.StateWaiting, nil
	}
	table.Lock()
	rules := table.Session.Rules()
	seats := table.Session.Players()
	hand, _ := table.Session.Hand(table.Name(player.ID))
	table.Unlock()
	buf := bytes.Buffer{}
	buf.WriteString("Game starting!\n")
	buf.WriteString(fmt.Sprintf("Seats: %s\n", strings.Join(seats, ", ")))
	buf.WriteString(render.Instructions(rules))
	buf.WriteString(fmt.Sprintf("Your cards: %s\n", render.Hand(hand)))
	_ = player.WriteString(buf.String())
	for {
		state := <-table.States[player.ID]
		if table.Aborted() {
			return consts.StateWaiting, nil
		}
		var err error
		switch state {
		case database.StatePlay:
			err = handlePlay(room, table, player)
		case database.StateChallenge:
			err = handleChallenge(room, table, player)
		case database.StateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
		if err != nil {
			log.Error(err)
			return 0, err
		}
	}
}

// Exit leaves a running game, which ends it for the whole table.
func (g *Liar) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		room.Abort()
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s left the game.\n", player.Name))
	}
	return consts.StateHome
}

func handlePlay(room *database.Room, table *database.Liar, player *database.Player) error {
	name := table.Name(player.ID)
	database.Broadcast(room.ID, fmt.Sprintf("It's %s's turn! \n", name), player.ID)
	for {
		table.Lock()
		hand, err := table.Session.Hand(name)
		snapshot := table.Session.Snapshot()
		table.Unlock()
		if err != nil {
			return err
		}
		buf := bytes.Buffer{}
		buf.WriteString(fmt.Sprintf("It's your turn, %s! \n", name))
		buf.WriteString(render.Remains(snapshot))
		buf.WriteString(render.Cards(hand))
		buf.WriteString(fmt.Sprintf("Your cards: %s\n", render.Hand(hand)))
		buf.WriteString("Play cards as '<indices> <rank>', e.g. '1 3 K': \n")
		_ = player.WriteString(buf.String())
		input, err := player.AskForString()
		if err != nil {
			return err
		}
		if table.Aborted() {
			return nil
		}
		indices, rank, err := parsePlay(input)
		if err != nil {
			_ = player.WriteError(err)
			continue
		}
		table.Lock()
		var action *liar.Action
		cards, err := table.Session.Pick(name, indices)
		if err == nil {
			action, err = table.Session.Declare(name, cards, rank)
		}
		table.Unlock()
		if action == nil {
			if isRecoverable(err) {
				_ = player.WriteError(err)
				continue
			}
			return err
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s %s\n", name, action))
		if err == consts.ErrorsDeckExhausted {
			database.Broadcast(room.ID, err.Error()+"\n")
			table.Lock()
			err = table.Session.Reset()
			table.Unlock()
			if err != nil {
				return err
			}
			database.Broadcast(room.ID, "The deck has been reset and every hand dealt again.\n")
		} else if err != nil {
			return err
		}
		table.Asked = 0
		return passChallenge(room, table)
	}
}

func handleChallenge(room *database.Room, table *database.Liar, player *database.Player) error {
	name := table.Name(player.ID)
	table.Lock()
	last := table.Session.LastAction()
	snapshot := table.Session.Snapshot()
	table.Unlock()
	if last == nil {
		return consts.ErrorsNoDeclaration
	}
	left := 0
	if seat, ok := snapshot.Seat(last.Player); ok {
		left = seat.Cards
	}
	challenge, err := askYesNo(player, fmt.Sprintf("%s %s and holds %d card(s). Do you want to challenge? (y/n): \n", last.Player, last, left))
	if err != nil {
		return err
	}
	if table.Aborted() {
		return nil
	}
	if !challenge {
		database.Broadcast(room.ID, fmt.Sprintf("%s lets it go.\n", name))
		table.Asked++
		return passChallenge(room, table)
	}

	table.Lock()
	outcome, err := table.Session.Challenge(name)
	if err != nil {
		table.Unlock()
		return err
	}
	shot, err := table.Session.ResolveShot(outcome.Loser)
	if err != nil {
		table.Unlock()
		return err
	}
	winner, won := table.Session.CheckWin()
	next := ""
	if !won {
		next, err = table.Session.AdvanceTurn()
	}
	table.Unlock()
	if err != nil {
		return err
	}

	database.Broadcast(room.ID, render.Challenge(*outcome)+render.Shot(outcome.Loser, shot))
	if won {
		database.Broadcast(room.ID, render.Winner(winner))
		if p := database.GetPlayer(table.PlayerID(winner)); p != nil {
			p.Score++
		}
		log.Infof("room %d game %s won by %s\n", room.ID, table.Session.ID, winner)
		room.Finish()
		for _, id := range table.PlayerIDs {
			table.Signal(id, database.StateWaiting)
		}
		return nil
	}
	table.SignalName(next, database.StatePlay)
	return nil
}

// passChallenge asks the next challenger in line, or settles the declaration
// once everybody has let it go.
func passChallenge(room *database.Room, table *database.Liar) error {
	table.Lock()
	challengers := table.Session.Challengers()
	if table.Asked < len(challengers) {
		next := challengers[table.Asked]
		table.Unlock()
		table.SignalName(next, database.StateChallenge)
		return nil
	}
	err := table.Session.Accept()
	current := table.Session.CurrentPlayer()
	table.Unlock()
	if err != nil {
		return err
	}
	database.Broadcast(room.ID, "No one challenged. Moving to next player.\n")
	table.SignalName(current, database.StatePlay)
	return nil
}

func askYesNo(player *database.Player, question string) (bool, error) {
	for {
		_ = player.WriteString(question)
		answer, err := player.AskForString()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		_ = player.WriteString("Please answer y or n.\n")
	}
}

// parsePlay reads "<indices> <rank>", e.g. "1 3 K".
func parsePlay(input string) ([]int, liar.Card, error) {
	fields := strings.Fields(input)
	if len(fields) < 2 {
		return nil, 0, consts.ErrorsInvalidPlay
	}
	rank, err := liar.ParseRank(fields[len(fields)-1])
	if err != nil {
		return nil, 0, err
	}
	indices := make([]int, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		index, err := strconv.Atoi(field)
		if err != nil {
			return nil, 0, consts.ErrorsInvalidPlay
		}
		indices = append(indices, index)
	}
	return indices, rank, nil
}

func isRecoverable(err error) bool {
	e, ok := err.(consts.Error)
	return ok && !e.Exit
}

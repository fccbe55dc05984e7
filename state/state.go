package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/database"
	"github.com/ratel-online/liars-pub/state/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateLiarGame, &game.Liar{})
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Run drives one connected player through the menus and games until the connection closes.
func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsChanClosed {
				state.Exit(player)
				break
			}
			if e, ok := err.(consts.Error); ok {
				if e.Exit {
					stateId = state.Exit(player)
				}
			} else {
				log.Error(err)
				state.Exit(player)
				break
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	return signal == "ls" || signal == "v"
}

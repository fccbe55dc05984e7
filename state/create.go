package state

import (
	"fmt"

	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/database"
)

type create struct{}

func (*create) Next(player *database.Player) (consts.StateID, error) {
	room := database.CreateRoom(player.ID)
	err := player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	_ = player.WriteString(fmt.Sprintf("Rules: %s. Type 'start' when everybody is in.\n", room.Rules))
	return consts.StateWaiting, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}

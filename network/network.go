package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/database"
	"github.com/ratel-online/liars-pub/state"
)

// AuthTimeout bounds how long a new connection may take to send its AuthInfo.
var AuthTimeout = 3 * time.Second

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser, ip string) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	if database.GetPlayer(authInfo.ID) != nil {
		_ = c.Write(protocol.ErrorPacket(consts.ErrorsAuthFail))
		return consts.ErrorsAuthFail
	}
	player := database.Connected(c, authInfo)
	player.IP = ip
	log.Infof("player auth accessed, ip %s, %d:%s\n", player.IP, authInfo.ID, authInfo.Name)
	async.Async(func() {
		state.Run(player)
	})
	defer player.Offline()
	return player.Listening()
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}

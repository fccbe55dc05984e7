package database

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/liars-pub/consts"
	"github.com/ratel-online/liars-pub/liar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	WriteDelay = 0
}

type fakeConn struct {
	sync.Mutex
	in      chan *protocol.Packet
	written []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan *protocol.Packet, 8)}
}

func (c *fakeConn) Read() (*protocol.Packet, error) {
	packet, ok := <-c.in
	if !ok {
		return nil, io.EOF
	}
	return packet, nil
}

func (c *fakeConn) Write(packet protocol.Packet) error {
	c.Lock()
	defer c.Unlock()
	c.written = append(c.written, string(packet.Body))
	return nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) output() string {
	c.Lock()
	defer c.Unlock()
	return strings.Join(c.written, "")
}

func connect(t *testing.T, id int64, name string) (*Player, *fakeConn) {
	t.Helper()
	conn := newFakeConn()
	player := Connected(conn, &model.AuthInfo{ID: id, Name: name})
	t.Cleanup(func() {
		players.Del(id)
	})
	return player, conn
}

func TestJoinAndLeaveRoom(t *testing.T) {
	alice, _ := connect(t, 101, "Alice")
	bob, _ := connect(t, 102, "Bob")
	room := CreateRoom(alice.ID)
	require.NoError(t, JoinRoom(room.ID, alice.ID))
	require.NoError(t, JoinRoom(room.ID, bob.ID))

	assert.Equal(t, 2, room.Players)
	assert.Equal(t, []int64{101, 102}, RoomPlayers(room.ID))
	assert.Equal(t, room.ID, bob.RoomID)
	assert.Equal(t, consts.GameTypeLiar, room.Type)

	LeaveRoom(room.ID, alice.ID)
	assert.Equal(t, int64(102), room.Creator)
	assert.Equal(t, int64(0), alice.RoomID)

	LeaveRoom(room.ID, bob.ID)
	assert.Nil(t, GetRoom(room.ID))
}

func TestJoinRoomErrors(t *testing.T) {
	assert.Equal(t, consts.ErrorsExist, JoinRoom(1, 999))

	owner, _ := connect(t, 110, "P0")
	assert.Equal(t, consts.ErrorsRoomInvalid, JoinRoom(-1, owner.ID))

	room := CreateRoom(owner.ID)
	require.NoError(t, JoinRoom(room.ID, owner.ID))
	for i := int64(1); i < consts.MaxPlayers; i++ {
		p, _ := connect(t, 110+i, "P")
		require.NoError(t, JoinRoom(room.ID, p.ID))
	}
	late, _ := connect(t, 119, "Late")
	assert.Equal(t, consts.ErrorsRoomPlayersIsFull, JoinRoom(room.ID, late.ID))

	room.State = consts.RoomStateRunning
	assert.Equal(t, consts.ErrorsJoinFailForRoomRunning, JoinRoom(room.ID, late.ID))
}

func TestSetRoomProps(t *testing.T) {
	owner, conn := connect(t, 120, "Owner")
	room := CreateRoom(owner.ID)
	require.NoError(t, JoinRoom(room.ID, owner.ID))
	assert.Equal(t, liar.DefaultRules, room.Rules)

	require.NoError(t, SetRoomProps(room, "refill", "table"))
	require.NoError(t, SetRoomProps(room, "CHALLENGE", "any"))
	assert.Equal(t, liar.Rules{Refill: liar.RefillTable, Challenge: liar.ChallengeAny}, room.Rules)

	require.NoError(t, SetRoomProps(room, "pwd", "secret"))
	assert.Equal(t, "secret", room.Password)
	require.NoError(t, SetRoomProps(room, "pwd", "off"))
	assert.Equal(t, "", room.Password)

	require.NoError(t, SetRoomProps(room, "ct", "off"))
	assert.False(t, room.EnableChat)
	assert.Equal(t, consts.ErrorsChatUnopened, BroadcastChat(owner, "hi\n"))

	assert.Equal(t, consts.ErrorsRoomPropsInvalid, SetRoomProps(room, "refill", "sometimes"))
	assert.Equal(t, consts.ErrorsRoomPropsInvalid, SetRoomProps(room, "ct", "maybe"))
	assert.Equal(t, consts.ErrorsRoomPropsInvalid, SetRoomProps(room, "speed", "fast"))
	assert.Contains(t, conn.output(), "refill set to table")

	LeaveRoom(room.ID, owner.ID)
}

func TestBroadcastSkipsExcluded(t *testing.T) {
	alice, aliceConn := connect(t, 130, "Alice")
	bob, bobConn := connect(t, 131, "Bob")
	room := CreateRoom(alice.ID)
	require.NoError(t, JoinRoom(room.ID, alice.ID))
	require.NoError(t, JoinRoom(room.ID, bob.ID))

	Broadcast(room.ID, "hello\n", alice.ID)
	require.NoError(t, BroadcastChat(bob, "Bob say: hey\n"))

	assert.NotContains(t, aliceConn.output(), "hello")
	assert.Contains(t, bobConn.output(), ">> hello\n")
	assert.Contains(t, aliceConn.output(), ">> Bob say: hey\n")

	LeaveRoom(room.ID, alice.ID)
	LeaveRoom(room.ID, bob.ID)
}

func TestNewLiarSeatsPlayers(t *testing.T) {
	one, _ := connect(t, 140, "Sam")
	two, _ := connect(t, 141, "Sam")
	room := CreateRoom(one.ID)
	room.Seed = 9

	_, err := NewLiar(room)
	assert.Equal(t, consts.ErrorsGamePlayersInvalid, err)

	require.NoError(t, JoinRoom(room.ID, one.ID))
	require.NoError(t, JoinRoom(room.ID, two.ID))
	table, err := NewLiar(room)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sam", "Sam[141]"}, table.Session.Players())
	assert.Equal(t, "Sam[141]", table.Name(two.ID))
	assert.Equal(t, two.ID, table.PlayerID("Sam[141]"))

	table.Signal(one.ID, StatePlay)
	table.Signal(one.ID, StatePlay)
	table.Signal(one.ID, StatePlay)
	assert.Len(t, table.States[one.ID], 2)

	LeaveRoom(room.ID, one.ID)
	LeaveRoom(room.ID, two.ID)
}

func TestOfflineAbortsRunningGame(t *testing.T) {
	alice, _ := connect(t, 150, "Alice")
	bob, bobConn := connect(t, 151, "Bob")
	room := CreateRoom(alice.ID)
	require.NoError(t, JoinRoom(room.ID, alice.ID))
	require.NoError(t, JoinRoom(room.ID, bob.ID))
	table, err := NewLiar(room)
	require.NoError(t, err)
	room.Liar = table
	room.State = consts.RoomStateRunning

	alice.Offline()

	assert.True(t, table.Aborted())
	assert.Equal(t, consts.RoomStateWaiting, room.State)
	assert.Nil(t, room.Liar)
	assert.Equal(t, StateWaiting, <-table.States[bob.ID])
	assert.Equal(t, []int64{151}, RoomPlayers(room.ID))
	assert.Equal(t, int64(151), room.Creator)
	assert.Contains(t, bobConn.output(), "Alice lost connection!")
	assert.Nil(t, GetPlayer(alice.ID))

	LeaveRoom(room.ID, bob.ID)
}

func TestAskForString(t *testing.T) {
	player, conn := connect(t, 160, "Reader")
	go func() {
		_ = player.Listening()
	}()
	done := make(chan string)
	go func() {
		s, _ := player.AskForString()
		done <- s
	}()
	require.Eventually(t, func() bool { return player.read.Load() }, time.Second, time.Millisecond)
	conn.in <- &protocol.Packet{Body: []byte(" 1 2 K \n")}
	assert.Equal(t, "1 2 K", <-done)
	assert.Contains(t, conn.output(), consts.IsStart)

	close(conn.in)
}

func TestRoomPlayersWhileSeatsChange(t *testing.T) {
	owner, _ := connect(t, 170, "Owner")
	guest, _ := connect(t, 171, "Guest")
	room := CreateRoom(owner.ID)
	require.NoError(t, JoinRoom(room.ID, owner.ID))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = JoinRoom(room.ID, guest.ID)
			LeaveRoom(room.ID, guest.ID)
		}
	}()
	for i := 0; i < 200; i++ {
		assert.Contains(t, RoomPlayers(room.ID), owner.ID)
		Broadcast(room.ID, "tick\n")
	}
	<-done

	assert.Equal(t, []int64{170}, RoomPlayers(room.ID))
	assert.Equal(t, 1, room.Players)
	assert.WithinDuration(t, time.Now(), room.ActiveTime(), time.Minute)

	LeaveRoom(room.ID, owner.ID)
	assert.Nil(t, GetRoom(room.ID))
	assert.Empty(t, RoomPlayers(room.ID))
}

package database

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/liars-pub/consts"
)

// Conn is the part of a core network connection a player talks through.
type Conn interface {
	Read() (*protocol.Packet, error)
	Write(packet protocol.Packet) error
	Close() error
}

// WriteDelay spaces out consecutive writes so terminal clients keep frames apart.
var WriteDelay = 30 * time.Millisecond

type Player struct {
	ID     int64  `json:"id"`
	IP     string `json:"ip"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	RoomID int64  `json:"roomId"`

	conn   Conn
	data   chan *protocol.Packet
	read   atomic.Bool
	state  consts.StateID
	online atomic.Bool
}

func (p *Player) Write(bytes []byte) error {
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

// Offline releases the connection. A waiting room simply loses the seat, a
// running game is aborted.
func (p *Player) Offline() {
	p.online.Store(false)
	_ = p.conn.Close()
	close(p.data)
	room := getRoom(p.RoomID)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.broadcast(fmt.Sprintf("%s lost connection! \n", p.Name), p.ID)
		if room.State == consts.RoomStateRunning {
			room.abort()
		}
		room.removePlayer(p)
		room.Cancel()
	}
	players.Del(p.ID)
}

func (p *Player) Online() bool {
	return p.online.Load()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	time.Sleep(WriteDelay)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{
		Body: json.Marshal(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	_ = p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
	return err
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := strings.ToLower(strings.TrimSpace(packet.String()))
	if single == "exit" || single == "e" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForInt(timeout ...time.Duration) (int, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return 0, err
	}
	return packet.Int()
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(packet.String()), nil
}

func (p *Player) AskForStringWithoutTransaction(timeout ...time.Duration) (string, error) {
	packet, err := p.askForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online.Store(true)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

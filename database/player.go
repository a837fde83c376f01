package database

import (
	"context"
	"fmt"
	stringx "strings"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/model"
	"github.com/ratel-online/tschau-sepp/tschau/game"
)

type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	RoomID int64  `json:"roomId"`
	Seat   int    `json:"seat"`

	sync.Mutex
	conn   *network.Conn
	data   chan *protocol.Packet
	state  consts.StateID
	online bool
	limits *Limiter
}

func (p *Player) Write(bytes []byte) error {
	p.Lock()
	defer p.Unlock()
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

// Offline keeps the seat: the room holds it for the reconnect grace period.
func (p *Player) Offline() {
	p.Lock()
	p.online = false
	_ = p.conn.Close()
	p.Unlock()
	close(p.data)
	if room := getRoom(p.RoomID); room != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := room.Disconnect(ctx, p.ID); err != nil {
			log.Error(err)
		}
	}
	disconnected(p)
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		p.data <- pack
	}
}

func (p *Player) WriteString(data string) error {
	time.Sleep(consts.WriteDelay)
	return p.Write([]byte(data))
}

func (p *Player) WriteObject(data interface{}) error {
	return p.Write(json.Marshal(data))
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.Write([]byte(err.Error() + "\n"))
}

// Notify pushes the player's view of the table.
func (p *Player) Notify(view game.View) error {
	if !p.Online() {
		return nil
	}
	return p.WriteObject(model.Message{Type: model.MessageView, Data: view})
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
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return packet.String(), nil
}

func (p *Player) StartTransaction() {
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	_ = p.WriteString(consts.IsStop)
}

// Allow reports whether the player may send another intent of the kind right now.
func (p *Player) Allow(kind string) bool {
	if p.limits == nil {
		return true
	}
	return p.limits.Allow(kind, time.Now())
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Online() bool {
	p.Lock()
	defer p.Unlock()
	return p.online
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online = true
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

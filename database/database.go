package database

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/model"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()

var settings Settings
var store Store

// Init restores every saved room and starts the janitor. A nil store disables persistence.
func Init(s Settings, st Store) error {
	settings = s
	store = st
	if store != nil {
		snapshots, err := store.List()
		if err != nil {
			return err
		}
		for _, snapshot := range snapshots {
			room, err := restoreRoom(snapshot.RoomID, settings, store, snapshot.Data)
			if err != nil {
				log.Errorf("drop snapshot of room %d: %v\n", snapshot.RoomID, err)
				_ = store.Delete(snapshot.RoomID)
				continue
			}
			rooms.Set(room.ID, room)
			if room.ID > atomic.LoadInt64(&roomIds) {
				atomic.StoreInt64(&roomIds, room.ID)
			}
			log.Infof("room %d restored\n", room.ID)
		}
	}
	async.Async(func() {
		for {
			time.Sleep(consts.JanitorInterval)
			Sweep(time.Now())
		}
	})
	return nil
}

// Sweep drops every expired room.
func Sweep(now time.Time) {
	for _, room := range GetRooms() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		expired, err := room.Expired(ctx, now)
		cancel()
		if err != nil {
			log.Error(err)
			continue
		}
		if expired {
			log.Infof("room %d expired, removed.\n", room.ID)
			DeleteRoom(room)
		}
	}
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:     info.ID,
		Name:   info.Name,
		Score:  info.Score,
		limits: NewLimiter(model.IntentLimits, model.DefaultIntentLimit),
	}
	player.Conn(conn)
	player.State(consts.StateWelcome)
	players.Set(info.ID, player)
	return player
}

// disconnected unregisters p unless a newer connection of the same player replaced it.
func disconnected(p *Player) {
	if current := getPlayer(p.ID); current == p {
		players.Del(p.ID)
	}
}

func CreateRoom() *Room {
	room := NewRoom(atomic.AddInt64(&roomIds, 1), settings, store)
	rooms.Set(room.ID, room)
	log.Infof("room %d created\n", room.ID)
	return room
}

func DeleteRoom(room *Room) {
	if room == nil {
		return
	}
	rooms.Del(room.ID)
	room.Close()
	if store != nil {
		if err := store.Delete(room.ID); err != nil {
			log.Error(err)
		}
	}
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

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

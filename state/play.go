package state

import (
	"context"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/database"
	"github.com/ratel-online/tschau-sepp/model"
	"github.com/ratel-online/tschau-sepp/render"
	"github.com/tidwall/gjson"
)

// play forwards every intent of a seated player to the room. The room answers with views.
type play struct{}

func (s *play) Next(player *database.Player) (consts.StateID, error) {
	packet, err := player.AskForPacket()
	if err != nil {
		return 0, err
	}
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	kind := gjson.GetBytes(packet.Body, "type").String()
	if kind == model.IntentLeave {
		return s.Exit(player), nil
	}
	if !player.Allow(kind) {
		return 0, render.Rejection(player, consts.ErrorsTooManyIntents)
	}
	intent := model.IntentPacket{}
	if err := packet.Unmarshal(&intent); err != nil {
		return 0, render.Rejection(player, consts.ErrorsInputInvalid)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = room.Submit(ctx, database.Intent{
		Kind:     kind,
		PlayerID: player.ID,
		Card:     intent.Card,
		Suit:     intent.Suit,
	})
	if err != nil {
		return 0, render.Rejection(player, err)
	}
	return 0, nil
}

// Exit stands the player up. A dropped connection was already reported by Offline.
func (*play) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil && player.Online() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := room.Disconnect(ctx, player.ID); err != nil {
			log.Error(err)
		}
	}
	player.RoomID = 0
	player.Seat = 0
	return consts.StateSit
}

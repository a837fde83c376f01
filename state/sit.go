package state

import (
	"context"
	"fmt"
	"time"

	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/database"
	"github.com/ratel-online/tschau-sepp/model"
	"github.com/ratel-online/tschau-sepp/render"
	"github.com/tidwall/gjson"
)

// sit waits for a sit intent. Room 0 opens a new room.
type sit struct{}

func (s *sit) Next(player *database.Player) (consts.StateID, error) {
	packet, err := player.AskForPacket()
	if err != nil {
		return 0, err
	}
	if kind := gjson.GetBytes(packet.Body, "type").String(); kind != model.IntentSit {
		return 0, render.Rejection(player, consts.ErrorsNotSeated)
	}
	if !player.Allow(model.IntentSit) {
		return 0, render.Rejection(player, consts.ErrorsTooManyIntents)
	}
	intent := model.IntentPacket{}
	if err := packet.Unmarshal(&intent); err != nil {
		return 0, render.Rejection(player, consts.ErrorsInputInvalid)
	}
	var room *database.Room
	if intent.Room == 0 {
		room = database.CreateRoom()
	} else if room = database.GetRoom(intent.Room); room == nil {
		return 0, render.Rejection(player, consts.ErrorsRoomInvalid)
	}
	name := model.PlayerName(intent.Name, model.PlayerName(player.Name, fmt.Sprintf("player-%d", player.ID)))

	player.RoomID = room.ID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	seat, err := room.Sit(ctx, player.ID, name, player)
	if err != nil {
		player.RoomID = 0
		return 0, render.Rejection(player, err)
	}
	player.Seat = seat
	if err := render.Seated(player, room.ID, seat, name); err != nil {
		return 0, err
	}
	return consts.StatePlay, nil
}

func (*sit) Exit(player *database.Player) consts.StateID {
	return 0
}

package render

import (
	"errors"
	"fmt"

	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/database"
	"github.com/ratel-online/tschau-sepp/model"
	"github.com/ratel-online/tschau-sepp/tschau/game"
)

func Welcome(player *database.Player) error {
	return player.WriteObject(model.Message{
		Type: model.MessageWelcome,
		Msg:  fmt.Sprintf("Hi %s, welcome to Tschau Sepp! Send a sit intent with room 0 to open a table.\n", player.Name),
	})
}

func Seated(player *database.Player, roomID int64, seat int, name string) error {
	return player.WriteObject(model.Message{
		Type: model.MessageSeated,
		Msg:  fmt.Sprintf("%s took seat %d in room %d\n", name, seat, roomID),
		Data: model.Seated{RoomID: roomID, Seat: seat, Name: name},
	})
}

// Rejection reports a refused intent. Game rule codes are kept so clients can tell them apart.
func Rejection(player *database.Player, err error) error {
	rejection := model.Rejection{Reason: err.Error()}
	var gameErr game.Rejection
	var serverErr consts.Error
	switch {
	case errors.As(err, &gameErr):
		rejection.Code = gameErr.Code()
	case errors.As(err, &serverErr):
		rejection.Code = serverErr.Code
	}
	return player.WriteObject(model.Message{
		Type: model.MessageRejection,
		Msg:  err.Error() + "\n",
		Data: rejection,
	})
}

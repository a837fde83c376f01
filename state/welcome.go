package state

import (
	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/database"
	"github.com/ratel-online/tschau-sepp/render"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	if err := render.Welcome(player); err != nil {
		return 0, err
	}
	return consts.StateSit, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}

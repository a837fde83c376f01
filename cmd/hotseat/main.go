package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tschau-sepp/config"
	"github.com/ratel-online/tschau-sepp/tschau/game"
	"github.com/ratel-online/tschau-sepp/tschau/ui"
)

var errQuit = errors.New("quit")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Error(err)
		return
	}
	if err := run(cfg); err != nil && err != errQuit && err != io.EOF {
		log.Error(err)
	}
}

func run(cfg config.Config) error {
	players := make([]*game.Player, 0, game.Seats)
	for seat := 0; seat < game.Seats; seat++ {
		name, err := ui.PromptString(fmt.Sprintf("Name of player %d:", seat+1))
		if err != nil {
			return err
		}
		players = append(players, game.NewPlayer(uuid.NewString(), name))
	}
	g, err := game.New(players, cfg.Ruleset(), cfg.NewRand())
	if err != nil {
		return err
	}
	g.Events().AddListener(ui.Narrator{})
	if err := g.Start(); err != nil {
		return err
	}
	for !g.Over() {
		if err := turn(g); err != nil {
			return err
		}
	}
	return nil
}

// turn asks the current seat for one action and applies it. Rejected moves are printed and
// the seat is asked again.
func turn(g *game.Game) error {
	seat := g.Current()
	ui.Println(g.View(seat))
	if g.Table().Phase == game.PhaseAwaitingColorChoice {
		chosen, err := ui.PromptSuit(g.Rules().Suits)
		if err != nil {
			return err
		}
		return report(g.ChooseColor(seat, chosen))
	}

	canDraw := g.Deck().Size()+g.Pile().Size() > 1
	action, err := ui.PromptAction(g.PlayableCards(seat), canDraw)
	if err != nil {
		return err
	}
	switch action.Command {
	case ui.CommandPlay:
		return report(g.PlayCard(seat, action.Card))
	case ui.CommandDraw:
		return report(g.DrawCard(seat))
	case ui.CommandPass:
		return report(g.Pass(seat))
	case ui.CommandTschau:
		_, err = g.DeclareTschau(seat)
	case ui.CommandSepp:
		_, err = g.DeclareSepp(seat)
	case ui.CommandQuit:
		return errQuit
	}
	return report(err)
}

func report(err error) error {
	var rejection game.Rejection
	if errors.As(err, &rejection) {
		ui.Printfln("Not allowed: %s", rejection.Error())
		return nil
	}
	return err
}

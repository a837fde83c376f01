package game

import (
	"github.com/ratel-online/tschau-sepp/tschau/event"
)

// DeclareTschau announces a single remaining card. Either seat may call at any time
// during play; a wrong call costs Ruleset.FalseCallPenalty cards.
func (g *Game) DeclareTschau(seat int) (bool, error) {
	if err := g.checkSeat(seat); err != nil {
		return false, err
	}
	player := g.players[seat]
	success := player.hand.Size() == 1
	if success {
		player.CalledTschau = true
	}
	g.events.Emit(event.CallPayload{Seat: seat, PlayerName: player.Name, Call: event.CallTschau, Success: success})
	if !success {
		g.penalize(seat, g.rules.FalseCallPenalty, event.PenaltyFalseCall)
	}
	return success, nil
}

// DeclareSepp claims the win with an empty hand. A correct call ends the game.
func (g *Game) DeclareSepp(seat int) (bool, error) {
	if err := g.checkSeat(seat); err != nil {
		return false, err
	}
	player := g.players[seat]
	success := player.hand.Empty()
	g.events.Emit(event.CallPayload{Seat: seat, PlayerName: player.Name, Call: event.CallSepp, Success: success})
	if !success {
		g.penalize(seat, g.rules.FalseCallPenalty, event.PenaltyFalseCall)
		return false, nil
	}
	player.CalledSepp = true
	g.table.Winner = seat
	g.table.Phase = PhaseGameOver
	g.events.Emit(event.GameWonPayload{Seat: seat, PlayerName: player.Name})
	return true, nil
}

package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/tschau-sepp/tschau/card"
)

const viewLogLines = 5

// OpponentView is everything a seat may know about the other one.
type OpponentView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HandCount    int    `json:"handCount"`
	CalledTschau bool   `json:"calledTschau"`
	CalledSepp   bool   `json:"calledSepp"`
}

// View is the per-seat projection sent after every transition. It never carries the
// opponent's cards.
type View struct {
	GameID       string       `json:"gameId"`
	Seat         int          `json:"seat"`
	Name         string       `json:"name"`
	Table        Table        `json:"table"`
	Hand         []card.Card  `json:"hand"`
	CalledTschau bool         `json:"calledTschau"`
	CalledSepp   bool         `json:"calledSepp"`
	Opponent     OpponentView `json:"opponent"`
	DrawCount    int          `json:"drawCount"`
	DiscardCount int          `json:"discardCount"`
	DiscardTop   card.Card    `json:"discardTop"`
	Log          []string     `json:"log"`
	MyTurn       bool         `json:"myTurn"`
}

func (g *Game) View(seat int) View {
	player := g.Player(seat)
	opponent := g.Player(g.next(seat))
	if player == nil || opponent == nil {
		return View{}
	}
	top, _ := g.pile.Top()
	return View{
		GameID:       g.id,
		Seat:         seat,
		Name:         player.Name,
		Table:        g.table,
		Hand:         player.Hand(),
		CalledTschau: player.CalledTschau,
		CalledSepp:   player.CalledSepp,
		Opponent: OpponentView{
			ID:           opponent.ID,
			Name:         opponent.Name,
			HandCount:    opponent.HandSize(),
			CalledTschau: opponent.CalledTschau,
			CalledSepp:   opponent.CalledSepp,
		},
		DrawCount:    g.deck.Size(),
		DiscardCount: g.pile.Size(),
		DiscardTop:   top,
		Log:          g.log.Last(viewLogLines),
		MyTurn:       !g.table.Over() && g.table.CurrentPlayer == seat,
	}
}

func (v View) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", v.DiscardTop))
	switch {
	case v.Table.Over():
		winner := v.Opponent.Name
		if v.Table.Winner == v.Seat {
			winner = v.Name
		}
		lines = append(lines, fmt.Sprintf("Game over, %s won", winner))
	case v.Table.PendingDrawCount > 0:
		lines = append(lines, fmt.Sprintf("Pending draw: %d card(s)", v.Table.PendingDrawCount))
	case v.Table.ForcedSuitMode:
		lines = append(lines, fmt.Sprintf("Forced suit: %s", v.Table.CurrentColor.Paint(v.Table.CurrentColor.String())))
	case v.Table.CurrentColor != v.DiscardTop.Suit:
		lines = append(lines, fmt.Sprintf("Colour to follow: %s", v.Table.CurrentColor.Paint(v.Table.CurrentColor.String())))
	}
	lines = append(lines, fmt.Sprintf("Opponent: %s (%d card(s))", v.Opponent.Name, v.Opponent.HandCount))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", v.DrawCount))
	lines = append(lines, fmt.Sprintf("Your hand: %s", v.Hand))
	return strings.Join(lines, "\n")
}

package game

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

type Phase string

const (
	PhaseAwaitingMove           Phase = "AWAITING_MOVE"
	PhaseAwaitingColorChoice    Phase = "AWAITING_COLOR_CHOICE"
	PhaseAwaitingDrawResolution Phase = "AWAITING_DRAW_RESOLUTION"
	PhaseGameOver               Phase = "GAME_OVER"
)

func (p Phase) Valid() bool {
	switch p {
	case PhaseAwaitingMove, PhaseAwaitingColorChoice, PhaseAwaitingDrawResolution, PhaseGameOver:
		return true
	}
	return false
}

const (
	Seats    = 2
	NoWinner = -1
	LogLimit = 20
)

// Table is the mutable turn state of a game. Only Game methods change it.
type Table struct {
	CurrentPlayer       int       `json:"currentPlayer"`
	CurrentColor        suit.Suit `json:"currentColor"`
	CurrentRank         card.Rank `json:"currentRank"`
	PendingDrawCount    int       `json:"pendingDrawCount"`
	PendingSkip         bool      `json:"pendingSkip"`
	PendingColorChoice  bool      `json:"pendingColorChoice"`
	ForcedSuitMode      bool      `json:"forcedSuitMode"`
	ActiveSpecialEffect card.Rank `json:"activeSpecialEffect,omitempty"`
	Phase               Phase     `json:"phase"`
	Winner              int       `json:"winner"`
}

func (t Table) Over() bool {
	return t.Phase == PhaseGameOver
}

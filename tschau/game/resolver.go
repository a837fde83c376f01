package game

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/effect"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

// Delta is the part of the table a played card rewrites.
type Delta struct {
	CurrentColor        suit.Suit
	CurrentRank         card.Rank
	PendingDrawCount    int
	PendingSkip         bool
	PendingColorChoice  bool
	ForcedSuitMode      bool
	ActiveSpecialEffect card.Rank
}

// Resolve computes the table changes caused by played. initial marks the card turned up
// at the start of a game, which never asks for a colour.
func Resolve(table Table, played card.Card, initial bool, effects effect.Table) Delta {
	delta := Delta{
		CurrentColor:     played.Suit,
		CurrentRank:      played.Rank,
		PendingDrawCount: table.PendingDrawCount,
	}
	for _, e := range effects.Effects(played) {
		switch e := e.(type) {
		case effect.DrawCards:
			// A counter replaces the owed amount, it does not stack.
			delta.PendingDrawCount = e.Amount()
			delta.ActiveSpecialEffect = played.Rank
		case effect.SkipTurn:
			delta.PendingSkip = true
		case effect.PickColor:
			if !initial {
				delta.PendingColorChoice = true
				delta.CurrentColor = table.CurrentColor
			}
		case effect.ForceSuit:
			delta.ForcedSuitMode = true
			delta.ActiveSpecialEffect = played.Rank
		}
	}
	return delta
}

func (t *Table) apply(delta Delta) {
	t.CurrentColor = delta.CurrentColor
	t.CurrentRank = delta.CurrentRank
	t.PendingDrawCount = delta.PendingDrawCount
	t.PendingSkip = delta.PendingSkip
	t.PendingColorChoice = delta.PendingColorChoice
	t.ForcedSuitMode = delta.ForcedSuitMode
	t.ActiveSpecialEffect = delta.ActiveSpecialEffect
}

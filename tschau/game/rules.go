package game

import (
	"fmt"

	"github.com/ratel-online/tschau-sepp/tschau/card"
)

// CanPlay reports whether c may go on the discard pile in the given table state.
func CanPlay(table Table, c card.Card, rules Ruleset) bool {
	switch {
	case table.Phase == PhaseGameOver, table.Phase == PhaseAwaitingColorChoice, table.PendingColorChoice:
		return false
	case table.PendingDrawCount > 0:
		return rules.Effects.Counters(table.ActiveSpecialEffect, c)
	case table.ForcedSuitMode:
		// ActiveSpecialEffect holds the rank that opened the forced suit.
		return c.Suit == table.CurrentColor || c.Rank == table.ActiveSpecialEffect
	default:
		return c.Suit == table.CurrentColor || c.Rank == table.CurrentRank
	}
}

func violation(table Table, c card.Card) string {
	switch {
	case table.PendingDrawCount > 0:
		return fmt.Sprintf("%d cards are owed, counter with a %s or draw", table.PendingDrawCount, table.ActiveSpecialEffect)
	case table.ForcedSuitMode:
		return fmt.Sprintf("%s is forced, play %s or a %s", table.CurrentColor, table.CurrentColor, table.ActiveSpecialEffect)
	default:
		return fmt.Sprintf("%s matches neither %s nor %s", c.Plain(), table.CurrentColor, table.CurrentRank)
	}
}

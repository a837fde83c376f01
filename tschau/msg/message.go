package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) GameStarted(playerNames []string) string {
	return fmt.Sprintf("Game started: %s", strings.Join(playerNames, " vs "))
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c.Plain())
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c.Plain())
}

func (m MessageWriter) PlayerPickedColor(playerName string, s suit.Suit) string {
	return fmt.Sprintf("%s picked %s!", playerName, s)
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int, owed int) string {
	switch {
	case count < owed:
		return fmt.Sprintf("%s drew %d of %d cards, the deck ran dry!", playerName, count, owed)
	case count == 1:
		return fmt.Sprintf("%s drew a card!", playerName)
	default:
		return fmt.Sprintf("%s drew %d cards!", playerName, count)
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed, nothing left to draw!", playerName)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's %s's turn", playerName)
}

func (m MessageWriter) PlayerCalled(playerName string, call event.Call, success bool) string {
	shout := strings.ToUpper(string(call))
	if success {
		return fmt.Sprintf("%s calls %s!", playerName, shout)
	}
	return fmt.Sprintf("%s calls %s at the wrong time!", playerName, shout)
}

func (m MessageWriter) PlayerPenalized(playerName string, count int, reason event.PenaltyReason) string {
	if reason == event.PenaltyMissedTschau {
		return fmt.Sprintf("%s forgot to call TSCHAU! +%d penalty cards", playerName, count)
	}
	return fmt.Sprintf("%s draws %d penalty cards", playerName, count)
}

func (m MessageWriter) DeckReshuffled(size int) string {
	return fmt.Sprintf("Discard pile reshuffled, %d cards to draw", size)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s calls SEPP and wins!", playerName)
}

// Describe renders an engine event as a log line. Unknown payloads render as "".
func (m MessageWriter) Describe(payload event.Payload) string {
	switch p := payload.(type) {
	case event.GameStartedPayload:
		return m.GameStarted(p.PlayerNames)
	case event.FirstCardPlayedPayload:
		return m.FirstCardPlayed(p.Card)
	case event.CardPlayedPayload:
		return m.PlayerPlayedCard(p.PlayerName, p.Card)
	case event.ColorPickedPayload:
		return m.PlayerPickedColor(p.PlayerName, p.Suit)
	case event.CardsDrawnPayload:
		return m.PlayerDrewCards(p.PlayerName, p.Count, p.Owed)
	case event.PlayerPassedPayload:
		return m.PlayerPassed(p.PlayerName)
	case event.TurnSkippedPayload:
		return m.PlayerTurnSkipped(p.PlayerName)
	case event.TurnStartedPayload:
		return m.PlayerTurnStarted(p.PlayerName)
	case event.CallPayload:
		return m.PlayerCalled(p.PlayerName, p.Call, p.Success)
	case event.PenaltyPayload:
		return m.PlayerPenalized(p.PlayerName, p.Count, p.Reason)
	case event.DeckReshuffledPayload:
		return m.DeckReshuffled(p.Size)
	case event.GameWonPayload:
		return m.WinnerFound(p.PlayerName)
	default:
		return ""
	}
}

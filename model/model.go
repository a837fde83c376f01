package model

import (
	stringx "strings"
	"unicode"

	"github.com/ratel-online/core/util/strings"
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

// Message types written to clients.
const (
	MessageWelcome   = "welcome"
	MessageSeated    = "seated"
	MessageView      = "view"
	MessageRejection = "rejection"
)

// Message is the envelope of every object the server writes.
type Message struct {
	Type string      `json:"type"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

type Seated struct {
	RoomID int64  `json:"roomId"`
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
}

type Rejection struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// Intent types read from clients.
const (
	IntentSit         = "sit"
	IntentPlayCard    = "play_card"
	IntentDrawCard    = "draw_card"
	IntentSelectColor = "select_color"
	IntentCallTschau  = "call_tschau"
	IntentCallSepp    = "call_sepp"
	IntentPass        = "pass"
	IntentForceDraw   = "force_draw"
	IntentRematch     = "rematch"
	IntentLeave       = "leave"
)

// IntentLimits caps how many intents of a kind one player may send per minute.
// Kinds not listed share DefaultIntentLimit.
var IntentLimits = map[string]int{
	IntentSit:      10,
	IntentPlayCard: 30,
	IntentDrawCard: 30,
}

const DefaultIntentLimit = 60

const MaxNameLength = 30

// PlayerName cleans a name sent by a client. Control characters and angle brackets are
// dropped, runs of blanks collapse to one space, sensitive words are masked and the result is
// cut to MaxNameLength runes. An empty result yields fallback.
func PlayerName(raw, fallback string) string {
	name := stringx.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			return -1
		}
		return r
	}, raw)
	name = stringx.Join(stringx.Fields(name), " ")
	if name == "" {
		return fallback
	}
	name = strings.Desensitize(name)
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = stringx.TrimSpace(string(runes[:MaxNameLength]))
	}
	return name
}

// IntentPacket is the body of a client packet. Fields unused by Type stay empty.
type IntentPacket struct {
	Type string    `json:"type"`
	Room int64     `json:"room,omitempty"`
	Name string    `json:"name,omitempty"`
	Card card.Card `json:"card"`
	Suit suit.Suit `json:"suit,omitempty"`
}

package event

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

type Payload interface{}

type Listener interface {
	OnEvent(Payload)
}

// Emitter fans payloads out to its listeners in registration order.
type Emitter struct {
	listeners []Listener
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddListener(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) Emit(payload Payload) {
	for _, listener := range e.listeners {
		listener.OnEvent(payload)
	}
}

type GameStartedPayload struct {
	PlayerNames []string
}

type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	Seat       int
	PlayerName string
	Card       card.Card
}

type ColorPickedPayload struct {
	Seat       int
	PlayerName string
	Suit       suit.Suit
}

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Count      int
	Owed       int
}

type PlayerPassedPayload struct {
	Seat       int
	PlayerName string
}

type TurnSkippedPayload struct {
	Seat       int
	PlayerName string
}

type TurnStartedPayload struct {
	Seat       int
	PlayerName string
}

type Call string

const (
	CallTschau Call = "tschau"
	CallSepp   Call = "sepp"
)

type CallPayload struct {
	Seat       int
	PlayerName string
	Call       Call
	Success    bool
}

type PenaltyReason string

const (
	PenaltyFalseCall    PenaltyReason = "false_call"
	PenaltyMissedTschau PenaltyReason = "missed_tschau"
)

type PenaltyPayload struct {
	Seat       int
	PlayerName string
	Count      int
	Reason     PenaltyReason
}

type DeckReshuffledPayload struct {
	Size int
}

type GameWonPayload struct {
	Seat       int
	PlayerName string
}

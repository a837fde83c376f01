package effect

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

type Effect interface{}

type DrawCards struct {
	amount int
}

func NewDrawCards(amount int) Effect {
	return DrawCards{amount: amount}
}

func (e DrawCards) Amount() int {
	return e.amount
}

type SkipTurn struct{}

func NewSkipTurn() Effect {
	return SkipTurn{}
}

type PickColor struct{}

func NewPickColor() Effect {
	return PickColor{}
}

// ForceSuit restricts the next card to the current colour or another card of the same rank.
type ForceSuit struct{}

func NewForceSuit() Effect {
	return ForceSuit{}
}

// Trigger binds effects to a rank. A non-empty Suit restricts the trigger to that suit.
type Trigger struct {
	Rank    card.Rank
	Suit    suit.Suit
	Effects []Effect
}

func (t Trigger) Matches(c card.Card) bool {
	if c.Rank != t.Rank {
		return false
	}
	return t.Suit == "" || t.Suit == c.Suit
}

// Penalty returns the number of cards the trigger makes the next player draw.
func (t Trigger) Penalty() int {
	for _, e := range t.Effects {
		if draw, ok := e.(DrawCards); ok {
			return draw.Amount()
		}
	}
	return 0
}

type Table []Trigger

// Standard is the Tschau Sepp effect table.
func Standard() Table {
	return Table{
		{Rank: card.Seven, Effects: []Effect{NewDrawCards(2)}},
		{Rank: card.Eight, Effects: []Effect{NewSkipTurn()}},
		{Rank: card.Under, Effects: []Effect{NewPickColor()}},
		{Rank: card.Ober, Suit: suit.Rosen, Effects: []Effect{NewDrawCards(4)}},
		{Rank: card.Ace, Effects: []Effect{NewForceSuit()}},
	}
}

func (t Table) Lookup(c card.Card) (Trigger, bool) {
	for _, trigger := range t {
		if trigger.Matches(c) {
			return trigger, true
		}
	}
	return Trigger{}, false
}

func (t Table) Effects(c card.Card) []Effect {
	trigger, ok := t.Lookup(c)
	if !ok {
		return []Effect{}
	}
	return trigger.Effects
}

// Penalizes reports whether a card of rank active can open a draw penalty.
func (t Table) Penalizes(active card.Rank) bool {
	for _, trigger := range t {
		if trigger.Rank == active && trigger.Penalty() > 0 {
			return true
		}
	}
	return false
}

// Counters reports whether c passes on the draw penalty opened by a card of rank active.
func (t Table) Counters(active card.Rank, c card.Card) bool {
	for _, trigger := range t {
		if trigger.Rank == active && trigger.Penalty() > 0 && trigger.Matches(c) {
			return true
		}
	}
	return false
}

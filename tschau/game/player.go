package game

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
)

type Player struct {
	ID           string
	Name         string
	CalledTschau bool
	CalledSepp   bool
	hand         *Hand
}

func NewPlayer(id string, name string) *Player {
	return &Player{ID: id, Name: name, hand: NewHand()}
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

// takeCards adds cards to the hand. A growing hand voids earlier calls.
func (p *Player) takeCards(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	p.hand.AddCards(cards)
	p.CalledTschau = false
	p.CalledSepp = false
}

package game

import (
	"github.com/ratel-online/tschau-sepp/tschau/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(c card.Card) bool {
	return h.indexOf(c) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(table Table, rules Ruleset) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if CanPlay(table, candidateCard, rules) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the first copy of c and keeps the order of the rest.
func (h *Hand) RemoveCard(c card.Card) bool {
	index := h.indexOf(c)
	if index < 0 {
		return false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return true
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) indexOf(c card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return index
		}
	}
	return -1
}

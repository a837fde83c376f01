package game

import (
	"math/rand"

	"github.com/ratel-online/tschau-sepp/tschau/card"
)

// Deck is the draw pile. Cards are taken from the end.
type Deck struct {
	cards []card.Card
}

func NewDeck(rules Ruleset) *Deck {
	return &Deck{cards: card.NewDeck(rules.Suits, rules.Ranks)}
}

func newDeckOf(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	shuffleCards(rng, d.cards)
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Draw pops up to amount cards. It returns fewer when the pile runs out.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		last := len(d.cards) - 1
		cards = append(cards, d.cards[last])
		d.cards = d.cards[:last]
	}
	return cards
}

func (d *Deck) Refill(cards []card.Card, rng *rand.Rand) {
	d.cards = append(d.cards, cards...)
	d.Shuffle(rng)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Deal pops countEach cards into every hand, one card per hand in turn.
func Deal(deck *Deck, hands []*Hand, countEach int) {
	for round := 0; round < countEach; round++ {
		for _, hand := range hands {
			if c, ok := deck.DrawOne(); ok {
				hand.AddCards([]card.Card{c})
			}
		}
	}
}

// ReshuffleDiscardIntoDraw turns everything below the top discard into a fresh draw pile.
// It does nothing unless the draw pile is empty and the discard pile holds two cards or more.
func ReshuffleDiscardIntoDraw(deck *Deck, pile *Pile, rng *rand.Rand) (int, bool) {
	if !deck.Empty() || pile.Size() < 2 {
		return 0, false
	}
	cards := pile.TakeUnderTop()
	deck.Refill(cards, rng)
	return len(cards), true
}

// shuffleCards is a Fisher–Yates shuffle driven by rng.
func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

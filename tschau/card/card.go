package card

import (
	"fmt"

	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

// Rank is the face of a card. B is the Banner (the Swiss ten).
type Rank string

const (
	Six    Rank = "6"
	Seven  Rank = "7"
	Eight  Rank = "8"
	Nine   Rank = "9"
	Under  Rank = "U"
	Ober   Rank = "O"
	King   Rank = "K"
	Ace    Rank = "A"
	Banner Rank = "B"
)

// Ranks lists the canonical nine ranks in deck order.
var Ranks = []Rank{Six, Seven, Eight, Nine, Under, Ober, King, Ace, Banner}

func (r Rank) Valid() bool {
	for _, rank := range Ranks {
		if rank == r {
			return true
		}
	}
	return false
}

func (r Rank) String() string {
	return string(r)
}

func ParseRank(name string) (Rank, error) {
	r := Rank(name)
	if !r.Valid() {
		return "", fmt.Errorf("invalid rank '%s'", name)
	}
	return r, nil
}

// Card is a value type; two cards with the same suit and rank are interchangeable.
type Card struct {
	Suit suit.Suit `json:"suit"`
	Rank Rank      `json:"rank"`
}

func New(s suit.Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

func (c Card) Equal(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Plain renders the card without terminal colours, for logs and the wire.
func (c Card) Plain() string {
	return fmt.Sprintf("%s %s", c.Suit, c.Rank)
}

func (c Card) String() string {
	return c.Suit.Paintf("[%s %s]", c.Suit, c.Rank)
}

// NewDeck returns every suit×rank combination, suit by suit.
func NewDeck(suits []suit.Suit, ranks []Rank) []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, New(s, r))
		}
	}
	return cards
}

package game

import (
	"fmt"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/effect"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
)

// Ruleset carries everything that differs between deck variants: the card vocabulary,
// the effect table and the penalty sizes.
type Ruleset struct {
	Suits    []suit.Suit
	Ranks    []card.Rank
	HandSize int
	Effects  effect.Table

	FalseCallPenalty int
	// MissedTschauPenalty is drawn by a player who empties their hand without having
	// called Tschau. Zero disables the rule.
	MissedTschauPenalty int
}

func StandardRuleset() Ruleset {
	return Ruleset{
		Suits:            suit.All,
		Ranks:            card.Ranks,
		HandSize:         7,
		Effects:          effect.Standard(),
		FalseCallPenalty: 2,
	}
}

func (r Ruleset) DeckSize() int {
	return len(r.Suits) * len(r.Ranks)
}

func (r Ruleset) HasSuit(s suit.Suit) bool {
	for _, candidate := range r.Suits {
		if candidate == s {
			return true
		}
	}
	return false
}

func (r Ruleset) HasRank(rank card.Rank) bool {
	for _, candidate := range r.Ranks {
		if candidate == rank {
			return true
		}
	}
	return false
}

func (r Ruleset) validate() error {
	if r.HandSize < 1 {
		return fmt.Errorf("hand size must be positive, got %d", r.HandSize)
	}
	if need := r.HandSize*Seats + 1; need > r.DeckSize() {
		return fmt.Errorf("deck of %d cards cannot deal %d", r.DeckSize(), need)
	}
	if r.FalseCallPenalty < 0 || r.MissedTschauPenalty < 0 {
		return fmt.Errorf("penalties must not be negative")
	}
	return nil
}

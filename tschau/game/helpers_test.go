package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/event"
	"github.com/ratel-online/tschau-sepp/tschau/game"
	"github.com/stretchr/testify/require"
)

func c(s suit.Suit, r card.Rank) card.Card {
	return card.New(s, r)
}

// setup describes a game in progress. A nil draw pile receives every card not placed elsewhere.
type setup struct {
	hands   [game.Seats][]card.Card
	discard []card.Card
	draw    []card.Card
	table   game.Table
}

func arrange(t *testing.T, s setup) (*game.Game, *event.DummyListener) {
	t.Helper()
	rules := game.StandardRuleset()
	return arrangeWith(t, s, rules)
}

func arrangeWith(t *testing.T, s setup, rules game.Ruleset) (*game.Game, *event.DummyListener) {
	t.Helper()
	draw := s.draw
	if draw == nil {
		placed := append([]card.Card{}, s.discard...)
		placed = append(placed, s.hands[0]...)
		placed = append(placed, s.hands[1]...)
		draw = rest(rules, placed...)
	}
	table := s.table
	if table.Phase == "" {
		table.Phase = game.PhaseAwaitingMove
	}
	if table.Phase != game.PhaseGameOver {
		table.Winner = game.NoWinner
	}
	top := s.discard[len(s.discard)-1]
	if table.CurrentColor == "" {
		table.CurrentColor = top.Suit
	}
	if table.CurrentRank == "" {
		table.CurrentRank = top.Rank
	}
	snapshot := game.Snapshot{
		ID:      "test",
		Table:   table,
		Draw:    draw,
		Discard: s.discard,
		Players: []game.PlayerSnapshot{
			{ID: "a", Name: "alice", Hand: s.hands[0]},
			{ID: "b", Name: "bob", Hand: s.hands[1]},
		},
	}
	g, err := game.FromSnapshot(snapshot, rules, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	listener := event.NewDummyListener()
	g.Events().AddListener(listener)
	return g, listener
}

// rest returns the deck without the given cards.
func rest(rules game.Ruleset, except ...card.Card) []card.Card {
	skip := make(map[card.Card]bool, len(except))
	for _, e := range except {
		skip[e] = true
	}
	var cards []card.Card
	for _, candidate := range card.NewDeck(rules.Suits, rules.Ranks) {
		if !skip[candidate] {
			cards = append(cards, candidate)
		}
	}
	return cards
}

func newStartedGame(t *testing.T, seed int64) *game.Game {
	t.Helper()
	players := []*game.Player{game.NewPlayer("a", "alice"), game.NewPlayer("b", "bob")}
	g, err := game.New(players, game.StandardRuleset(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g
}

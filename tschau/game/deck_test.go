package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/game"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	rules := game.StandardRuleset()

	t.Run("returns_all_36_cards", func(t *testing.T) {
		deck := game.NewDeck(rules)
		cards := deck.Draw(36)
		require.ElementsMatch(t, card.NewDeck(suit.All, card.Ranks), cards)
		require.True(t, deck.Empty())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(rules)
		require.Empty(t, deck.Draw(0))
		require.Equal(t, 36, deck.Size())
	})

	t.Run("returns_what_is_left_when_running_out", func(t *testing.T) {
		deck := game.NewDeck(rules)
		deck.Draw(34)
		require.Len(t, deck.Draw(5), 2)
		require.Empty(t, deck.Draw(1))
	})

	t.Run("pops_from_the_end", func(t *testing.T) {
		deck := game.NewDeck(rules)
		cards := deck.Cards()
		drawn, ok := deck.DrawOne()
		require.True(t, ok)
		require.Equal(t, cards[len(cards)-1], drawn)
	})
}

func TestShuffle(t *testing.T) {
	rules := game.StandardRuleset()
	first := game.NewDeck(rules)
	first.Shuffle(rand.New(rand.NewSource(42)))
	second := game.NewDeck(rules)
	second.Shuffle(rand.New(rand.NewSource(42)))

	require.Equal(t, first.Cards(), second.Cards())
	require.ElementsMatch(t, game.NewDeck(rules).Cards(), first.Cards())
}

func TestDeal(t *testing.T) {
	deck := game.NewDeck(game.StandardRuleset())
	cards := deck.Cards()
	hands := []*game.Hand{game.NewHand(), game.NewHand()}

	game.Deal(deck, hands, 7)

	require.Equal(t, 22, deck.Size())
	require.Equal(t, 7, hands[0].Size())
	require.Equal(t, 7, hands[1].Size())
	// Cards alternate between the hands.
	require.Equal(t, cards[35], hands[0].Cards()[0])
	require.Equal(t, cards[34], hands[1].Cards()[0])
	require.Equal(t, cards[33], hands[0].Cards()[1])
}

func TestReshuffleDiscardIntoDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	top := c(suit.Eichel, card.King)

	t.Run("keeps_the_top_card", func(t *testing.T) {
		deck := game.NewDeck(game.StandardRuleset())
		pile := game.NewPile()
		pile.Add(c(suit.Rosen, card.Six))
		pile.Add(c(suit.Rosen, card.Nine))
		pile.Add(top)
		deck.Draw(36)

		moved, ok := game.ReshuffleDiscardIntoDraw(deck, pile, rng)

		require.True(t, ok)
		require.Equal(t, 2, moved)
		require.ElementsMatch(t, []card.Card{c(suit.Rosen, card.Six), c(suit.Rosen, card.Nine)}, deck.Cards())
		require.Equal(t, []card.Card{top}, pile.Cards())
	})

	t.Run("needs_an_empty_draw_pile", func(t *testing.T) {
		deck := game.NewDeck(game.StandardRuleset())
		pile := game.NewPile()
		pile.Add(c(suit.Rosen, card.Six))
		pile.Add(top)

		_, ok := game.ReshuffleDiscardIntoDraw(deck, pile, rng)

		require.False(t, ok)
		require.Equal(t, 2, pile.Size())
	})

	t.Run("needs_two_discards", func(t *testing.T) {
		deck := game.NewDeck(game.StandardRuleset())
		deck.Draw(36)
		pile := game.NewPile()
		pile.Add(top)

		_, ok := game.ReshuffleDiscardIntoDraw(deck, pile, rng)

		require.False(t, ok)
		require.True(t, deck.Empty())
	})
}

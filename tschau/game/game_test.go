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

func TestNew(t *testing.T) {
	t.Run("needs_two_players", func(t *testing.T) {
		_, err := game.New([]*game.Player{game.NewPlayer("a", "alice")}, game.StandardRuleset(), nil)
		require.Error(t, err)
	})

	t.Run("rejects_moves_before_start", func(t *testing.T) {
		players := []*game.Player{game.NewPlayer("a", "alice"), game.NewPlayer("b", "bob")}
		g, err := game.New(players, game.StandardRuleset(), rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.ErrorAs(t, g.DrawCard(0), &game.IllegalMoveError{})
	})

	t.Run("rejects_a_deck_too_small_to_deal", func(t *testing.T) {
		rules := game.StandardRuleset()
		rules.HandSize = 18
		players := []*game.Player{game.NewPlayer("a", "alice"), game.NewPlayer("b", "bob")}
		_, err := game.New(players, rules, nil)
		require.Error(t, err)
	})
}

func TestStart(t *testing.T) {
	t.Run("deals_seven_each", func(t *testing.T) {
		g := newStartedGame(t, 3)
		require.Len(t, g.Hand(0), 7)
		require.Len(t, g.Hand(1), 7)
		require.Equal(t, 1, g.Pile().Size())
		require.Equal(t, 21, g.Deck().Size())
		require.Equal(t, 36, g.CardCount())
		require.Equal(t, game.NoWinner, g.Winner())
	})

	t.Run("is_deterministic_for_a_seed", func(t *testing.T) {
		first := newStartedGame(t, 11)
		second := newStartedGame(t, 11)
		require.Equal(t, first.Hand(0), second.Hand(0))
		require.Equal(t, first.Hand(1), second.Hand(1))
		require.Equal(t, first.Deck().Cards(), second.Deck().Cards())
	})

	t.Run("cannot_start_twice", func(t *testing.T) {
		g := newStartedGame(t, 3)
		require.ErrorAs(t, g.Start(), &game.IllegalMoveError{})
	})

	t.Run("first_card_effect_applies_to_seat_zero", func(t *testing.T) {
		for seed := int64(0); seed < 300; seed++ {
			g := newStartedGame(t, seed)
			top, _ := g.Pile().Top()
			table := g.Table()
			require.Equal(t, top.Rank, table.CurrentRank)
			require.Equal(t, top.Suit, table.CurrentColor, "the first card never asks for a colour")
			require.False(t, table.PendingSkip)
			require.False(t, table.PendingColorChoice)
			switch {
			case top.Rank == card.Eight:
				require.Equal(t, 1, table.CurrentPlayer, "seed %d", seed)
				require.Equal(t, game.PhaseAwaitingMove, table.Phase)
			case top.Rank == card.Seven:
				require.Equal(t, 0, table.CurrentPlayer)
				require.Equal(t, game.PhaseAwaitingDrawResolution, table.Phase)
				require.Equal(t, 2, table.PendingDrawCount)
			case top.Equal(c(suit.Rosen, card.Ober)):
				require.Equal(t, 0, table.CurrentPlayer)
				require.Equal(t, 4, table.PendingDrawCount)
			case top.Rank == card.Ace:
				require.Equal(t, 0, table.CurrentPlayer)
				require.True(t, table.ForcedSuitMode)
			default:
				require.Equal(t, 0, table.CurrentPlayer)
				require.Equal(t, game.PhaseAwaitingMove, table.Phase)
			}
		}
	})
}

func TestPlayCard(t *testing.T) {
	t.Run("alternates_turns", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Rosen, card.King), c(suit.Eichel, card.Six)}, {c(suit.Rosen, card.Nine), c(suit.Eichel, card.Nine)}},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.PlayCard(0, c(suit.Rosen, card.King)))
		require.Equal(t, 1, g.Current())
		require.NoError(t, g.PlayCard(1, c(suit.Rosen, card.Nine)))
		require.Equal(t, 0, g.Current())
		require.Equal(t, suit.Rosen, g.Table().CurrentColor)
		require.Equal(t, card.Nine, g.Table().CurrentRank)
	})

	t.Run("rejections_leave_the_game_untouched", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Eichel, card.King), c(suit.Eichel, card.Six)}, {c(suit.Rosen, card.Nine)}},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})
		before := g.Snapshot()

		require.ErrorAs(t, g.PlayCard(1, c(suit.Rosen, card.Nine)), &game.IllegalMoveError{})
		require.ErrorAs(t, g.PlayCard(0, c(suit.Schellen, card.Six)), &game.CardNotInHandError{})
		require.ErrorAs(t, g.PlayCard(0, c(suit.Eichel, card.King)), &game.RuleViolationError{})
		require.ErrorAs(t, g.PlayCard(5, c(suit.Eichel, card.King)), &game.IllegalMoveError{})

		require.Equal(t, before, g.Snapshot())
	})

	t.Run("rejections_carry_codes", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Eichel, card.King)}, {c(suit.Rosen, card.Nine)}},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		var rejection game.Rejection
		require.ErrorAs(t, g.PlayCard(0, c(suit.Eichel, card.King)), &rejection)
		require.Equal(t, game.CodeRuleViolation, rejection.Code())
	})

	t.Run("eight_gives_the_turn_back", func(t *testing.T) {
		g, listener := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Rosen, card.Eight), c(suit.Eichel, card.Six)}, {c(suit.Rosen, card.Nine)}},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.PlayCard(0, c(suit.Rosen, card.Eight)))

		table := g.Table()
		require.Equal(t, 0, table.CurrentPlayer)
		require.False(t, table.PendingSkip)
		require.Equal(t, game.PhaseAwaitingMove, table.Phase)
		require.Contains(t, listener.ReceivedPayloads(), event.TurnSkippedPayload{Seat: 1, PlayerName: "bob"})
	})

	t.Run("sevens_do_not_stack", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands: [2][]card.Card{
				{c(suit.Rosen, card.Seven), c(suit.Eichel, card.King)},
				{c(suit.Eichel, card.Seven), c(suit.Eichel, card.Six)},
			},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.PlayCard(0, c(suit.Rosen, card.Seven)))
		require.Equal(t, game.PhaseAwaitingDrawResolution, g.Table().Phase)
		require.Equal(t, 2, g.Table().PendingDrawCount)

		require.ErrorAs(t, g.PlayCard(1, c(suit.Eichel, card.Six)), &game.RuleViolationError{})
		require.NoError(t, g.PlayCard(1, c(suit.Eichel, card.Seven)))

		table := g.Table()
		require.Equal(t, 0, table.CurrentPlayer)
		require.Equal(t, 2, table.PendingDrawCount)
		require.Equal(t, card.Seven, table.ActiveSpecialEffect)
		require.Equal(t, game.PhaseAwaitingDrawResolution, table.Phase)
	})

	t.Run("rosen_ober_is_answered_by_drawing_four", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands: [2][]card.Card{
				{c(suit.Rosen, card.Ober), c(suit.Eichel, card.King)},
				{c(suit.Rosen, card.Seven), c(suit.Eichel, card.Six)},
			},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.PlayCard(0, c(suit.Rosen, card.Ober)))
		require.ErrorAs(t, g.PlayCard(1, c(suit.Rosen, card.Seven)), &game.RuleViolationError{})
		require.NoError(t, g.DrawCard(1))

		require.Len(t, g.Hand(1), 6)
		table := g.Table()
		require.Equal(t, 0, table.PendingDrawCount)
		require.Equal(t, card.Rank(""), table.ActiveSpecialEffect)
		require.Equal(t, 0, table.CurrentPlayer)
		require.Equal(t, game.PhaseAwaitingMove, table.Phase)
	})

	t.Run("ace_forces_the_suit_until_followed", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands: [2][]card.Card{
				{c(suit.Rosen, card.Ace), c(suit.Rosen, card.King), c(suit.Schellen, card.King)},
				{c(suit.Eichel, card.Ace), c(suit.Schilten, card.Ace), c(suit.Rosen, card.Nine)},
			},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.PlayCard(0, c(suit.Rosen, card.Ace)))
		require.True(t, g.Table().ForcedSuitMode)
		require.NoError(t, g.PlayCard(1, c(suit.Eichel, card.Ace)))

		table := g.Table()
		require.True(t, table.ForcedSuitMode)
		require.Equal(t, suit.Eichel, table.CurrentColor)
		require.ErrorAs(t, g.PlayCard(0, c(suit.Rosen, card.King)), &game.RuleViolationError{})
		require.ErrorAs(t, g.PlayCard(0, c(suit.Schellen, card.King)), &game.RuleViolationError{})
		require.NoError(t, g.DrawCard(0))

		table = g.Table()
		require.True(t, table.ForcedSuitMode)
		require.Equal(t, card.Ace, table.ActiveSpecialEffect)
		require.Equal(t, game.PhaseAwaitingMove, table.Phase)
		require.ErrorAs(t, g.PlayCard(1, c(suit.Rosen, card.Nine)), &game.RuleViolationError{})
		require.NoError(t, g.PlayCard(1, c(suit.Schilten, card.Ace)))
		require.True(t, g.Table().ForcedSuitMode)
		require.Equal(t, suit.Schilten, g.Table().CurrentColor)
	})
}

func TestChooseColor(t *testing.T) {
	newGame := func(t *testing.T) *game.Game {
		g, _ := arrange(t, setup{
			hands: [2][]card.Card{
				{c(suit.Schilten, card.Under), c(suit.Eichel, card.King)},
				{c(suit.Eichel, card.Nine)},
			},
			discard: []card.Card{c(suit.Rosen, card.Under)},
		})
		return g
	}

	t.Run("under_waits_for_a_colour", func(t *testing.T) {
		g := newGame(t)

		require.NoError(t, g.PlayCard(0, c(suit.Schilten, card.Under)))

		table := g.Table()
		require.Equal(t, game.PhaseAwaitingColorChoice, table.Phase)
		require.Equal(t, 0, table.CurrentPlayer)
		require.ErrorAs(t, g.PlayCard(0, c(suit.Eichel, card.King)), &game.IllegalMoveError{})
		require.ErrorAs(t, g.DrawCard(0), &game.IllegalMoveError{})
		require.ErrorAs(t, g.ChooseColor(1, suit.Eichel), &game.IllegalMoveError{})

		require.NoError(t, g.ChooseColor(0, suit.Eichel))
		table = g.Table()
		require.Equal(t, suit.Eichel, table.CurrentColor)
		require.Equal(t, card.Under, table.CurrentRank)
		require.Equal(t, 1, table.CurrentPlayer)
		require.Equal(t, game.PhaseAwaitingMove, table.Phase)
		require.NoError(t, g.PlayCard(1, c(suit.Eichel, card.Nine)))
	})

	t.Run("only_while_a_choice_is_pending", func(t *testing.T) {
		g := newGame(t)
		require.ErrorAs(t, g.ChooseColor(0, suit.Eichel), &game.IllegalMoveError{})
	})

	t.Run("rejects_an_unknown_suit", func(t *testing.T) {
		g := newGame(t)
		require.NoError(t, g.PlayCard(0, c(suit.Schilten, card.Under)))
		require.ErrorAs(t, g.ChooseColor(0, suit.Suit("herz")), &game.IllegalMoveError{})
		require.Equal(t, game.PhaseAwaitingColorChoice, g.Table().Phase)
	})
}

func TestDrawCard(t *testing.T) {
	t.Run("draws_one_without_a_penalty", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Eichel, card.King)}, {c(suit.Eichel, card.Nine)}},
			discard: []card.Card{c(suit.Rosen, card.Six)},
		})

		require.NoError(t, g.DrawCard(0))

		require.Len(t, g.Hand(0), 2)
		require.Equal(t, 1, g.Current())
	})

	t.Run("reshuffles_the_discard_pile", func(t *testing.T) {
		rules := game.StandardRuleset()
		hands := [2][]card.Card{{c(suit.Eichel, card.King)}, {c(suit.Eichel, card.Nine)}}
		discard := rest(rules, hands[0][0], hands[1][0])
		g, listener := arrange(t, setup{hands: hands, discard: discard, draw: []card.Card{}})
		top := discard[len(discard)-1]

		require.NoError(t, g.DrawCard(0))

		require.Len(t, g.Hand(0), 2)
		require.Equal(t, []card.Card{top}, g.Pile().Cards())
		require.Equal(t, 36, g.CardCount())
		require.Contains(t, listener.ReceivedPayloads(), event.DeckReshuffledPayload{Size: 33})
	})

	t.Run("takes_what_is_left", func(t *testing.T) {
		rules := game.StandardRuleset()
		top := c(suit.Rosen, card.Seven)
		draw := []card.Card{c(suit.Schellen, card.Six)}
		hands := [2][]card.Card{rest(rules, top, draw[0], c(suit.Eichel, card.King)), {c(suit.Eichel, card.King)}}
		g, listener := arrange(t, setup{
			hands:   hands,
			discard: []card.Card{top},
			draw:    draw,
			table: game.Table{
				Phase:               game.PhaseAwaitingDrawResolution,
				CurrentPlayer:       1,
				PendingDrawCount:    2,
				ActiveSpecialEffect: card.Seven,
			},
		})

		require.NoError(t, g.DrawCard(1))

		require.Len(t, g.Hand(1), 2)
		require.Equal(t, 0, g.Table().PendingDrawCount)
		require.Contains(t, listener.ReceivedPayloads(), event.CardsDrawnPayload{Seat: 1, PlayerName: "bob", Count: 1, Owed: 2})
	})

	t.Run("reports_an_exhausted_deck", func(t *testing.T) {
		rules := game.StandardRuleset()
		top := c(suit.Rosen, card.Six)
		hands := [2][]card.Card{rest(rules, top, c(suit.Eichel, card.King)), {c(suit.Eichel, card.King)}}
		g, _ := arrange(t, setup{hands: hands, discard: []card.Card{top}, draw: []card.Card{}})
		before := g.Snapshot()

		err := g.DrawCard(0)

		require.ErrorAs(t, err, &game.DeckExhaustedError{})
		require.Equal(t, before, g.Snapshot())
	})
}

func TestPass(t *testing.T) {
	rules := game.StandardRuleset()
	top := c(suit.Rosen, card.Six)
	exhausted := func(t *testing.T) (*game.Game, *event.DummyListener) {
		hands := [2][]card.Card{rest(rules, top, c(suit.Eichel, card.King)), {c(suit.Eichel, card.King)}}
		return arrange(t, setup{
			hands:   hands,
			discard: []card.Card{top},
			draw:    []card.Card{},
			table:   game.Table{CurrentPlayer: 1},
		})
	}

	t.Run("only_when_nothing_is_left", func(t *testing.T) {
		g, _ := arrange(t, setup{
			hands:   [2][]card.Card{{c(suit.Eichel, card.King)}, {c(suit.Eichel, card.Nine)}},
			discard: []card.Card{top},
		})
		require.ErrorAs(t, g.Pass(0), &game.IllegalMoveError{})
	})

	t.Run("hands_the_turn_on", func(t *testing.T) {
		g, listener := exhausted(t)
		require.NoError(t, g.Pass(1))
		require.Equal(t, 0, g.Current())
		require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{Seat: 1, PlayerName: "bob"})
	})

	t.Run("force_draw_falls_back_to_pass", func(t *testing.T) {
		g, _ := exhausted(t)
		require.NoError(t, g.ForceDraw(1))
		require.Equal(t, 0, g.Current())
		require.Len(t, g.Hand(1), 1)
	})
}

func TestForceDraw(t *testing.T) {
	g, _ := arrange(t, setup{
		hands:   [2][]card.Card{{c(suit.Eichel, card.King)}, {c(suit.Eichel, card.Nine)}},
		discard: []card.Card{c(suit.Rosen, card.Seven)},
		table: game.Table{
			Phase:               game.PhaseAwaitingDrawResolution,
			PendingDrawCount:    2,
			ActiveSpecialEffect: card.Seven,
		},
	})

	require.NoError(t, g.ForceDraw(0))
	require.Len(t, g.Hand(0), 3)
	require.Equal(t, 1, g.Current())
}

// TestRandomPlay drives whole games with legal moves and checks the structural invariants
// after every step.
func TestRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := newStartedGame(t, seed)
		rng := rand.New(rand.NewSource(seed))
		previous := g.Current()
		for step := 0; step < 500 && !g.Over(); step++ {
			seat := g.Current()
			table := g.Table()
			switch {
			case table.Phase == game.PhaseAwaitingColorChoice:
				require.NoError(t, g.ChooseColor(seat, suit.All[rng.Intn(len(suit.All))]))
			case len(g.Hand(seat)) == 0:
				success, err := g.DeclareSepp(seat)
				require.NoError(t, err)
				require.True(t, success)
			default:
				playable := g.PlayableCards(seat)
				if len(playable) > 0 && rng.Intn(4) > 0 {
					require.NoError(t, g.PlayCard(seat, playable[rng.Intn(len(playable))]))
					if len(g.Hand(seat)) == 1 {
						success, err := g.DeclareTschau(seat)
						require.NoError(t, err)
						require.True(t, success)
					}
				} else {
					require.NoError(t, g.ForceDraw(seat))
				}
			}
			require.Equal(t, 36, g.CardCount(), "seed %d step %d", seed, step)
			require.NoError(t, g.Snapshot().Validate(g.Rules()), "seed %d step %d", seed, step)
			next := g.Table()
			if !next.Over() && next.Phase != game.PhaseAwaitingColorChoice && next.CurrentRank != card.Eight {
				require.NotEqual(t, previous, next.CurrentPlayer, "seed %d step %d", seed, step)
			}
			previous = next.CurrentPlayer
		}
	}
}

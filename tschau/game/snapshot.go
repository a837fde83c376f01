package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/event"
	"github.com/ratel-online/tschau-sepp/tschau/msg"
)

type PlayerSnapshot struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Hand         []card.Card `json:"hand"`
	CalledTschau bool        `json:"calledTschau"`
	CalledSepp   bool        `json:"calledSepp"`
}

// Snapshot is the complete, serializable state of a started game.
type Snapshot struct {
	ID      string           `json:"id"`
	Table   Table            `json:"table"`
	Draw    []card.Card      `json:"draw"`
	Discard []card.Card      `json:"discard"`
	Players []PlayerSnapshot `json:"players"`
	Log     []string         `json:"log,omitempty"`
}

func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerSnapshot, 0, len(g.players))
	for _, player := range g.players {
		players = append(players, PlayerSnapshot{
			ID:           player.ID,
			Name:         player.Name,
			Hand:         player.Hand(),
			CalledTschau: player.CalledTschau,
			CalledSepp:   player.CalledSepp,
		})
	}
	return Snapshot{
		ID:      g.id,
		Table:   g.table,
		Draw:    g.deck.Cards(),
		Discard: g.pile.Cards(),
		Players: players,
		Log:     g.log.Lines(),
	}
}

func (g *Game) Marshal() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

func Restore(data []byte, rules Ruleset, rng *rand.Rand) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromSnapshot(s, rules, rng)
}

// FromSnapshot rebuilds a game after checking the snapshot against rules.
func FromSnapshot(s Snapshot, rules Ruleset, rng *rand.Rand) (*Game, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(rules); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	players := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		player := NewPlayer(p.ID, p.Name)
		player.hand.AddCards(p.Hand)
		player.CalledTschau = p.CalledTschau
		player.CalledSepp = p.CalledSepp
		players = append(players, player)
	}
	pile := NewPile()
	for _, c := range s.Discard {
		pile.Add(c)
	}
	g := &Game{
		id:      s.ID,
		rules:   rules,
		rng:     rng,
		table:   s.Table,
		deck:    newDeckOf(s.Draw),
		pile:    pile,
		players: players,
		events:  event.NewEmitter(),
		log:     msg.NewLog(LogLimit, s.Log...),
	}
	g.events.AddListener(g.log)
	return g, nil
}

// Validate checks the structural invariants of a snapshot, card conservation included.
func (s Snapshot) Validate(rules Ruleset) error {
	t := s.Table
	if len(s.Players) != Seats {
		return fmt.Errorf("snapshot has %d players, want %d", len(s.Players), Seats)
	}
	if !t.Phase.Valid() {
		return fmt.Errorf("unknown phase '%s'", t.Phase)
	}
	if t.CurrentPlayer < 0 || t.CurrentPlayer >= Seats {
		return fmt.Errorf("current player %d out of range", t.CurrentPlayer)
	}
	if (t.Phase == PhaseGameOver) != (t.Winner != NoWinner) {
		return fmt.Errorf("winner %d does not match phase %s", t.Winner, t.Phase)
	}
	if t.Winner != NoWinner && (t.Winner < 0 || t.Winner >= Seats) {
		return fmt.Errorf("winner %d out of range", t.Winner)
	}
	if !rules.HasSuit(t.CurrentColor) || !rules.HasRank(t.CurrentRank) {
		return fmt.Errorf("current card %s %s is not part of the deck", t.CurrentColor, t.CurrentRank)
	}
	if t.PendingDrawCount < 0 {
		return fmt.Errorf("negative pending draw count %d", t.PendingDrawCount)
	}
	if !t.Over() && (t.PendingColorChoice != (t.Phase == PhaseAwaitingColorChoice)) {
		return fmt.Errorf("colour choice flag does not match phase %s", t.Phase)
	}
	if t.Phase == PhaseAwaitingDrawResolution && t.PendingDrawCount == 0 {
		return fmt.Errorf("phase %s without pending draw", t.Phase)
	}
	if !t.Over() && t.PendingDrawCount > 0 {
		if t.Phase != PhaseAwaitingDrawResolution && t.Phase != PhaseAwaitingColorChoice {
			return fmt.Errorf("pending draw of %d in phase %s", t.PendingDrawCount, t.Phase)
		}
		if !rules.Effects.Penalizes(t.ActiveSpecialEffect) {
			return fmt.Errorf("pending draw of %d opened by '%s', which has no draw penalty", t.PendingDrawCount, t.ActiveSpecialEffect)
		}
	}
	if t.ForcedSuitMode && t.ActiveSpecialEffect == "" {
		return fmt.Errorf("forced suit without an active effect")
	}
	if len(s.Discard) == 0 {
		return fmt.Errorf("discard pile is empty")
	}
	return s.checkConservation(rules)
}

func (s Snapshot) checkConservation(rules Ruleset) error {
	remaining := make(map[card.Card]int, rules.DeckSize())
	for _, c := range card.NewDeck(rules.Suits, rules.Ranks) {
		remaining[c]++
	}
	take := func(where string, cards []card.Card) error {
		for _, c := range cards {
			if remaining[c] == 0 {
				return fmt.Errorf("card conservation broken: unexpected %s in %s", c.Plain(), where)
			}
			remaining[c]--
		}
		return nil
	}
	if err := take("draw pile", s.Draw); err != nil {
		return err
	}
	if err := take("discard pile", s.Discard); err != nil {
		return err
	}
	for _, p := range s.Players {
		if err := take(p.Name+"'s hand", p.Hand); err != nil {
			return err
		}
	}
	for c, count := range remaining {
		if count > 0 {
			return fmt.Errorf("card conservation broken: %s is missing", c.Plain())
		}
	}
	return nil
}

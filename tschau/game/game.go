package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/event"
	"github.com/ratel-online/tschau-sepp/tschau/msg"
)

// Game is a single two-seat match. It is not safe for concurrent use; callers serialize
// access, the way a room does.
type Game struct {
	id      string
	rules   Ruleset
	rng     *rand.Rand
	table   Table
	deck    *Deck
	pile    *Pile
	players []*Player
	events  *event.Emitter
	log     *msg.Log
}

// New seats players in the given order. Only the IDs and names are taken from them.
func New(players []*Player, rules Ruleset, rng *rand.Rand) (*Game, error) {
	if len(players) != Seats {
		return nil, fmt.Errorf("a game needs exactly %d players, got %d", Seats, len(players))
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seated := make([]*Player, 0, Seats)
	for _, player := range players {
		seated = append(seated, NewPlayer(player.ID, player.Name))
	}
	g := &Game{
		id:      uuid.NewString(),
		rules:   rules,
		rng:     rng,
		table:   Table{Winner: NoWinner},
		deck:    NewDeck(rules),
		pile:    NewPile(),
		players: seated,
		events:  event.NewEmitter(),
		log:     msg.NewLog(LogLimit),
	}
	g.events.AddListener(g.log)
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Rules() Ruleset {
	return g.rules
}

func (g *Game) Table() Table {
	return g.table
}

func (g *Game) Started() bool {
	return g.table.Phase != ""
}

func (g *Game) Over() bool {
	return g.table.Over()
}

// Winner returns the winning seat, or NoWinner.
func (g *Game) Winner() int {
	return g.table.Winner
}

func (g *Game) Current() int {
	return g.table.CurrentPlayer
}

func (g *Game) Player(seat int) *Player {
	if seat < 0 || seat >= len(g.players) {
		return nil
	}
	return g.players[seat]
}

func (g *Game) Hand(seat int) []card.Card {
	if player := g.Player(seat); player != nil {
		return player.Hand()
	}
	return nil
}

func (g *Game) PlayableCards(seat int) []card.Card {
	player := g.Player(seat)
	if player == nil || seat != g.table.CurrentPlayer {
		return nil
	}
	return player.hand.PlayableCards(g.table, g.rules)
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Events() *event.Emitter {
	return g.events
}

func (g *Game) Log() []string {
	return g.log.Lines()
}

// CardCount counts every card in the draw pile, the discard pile and the hands.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.pile.Size()
	for _, player := range g.players {
		count += player.HandSize()
	}
	return count
}

// Start shuffles, deals and turns up the first card, whose effect applies to seat 0.
func (g *Game) Start() error {
	if g.Started() {
		return IllegalMoveError{Reason: "game already started"}
	}
	g.deck.Shuffle(g.rng)
	hands := make([]*Hand, 0, len(g.players))
	names := make([]string, 0, len(g.players))
	for _, player := range g.players {
		hands = append(hands, player.hand)
		names = append(names, player.Name)
	}
	Deal(g.deck, hands, g.rules.HandSize)
	g.events.Emit(event.GameStartedPayload{PlayerNames: names})

	firstCard, _ := g.deck.DrawOne()
	g.pile.Add(firstCard)
	g.events.Emit(event.FirstCardPlayedPayload{Card: firstCard})

	g.table.CurrentPlayer = 0
	g.table.apply(Resolve(g.table, firstCard, true, g.rules.Effects))
	if g.table.PendingSkip {
		g.table.PendingSkip = false
		g.events.Emit(event.TurnSkippedPayload{Seat: 0, PlayerName: g.players[0].Name})
		g.table.CurrentPlayer = g.next(0)
	}
	g.table.Phase = g.settledPhase()
	g.emitTurnStarted()
	return nil
}

func (g *Game) PlayCard(seat int, c card.Card) error {
	if err := g.checkMove(seat); err != nil {
		return err
	}
	player := g.players[seat]
	if !player.hand.Contains(c) {
		return CardNotInHandError{Card: c}
	}
	if !CanPlay(g.table, c, g.rules) {
		return RuleViolationError{Card: c, Reason: violation(g.table, c)}
	}

	player.hand.RemoveCard(c)
	g.pile.Add(c)
	g.events.Emit(event.CardPlayedPayload{Seat: seat, PlayerName: player.Name, Card: c})
	g.table.apply(Resolve(g.table, c, false, g.rules.Effects))

	if player.hand.Empty() && !player.CalledTschau && g.rules.MissedTschauPenalty > 0 {
		g.penalize(seat, g.rules.MissedTschauPenalty, event.PenaltyMissedTschau)
	}
	if g.table.PendingColorChoice {
		g.table.Phase = PhaseAwaitingColorChoice
		return nil
	}
	g.advance()
	return nil
}

// DrawCard takes the owed penalty, or one card when nothing is owed, and ends the turn.
// When the piles cannot cover the full amount the player takes what is left.
func (g *Game) DrawCard(seat int) error {
	if err := g.checkMove(seat); err != nil {
		return err
	}
	if g.available() == 0 {
		return DeckExhaustedError{}
	}
	owed := g.table.PendingDrawCount
	if owed < 1 {
		owed = 1
	}
	player := g.players[seat]
	drawn := g.supply(owed)
	player.takeCards(drawn)
	g.events.Emit(event.CardsDrawnPayload{Seat: seat, PlayerName: player.Name, Count: len(drawn), Owed: owed})
	g.clearPending()
	g.advance()
	return nil
}

// Pass ends the turn without drawing. It is only allowed once every card is in a hand
// or on top of the discard pile.
func (g *Game) Pass(seat int) error {
	if err := g.checkMove(seat); err != nil {
		return err
	}
	if g.available() > 0 {
		return IllegalMoveError{Reason: "cards are left to draw"}
	}
	g.events.Emit(event.PlayerPassedPayload{Seat: seat, PlayerName: g.players[seat].Name})
	g.clearPending()
	g.advance()
	return nil
}

// ForceDraw resolves a stalled turn: the seat draws, or passes if nothing can be drawn.
func (g *Game) ForceDraw(seat int) error {
	err := g.DrawCard(seat)
	if _, ok := err.(DeckExhaustedError); ok {
		return g.Pass(seat)
	}
	return err
}

func (g *Game) ChooseColor(seat int, s suit.Suit) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if g.table.Phase != PhaseAwaitingColorChoice {
		return IllegalMoveError{Reason: "no colour choice pending"}
	}
	if !g.rules.HasSuit(s) {
		return IllegalMoveError{Reason: fmt.Sprintf("unknown suit '%s'", s)}
	}
	g.table.CurrentColor = s
	g.table.PendingColorChoice = false
	g.events.Emit(event.ColorPickedPayload{Seat: seat, PlayerName: g.players[seat].Name, Suit: s})
	g.advance()
	return nil
}

func (g *Game) checkTurn(seat int) error {
	if err := g.checkSeat(seat); err != nil {
		return err
	}
	if seat != g.table.CurrentPlayer {
		return IllegalMoveError{Reason: "it is not your turn"}
	}
	return nil
}

func (g *Game) checkMove(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if g.table.Phase == PhaseAwaitingColorChoice {
		return IllegalMoveError{Reason: "choose a colour first"}
	}
	return nil
}

func (g *Game) checkSeat(seat int) error {
	switch g.table.Phase {
	case "":
		return IllegalMoveError{Reason: "game has not started"}
	case PhaseGameOver:
		return IllegalMoveError{Reason: "game is over"}
	}
	if seat < 0 || seat >= len(g.players) {
		return IllegalMoveError{Reason: fmt.Sprintf("there is no seat %d", seat)}
	}
	return nil
}

func (g *Game) next(seat int) int {
	return (seat + 1) % len(g.players)
}

// advance hands the turn on, consuming a pending skip on the way.
func (g *Game) advance() {
	next := g.next(g.table.CurrentPlayer)
	if g.table.PendingSkip {
		g.table.PendingSkip = false
		g.events.Emit(event.TurnSkippedPayload{Seat: next, PlayerName: g.players[next].Name})
		next = g.next(next)
	}
	g.table.CurrentPlayer = next
	g.table.Phase = g.settledPhase()
	g.emitTurnStarted()
}

func (g *Game) settledPhase() Phase {
	if g.table.PendingDrawCount > 0 {
		return PhaseAwaitingDrawResolution
	}
	return PhaseAwaitingMove
}

// clearPending settles an owed draw. A forced suit outlives the draw until a card is played.
func (g *Game) clearPending() {
	g.table.PendingDrawCount = 0
	if !g.table.ForcedSuitMode {
		g.table.ActiveSpecialEffect = ""
	}
}

func (g *Game) emitTurnStarted() {
	seat := g.table.CurrentPlayer
	g.events.Emit(event.TurnStartedPayload{Seat: seat, PlayerName: g.players[seat].Name})
}

// available is the number of cards a draw could reach, counting a reshuffle.
func (g *Game) available() int {
	available := g.deck.Size()
	if under := g.pile.Size() - 1; under > 0 {
		available += under
	}
	return available
}

// supply pops up to amount cards, reshuffling the discard pile when the draw pile runs dry.
func (g *Game) supply(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		if g.deck.Empty() && !g.reshuffle() {
			break
		}
		cards = append(cards, g.deck.Draw(amount-len(cards))...)
	}
	return cards
}

func (g *Game) reshuffle() bool {
	moved, ok := ReshuffleDiscardIntoDraw(g.deck, g.pile, g.rng)
	if ok {
		g.events.Emit(event.DeckReshuffledPayload{Size: moved})
	}
	return ok
}

func (g *Game) penalize(seat int, count int, reason event.PenaltyReason) {
	if count <= 0 {
		return
	}
	player := g.players[seat]
	drawn := g.supply(count)
	player.takeCards(drawn)
	g.events.Emit(event.PenaltyPayload{Seat: seat, PlayerName: player.Name, Count: len(drawn), Reason: reason})
}

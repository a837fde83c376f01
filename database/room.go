package database

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/tschau-sepp/config"
	"github.com/ratel-online/tschau-sepp/consts"
	"github.com/ratel-online/tschau-sepp/model"
	"github.com/ratel-online/tschau-sepp/tschau/card"
	"github.com/ratel-online/tschau-sepp/tschau/card/suit"
	"github.com/ratel-online/tschau-sepp/tschau/game"
)

// Notifier receives a seat's view after every change of the table.
type Notifier interface {
	Notify(view game.View) error
}

type Settings struct {
	Rules          game.Ruleset
	TurnTimeout    time.Duration
	ReconnectGrace time.Duration
	NewRand        func() *rand.Rand
}

func NewSettings(cfg config.Config) Settings {
	return Settings{
		Rules:          cfg.Ruleset(),
		TurnTimeout:    cfg.TurnTimeout(),
		ReconnectGrace: cfg.ReconnectGrace(),
		NewRand:        cfg.NewRand,
	}
}

// Intent is a player's request to the room. Kind is one of the model.Intent* types.
type Intent struct {
	Kind     string
	PlayerID int64
	Card     card.Card
	Suit     suit.Suit
}

type Seat struct {
	PlayerID int64
	Name     string
	Online   bool
	LeftAt   time.Time
	Rematch  bool
	notifier Notifier
}

type envelope struct {
	fn    func() error
	reply chan error
}

// Room owns one game. Every change runs on the room's own goroutine, in arrival order.
type Room struct {
	ID int64

	settings Settings
	store    Store
	inbox    chan envelope
	done     chan struct{}

	seats     [game.Seats]*Seat
	game      *game.Game
	timer     *time.Timer
	turnToken uint64
	deadline  time.Time
	paused    time.Duration
	activeAt  time.Time
}

func NewRoom(id int64, settings Settings, store Store) *Room {
	r := &Room{
		ID:       id,
		settings: settings,
		store:    store,
		inbox:    make(chan envelope),
		done:     make(chan struct{}),
		activeAt: time.Now(),
	}
	go r.loop()
	return r
}

// restoreRoom brings back a saved game. Both seats start offline inside their grace period.
func restoreRoom(id int64, settings Settings, store Store, data []byte) (*Room, error) {
	g, err := game.Restore(data, settings.Rules, settings.NewRand())
	if err != nil {
		return nil, err
	}
	seats := [game.Seats]*Seat{}
	now := time.Now()
	for index := range seats {
		player := g.Player(index)
		playerID, err := strconv.ParseInt(player.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("room %d: bad player id '%s': %w", id, player.ID, err)
		}
		seats[index] = &Seat{PlayerID: playerID, Name: player.Name, LeftAt: now}
	}
	r := NewRoom(id, settings, store)
	r.seats = seats
	r.game = g
	return r, nil
}

func (r *Room) loop() {
	for {
		select {
		case e := <-r.inbox:
			e.reply <- r.safely(e.fn)
		case <-r.done:
			return
		}
	}
}

func (r *Room) safely(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("room %d: %v\n", r.ID, p)
			err = fmt.Errorf("room %d: %v", r.ID, p)
		}
	}()
	return fn()
}

func (r *Room) do(ctx context.Context, fn func() error) error {
	e := envelope{fn: fn, reply: make(chan error, 1)}
	select {
	case r.inbox <- e:
	case <-r.done:
		return consts.ErrorsRoomInvalid
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-e.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the room goroutine and its timer.
func (r *Room) Close() {
	select {
	case <-r.done:
		return
	default:
	}
	_ = r.do(context.Background(), func() error {
		r.stopTimer()
		return nil
	})
	close(r.done)
}

// Sit gives the player a free seat, or their old one back. The game starts once both seats
// are taken; a returning player is sent the full table straight away.
func (r *Room) Sit(ctx context.Context, playerID int64, name string, notifier Notifier) (int, error) {
	seatIndex := -1
	err := r.do(ctx, func() error {
		var err error
		seatIndex, err = r.sit(playerID, name, notifier)
		return err
	})
	return seatIndex, err
}

func (r *Room) sit(playerID int64, name string, notifier Notifier) (int, error) {
	if index := r.seatOf(playerID); index >= 0 {
		seat := r.seats[index]
		seat.Online = true
		seat.LeftAt = time.Time{}
		seat.notifier = notifier
		log.Infof("room %d: %s is back on seat %d\n", r.ID, seat.Name, index)
		if r.game != nil {
			r.notify(index)
			if index == r.game.Current() {
				r.resume()
			}
		}
		return index, nil
	}
	for index, seat := range r.seats {
		if seat != nil {
			continue
		}
		r.seats[index] = &Seat{PlayerID: playerID, Name: name, Online: true, notifier: notifier}
		log.Infof("room %d: %s took seat %d\n", r.ID, name, index)
		if r.full() {
			if err := r.deal(); err != nil {
				r.seats[index] = nil
				return -1, err
			}
		}
		return index, nil
	}
	return -1, consts.ErrorsRoomPlayersIsFull
}

// Disconnect marks the player's seat offline. Before the game starts the seat is freed.
func (r *Room) Disconnect(ctx context.Context, playerID int64) error {
	return r.do(ctx, func() error {
		index := r.seatOf(playerID)
		if index < 0 {
			return nil
		}
		if r.game == nil {
			r.seats[index] = nil
			return nil
		}
		seat := r.seats[index]
		seat.Online = false
		seat.LeftAt = time.Now()
		seat.Rematch = false
		seat.notifier = nil
		log.Infof("room %d: %s left seat %d\n", r.ID, seat.Name, index)
		if index == r.game.Current() {
			r.pause()
		}
		return nil
	})
}

// Submit applies an intent and waits for the verdict. Rejections come back as errors and
// leave the room untouched.
func (r *Room) Submit(ctx context.Context, intent Intent) error {
	return r.do(ctx, func() error {
		index := r.seatOf(intent.PlayerID)
		if index < 0 {
			return consts.ErrorsNotSeated
		}
		err := r.apply(index, intent)
		if err != nil {
			log.Infof("room %d: rejected %s from seat %d: %v\n", r.ID, intent.Kind, index, err)
		}
		return err
	})
}

// View returns what the player's seat currently sees.
func (r *Room) View(ctx context.Context, playerID int64) (game.View, error) {
	var view game.View
	err := r.do(ctx, func() error {
		index := r.seatOf(playerID)
		if index < 0 {
			return consts.ErrorsNotSeated
		}
		if r.game == nil {
			return consts.ErrorsGameNotStarted
		}
		view = r.game.View(index)
		return nil
	})
	return view, err
}

// Expired reports whether the room can be dropped: nobody has been online for the whole
// grace period, or a finished game has sat idle.
func (r *Room) Expired(ctx context.Context, now time.Time) (bool, error) {
	expired := false
	err := r.do(ctx, func() error {
		expired = r.expired(now)
		return nil
	})
	return expired, err
}

func (r *Room) expired(now time.Time) bool {
	if r.game != nil && r.game.Over() && r.activeAt.Add(consts.FinishedRoomTTL).Before(now) {
		return true
	}
	lastSeen := time.Time{}
	for _, seat := range r.seats {
		if seat == nil {
			continue
		}
		if seat.Online {
			return false
		}
		if seat.LeftAt.After(lastSeen) {
			lastSeen = seat.LeftAt
		}
	}
	if lastSeen.IsZero() {
		return r.activeAt.Add(r.settings.ReconnectGrace).Before(now)
	}
	return lastSeen.Add(r.settings.ReconnectGrace).Before(now)
}

func (r *Room) apply(index int, intent Intent) error {
	if intent.Kind == model.IntentRematch {
		return r.rematch(index)
	}
	if r.game == nil {
		return consts.ErrorsGameNotStarted
	}
	var err error
	switch intent.Kind {
	case model.IntentPlayCard:
		err = r.game.PlayCard(index, intent.Card)
	case model.IntentDrawCard:
		err = r.game.DrawCard(index)
	case model.IntentSelectColor:
		err = r.game.ChooseColor(index, intent.Suit)
	case model.IntentCallTschau:
		_, err = r.game.DeclareTschau(index)
	case model.IntentCallSepp:
		_, err = r.game.DeclareSepp(index)
	case model.IntentPass:
		err = r.game.Pass(index)
	case model.IntentForceDraw:
		err = r.game.ForceDraw(index)
	default:
		return consts.ErrorsUnknownIntent
	}
	if err != nil {
		return err
	}
	r.settle()
	return nil
}

func (r *Room) rematch(index int) error {
	if r.game == nil || !r.game.Over() {
		return consts.ErrorsGameNotOver
	}
	r.seats[index].Rematch = true
	for _, seat := range r.seats {
		if seat == nil || !seat.Rematch {
			return nil
		}
	}
	for _, seat := range r.seats {
		seat.Rematch = false
	}
	return r.deal()
}

func (r *Room) deal() error {
	players := make([]*game.Player, 0, len(r.seats))
	for _, seat := range r.seats {
		players = append(players, game.NewPlayer(strconv.FormatInt(seat.PlayerID, 10), seat.Name))
	}
	g, err := game.New(players, r.settings.Rules, r.settings.NewRand())
	if err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}
	r.game = g
	log.Infof("room %d: game %s started\n", r.ID, g.ID())
	r.settle()
	return nil
}

// settle runs after every accepted change: save, tell both seats, restart the clock.
func (r *Room) settle() {
	r.activeAt = time.Now()
	r.save()
	for index := range r.seats {
		r.notify(index)
	}
	r.arm()
}

func (r *Room) save() {
	if r.store == nil || r.game == nil {
		return
	}
	data, err := r.game.Marshal()
	if err != nil {
		log.Error(err)
		return
	}
	if err := r.store.Save(r.ID, data); err != nil {
		log.Errorf("room %d: save snapshot: %v\n", r.ID, err)
	}
}

func (r *Room) notify(index int) {
	seat := r.seats[index]
	if seat == nil || !seat.Online || seat.notifier == nil || r.game == nil {
		return
	}
	if err := seat.notifier.Notify(r.game.View(index)); err != nil {
		log.Errorf("room %d: notify seat %d: %v\n", r.ID, index, err)
	}
}

// arm starts a full turn clock for a new turn.
func (r *Room) arm() {
	r.paused = 0
	r.startClock(r.settings.TurnTimeout)
}

// pause stops the clock of the seat to move and keeps what is left of its turn.
func (r *Room) pause() {
	if r.timer == nil {
		return
	}
	r.paused = time.Until(r.deadline)
	if r.paused <= 0 {
		r.paused = time.Millisecond
	}
	r.stopTimer()
	r.turnToken++
}

// resume continues a paused turn. A turn that began while its seat was offline gets the full time.
func (r *Room) resume() {
	if r.timer != nil {
		return
	}
	left := r.paused
	if left <= 0 {
		left = r.settings.TurnTimeout
	}
	r.paused = 0
	r.startClock(left)
}

// startClock stays off while the seat to move is offline.
func (r *Room) startClock(d time.Duration) {
	r.stopTimer()
	r.turnToken++
	if r.settings.TurnTimeout <= 0 || r.game == nil || r.game.Over() {
		return
	}
	seat := r.seats[r.game.Current()]
	if seat == nil || !seat.Online {
		return
	}
	r.deadline = time.Now().Add(d)
	token := r.turnToken
	r.timer = time.AfterFunc(d, func() {
		_ = r.do(context.Background(), func() error {
			return r.timeout(token)
		})
	})
}

func (r *Room) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// timeout resolves a stalled turn. A pending colour choice takes the suit of the card on top.
func (r *Room) timeout(token uint64) error {
	if token != r.turnToken || r.game == nil || r.game.Over() {
		return nil
	}
	index := r.game.Current()
	var err error
	if r.game.Table().Phase == game.PhaseAwaitingColorChoice {
		top, _ := r.game.Pile().Top()
		err = r.game.ChooseColor(index, top.Suit)
	} else {
		err = r.game.ForceDraw(index)
	}
	if err != nil {
		log.Errorf("room %d: turn timeout of seat %d: %v\n", r.ID, index, err)
		return err
	}
	log.Infof("room %d: seat %d ran out of time\n", r.ID, index)
	r.settle()
	return nil
}

func (r *Room) seatOf(playerID int64) int {
	for index, seat := range r.seats {
		if seat != nil && seat.PlayerID == playerID {
			return index
		}
	}
	return -1
}

func (r *Room) full() bool {
	for _, seat := range r.seats {
		if seat == nil {
			return false
		}
	}
	return true
}

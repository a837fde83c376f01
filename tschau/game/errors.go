package game

import (
	"fmt"

	"github.com/ratel-online/tschau-sepp/tschau/card"
)

const (
	CodeIllegalMove = 100 + iota
	CodeRuleViolation
	CodeCardNotInHand
	CodeDeckExhausted
)

// Rejection is implemented by every error the engine returns for a refused intent.
// A rejected intent never changes the game.
type Rejection interface {
	error
	Code() int
}

// IllegalMoveError: wrong seat, wrong phase or a finished game.
type IllegalMoveError struct {
	Reason string
}

func (e IllegalMoveError) Error() string {
	return "illegal move: " + e.Reason
}

func (e IllegalMoveError) Code() int {
	return CodeIllegalMove
}

type RuleViolationError struct {
	Card   card.Card
	Reason string
}

func (e RuleViolationError) Error() string {
	return fmt.Sprintf("%s cannot be played: %s", e.Card.Plain(), e.Reason)
}

func (e RuleViolationError) Code() int {
	return CodeRuleViolation
}

// CardNotInHandError usually means the client's copy of its hand is stale.
type CardNotInHandError struct {
	Card card.Card
}

func (e CardNotInHandError) Error() string {
	return fmt.Sprintf("%s is not in your hand", e.Card.Plain())
}

func (e CardNotInHandError) Code() int {
	return CodeCardNotInHand
}

// DeckExhaustedError: the draw pile is empty and the discard pile holds only its top card.
type DeckExhaustedError struct{}

func (e DeckExhaustedError) Error() string {
	return "no cards left to draw"
}

func (e DeckExhaustedError) Code() int {
	return CodeDeckExhausted
}

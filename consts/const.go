package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateSit
	StatePlay
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	JanitorInterval = time.Minute
	// FinishedRoomTTL is how long a room with a finished game and nobody asking for a rematch is kept.
	FinishedRoomTTL = 24 * time.Hour
	WriteDelay      = 30 * time.Millisecond
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist             = NewErr(1, true, "Exist. ")
	ErrorsChanClosed        = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout           = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail          = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid       = NewErr(1, false, "Room invalid. ")
	ErrorsRoomPlayersIsFull = NewErr(1, false, "Room players is full. ")
	ErrorsNotSeated         = NewErr(1, false, "Take a seat first. ")
	ErrorsGameNotStarted    = NewErr(1, false, "Waiting for an opponent. ")
	ErrorsGameNotOver       = NewErr(1, false, "Game is still running. ")
	ErrorsUnknownIntent     = NewErr(1, false, "Unknown intent. ")
	ErrorsTooManyIntents    = NewErr(1, false, "Too many requests, slow down. ")
)

package consts

import (
	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateLiarGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 4

	RoomStateWaiting = 1
	RoomStateRunning = 2

	GameTypeLiar = 1
)

// Room properties.
const (
	RoomPropsRefill    = "refill"
	RoomPropsChallenge = "challenge"
	RoomPropsPassword  = "pwd"
	RoomPropsChat      = "ct"
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
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsChatUnopened           = NewErr(1, false, "Chat disabled. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is fill. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")
	ErrorsRoomPropsInvalid       = NewErr(1, false, "Room props invalid. ")

	ErrorsInvalidPlay         = NewErr(2, false, "Invalid play, pick cards from your hand. ")
	ErrorsInvalidDeclaration  = NewErr(2, false, "Invalid declaration, must be J, Q, K or A. ")
	ErrorsNotYourTurn         = NewErr(2, false, "Not your turn. ")
	ErrorsPlayerEliminated    = NewErr(2, false, "Player is out. ")
	ErrorsNoDeclaration       = NewErr(2, false, "Nothing to challenge. ")
	ErrorsChallengeNotAllowed = NewErr(2, false, "You can't challenge this declaration. ")
	ErrorsShotPending         = NewErr(2, false, "The loser has not been shot yet. ")
	ErrorsNothingToResolve    = NewErr(2, false, "No challenge to resolve. ")
	ErrorsWrongLoser          = NewErr(2, false, "Only the loser of the challenge faces the revolver. ")
	ErrorsTurnPending         = NewErr(2, false, "Advance the turn before the next declaration. ")
	ErrorsGameOver            = NewErr(2, true, "Game over. ")
	ErrorsDeckExhausted       = NewErr(3, true, "Deck exhausted, the deck must be reset. ")

	GameTypes = map[int]string{
		GameTypeLiar: "Liar",
	}
	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)

package server

import (
	"github.com/gorilla/websocket"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
)

type GameServer struct {
	Config       Config
	GameSessions []*GameSession
	GameRequests chan GameRequest
	Upgrader     *websocket.Upgrader
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_WAIT
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession owns one engine. Only the session Loop goroutine touches
// Engine, Roller and PlayerSessions.
type GameSession struct {
	Id                    string
	State                 GameSessionState
	Engine                *model.Engine
	Roller                *dice.Roller
	PlayerSessions        []*PlayerSession
	Errors                chan model.Player
	Events                chan PlayerEvent
	PlayerConnectRequests chan PlayerConnectRequest
	Seated                chan struct{} // closed once every seat is taken
	Done                  chan struct{}
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
	PS_ERR_SEC
)

type PlayerSession struct {
	State       PlayerSessionState
	Id          model.Player
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	MessagesToSend chan model.ServerMessage
	closed         chan struct{}
}

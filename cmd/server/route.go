package main

import (
	"github.com/matryer/way"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/server"
)

const (
	URI_WS    = "/play"
	URI_BOARD = "/board"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_BOARD, server.HandleBoard(model.DefaultBoard()))
}

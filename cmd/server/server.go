package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakeladder/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	s := Server{
		GameServer: server.NewGameServer(cfg),
	}
	go s.GameServer.Loop()
	s.routes()
	log.WithFields(log.Fields{
		"port":  cfg.Port,
		"start": cfg.StartPlayer,
	}).Info("snake & ladder server listening")
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}

package server

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/play"
)

func NewGameServer(cfg Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make([]*GameSession, 0),
		GameRequests: make(chan GameRequest),
		Upgrader:     &websocket.Upgrader{},
	}
}

func NewGameSession(start model.Player, seed int64) *GameSession {
	return &GameSession{
		Id:                    uuid.NewString(),
		State:                 GS_NEW,
		Engine:                model.NewEngine(model.DefaultBoard(), start),
		Roller:                dice.New(seed),
		PlayerSessions:        make([]*PlayerSession, 0, len(model.Players)),
		Errors:                make(chan model.Player),
		Events:                make(chan PlayerEvent),
		PlayerConnectRequests: make(chan PlayerConnectRequest),
		Seated:                make(chan struct{}),
		Done:                  make(chan struct{}),
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := s.Config.HandshakeTimeout
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received from %s", r.RemoteAddr)

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			log.Printf("HandleHttpCall GameContextAwaiting <- code:%d", gca.ResponseCode)
			switch gca.ResponseCode {
			case GAME_INVALIDE:
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			case GAME_READY:
			default:
				log.Errorf("gca.ResponseCode not expected:%v", gca.ResponseCode)
				w.WriteHeader(HTTP_SERVER_ERR)
				return
			}
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case gca.GameSession.PlayerConnectRequests <- PlayerConnectRequest{
			Con:      con,
			GameOver: gameOver}:
		case <-gca.GameSession.Done:
			log.Warn("HandleHttpCall session ended before join")
			return
		case <-time.After(timeout):
			log.Warn("HandleHttpCall PlayerConnectRequests TIMEOUTED")
			return
		}

		<-gameOver
		log.Info("HandleHttpCall game over, closing connection")
	}
}

// Loop hands the waiting session to every request until its seats are
// taken. A request that never joins (plain GET, failed upgrade, timeout)
// costs no seat. A session that died while waiting is replaced.
func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	var waiting *GameSession
	for gameReq := range s.GameRequests {
		if waiting != nil {
			select {
			case <-waiting.Seated:
				waiting = nil
			case <-waiting.Done:
				log.WithField("session", waiting.Id).Warn("waiting session ended, dropping it")
				waiting = nil
			default:
			}
		}
		if waiting == nil {
			start, err := s.Config.Start()
			if err != nil {
				log.Errorf("GameServer.Loop bad config: %v", err)
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALIDE}
				continue
			}
			waiting = NewGameSession(start, s.Config.DiceSeed)
			log.WithField("session", waiting.Id).Info("create GameSession")
			go waiting.Loop()
			s.GameSessions = append(s.GameSessions, waiting)
		}
		gameReq.GameContextAwaiting <- GameContextAwaiting{
			ResponseCode: GAME_READY,
			GameSession:  waiting,
		}
	}
	log.Printf("GameServer.Loop ended")
}

func (gs *GameSession) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"session": gs.Id,
		"state":   gs.State.Name(),
	})
}

func (gs *GameSession) Loop() {
	defer close(gs.Done)
	gs.logger().Info("GameSession.Loop start")
	for {
		select {
		case pcr := <-gs.PlayerConnectRequests:
			if len(gs.PlayerSessions) == len(model.Players) {
				gs.logger().Warn("GameSession.Loop session full, refusing player")
				close(pcr.GameOver)
				continue
			}
			gs.addPlayer(pcr.Con, pcr.GameOver)
			if len(gs.PlayerSessions) < len(model.Players) {
				gs.State = GS_WAIT
				gs.logger().Info("GameSession.Loop waiting for opponent")
				continue
			}
			gs.State = GS_PLAY
			close(gs.Seated)
			for _, ps := range gs.PlayerSessions {
				ps.State = PS_PLAY
				ps.send(gs.MakeGameSetupMessage(ps.Id))
			}
			gs.logger().Info("GameSession.Loop both players seated")
		case errPlayer := <-gs.Errors:
			gs.logger().Warnf("killing GameSession, player %s failed", errPlayer.Name())
			gs.State = GS_ERR
			for _, ps := range gs.PlayerSessions {
				if ps.Id == errPlayer {
					ps.State = PS_ERR
				} else {
					ps.State = PS_ERR_SEC
				}
				ps.stop()
			}
			return
		case pe := <-gs.Events:
			playerSession, opponentSession := gs.sessionsOf(pe.Player)
			messageToPlayer, messageToOpponent := gs.Turn(pe)
			if messageToPlayer != nil && playerSession != nil {
				playerSession.send(*messageToPlayer)
			}
			if messageToOpponent != nil && opponentSession != nil {
				opponentSession.send(*messageToOpponent)
			}
		}
	}
}

func (gs *GameSession) sessionsOf(p model.Player) (player, opponent *PlayerSession) {
	for _, ps := range gs.PlayerSessions {
		if ps.Id == p {
			player = ps
		} else {
			opponent = ps
		}
	}
	return
}

// Turn applies one player request to the engine and returns what each side
// has to be told. Either message may be nil.
func (gs *GameSession) Turn(pe PlayerEvent) (
	messageToPlayer *model.ServerMessage,
	messageToOpponent *model.ServerMessage) {
	e := gs.Engine
	refuse := func(reason model.RefusalReason) *model.ServerMessage {
		return &model.ServerMessage{Refusals: []model.Refusal{{Reason: reason, State: e.Snapshot()}}}
	}

	if gs.State == GS_NEW || gs.State == GS_WAIT {
		return refuse(model.RefusalNoOpponent), nil
	}

	if pe.GameEvent.Reset {
		if !e.IsOver() {
			return refuse(model.RefusalGameRunning), nil
		}
		e.Reset()
		gs.State = GS_PLAY
		for _, ps := range gs.PlayerSessions {
			ps.State = PS_PLAY
		}
		gs.logger().Infof("player %s restarted the game", pe.Player.Name())
		toPlayer := gs.MakeGameSetupMessage(pe.Player)
		toOpponent := gs.MakeGameSetupMessage(pe.Player.Other())
		return &toPlayer, &toOpponent
	}

	if e.IsOver() {
		return refuse(model.RefusalGameOver), nil
	}
	if pe.Player != e.Active {
		return refuse(model.RefusalNotYourTurn), nil
	}

	roll := pe.GameEvent.Roll
	if pe.GameEvent.Throw {
		roll = gs.Roller.Roll()
	}
	res, err := e.TakeTurn(roll)
	report := model.TurnReport{Result: res, State: e.Snapshot()}
	if err != nil {
		if errors.Is(err, model.ErrGameOver) {
			return refuse(model.RefusalGameOver), nil
		}
		play.TurnFields(gs.logger(), res).Warnf("turn rejected: %v", err)
		report.Error = err.Error()
		return &model.ServerMessage{Turns: []model.TurnReport{report}}, nil
	}
	play.TurnFields(gs.logger(), res).Info("turn")
	if res.Outcome == model.OutcomeWin {
		gs.State = GS_OVER
		for _, ps := range gs.PlayerSessions {
			ps.State = PS_OVER
		}
		gs.logger().Infof("player %s wins", res.Player.Name())
	}
	messageToPlayer = &model.ServerMessage{Turns: []model.TurnReport{report}}
	messageToOpponent = &model.ServerMessage{Turns: []model.TurnReport{report}}
	return
}

func (gs *GameSession) addPlayer(
	conn *websocket.Conn,
	gameOver chan struct{},
) {
	playerId := model.Players[len(gs.PlayerSessions)]
	gs.logger().Infof("GameSession.addPlayer %s", playerId.Name())
	ps := &PlayerSession{
		State:          PS_NEW,
		Id:             playerId,
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, 10),
		closed:         make(chan struct{}),
	}
	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	gs.PlayerSessions = append(gs.PlayerSessions, ps)
}

func (gs *GameSession) MakeGameSetupMessage(p model.Player) model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{
			SessionId: gs.Id,
			PlayerKey: p,
			Start:     gs.Engine.Start,
			State:     gs.Engine.Snapshot(),
			Table:     gs.Engine.Board.Transpositions(),
		}},
	}
}

func (ps *PlayerSession) send(mes model.ServerMessage) {
	select {
	case ps.MessagesToSend <- mes:
	default:
		log.Warnf("PlayerSession %s MessagesToSend FULL, dropping message", ps.Id.Name())
	}
}

// stop releases the write loop and the http handler, the handler closes the
// connection which ends the read loop.
func (ps *PlayerSession) stop() {
	close(ps.closed)
	close(ps.GameOver)
}

func (ps *PlayerSession) fail() {
	select {
	case ps.GameSession.Errors <- ps.Id:
	case <-ps.GameSession.Done:
	}
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Printf("LoopChannelRead %s STARTED", ps.Id.Name())
	for {
		messageType, r, err := ps.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead %s err reading message from Conn %v", ps.Id.Name(), err)
			ps.fail()
			break
		}
		if messageType != websocket.BinaryMessage {
			log.Warnf("LoopChannelRead %s unexpected message type: %d", ps.Id.Name(), messageType)
			continue
		}
		cm := model.ClientMessage{}
		if err = gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead %s cant decode %v", ps.Id.Name(), err)
			ps.fail()
			break
		}
		log.Debugf("LoopChannelRead %s %+v", ps.Id.Name(), cm)

		select {
		case ps.GameSession.Events <- PlayerEvent{Player: ps.Id, GameEvent: cm}:
		case <-ps.GameSession.Done:
			return
		}
	}
	log.Printf("LoopChannelRead %s ENDED", ps.Id.Name())
}

// this function only consumes. no worries about full buffer stuck
func (ps *PlayerSession) LoopChannelWrite() {
	log.Printf("PlayerSession.LoopChannelWrite %s STARTED", ps.Id.Name())
loop:
	for {
		select {
		case <-ps.closed:
			break loop
		case mes := <-ps.MessagesToSend:
			w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("PlayerSession.LoopChannelWrite cant get writer %v", err)
				ps.fail()
				break loop
			}
			if err = gob.NewEncoder(w).Encode(mes); err != nil {
				log.Warnf("PlayerSession.LoopChannelWrite cant encode %v", err)
				ps.fail()
				break loop
			}
			if err = w.Close(); err != nil {
				log.Warnf("PlayerSession.LoopChannelWrite cant flush %v", err)
				ps.fail()
				break loop
			}
		}
	}
	log.Printf("LoopChannelWrite %s ENDED", ps.Id.Name())
}

package model

type ServerMessage struct {
	Setup    []Setup
	Turns    []TurnReport
	Refusals []Refusal
}

type Setup struct {
	SessionId string
	PlayerKey Player
	Start     Player
	State     Snapshot
	Table     []Transposition
}

type TurnReport struct {
	Result TurnResult
	State  Snapshot
	// Error is set for rejected rolls, gob cannot carry error values.
	Error string
}

type RefusalReason int

const (
	RefusalNotYourTurn RefusalReason = iota + 1
	RefusalGameOver
	RefusalGameRunning
	RefusalNoOpponent
)

type Refusal struct {
	Reason RefusalReason
	State  Snapshot
}

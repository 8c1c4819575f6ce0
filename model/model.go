package model

const (
	StartPosition = 0
	MinPosition   = 1
	MaxPosition   = 100

	BoardSize = 10

	MinRoll = 1
	MaxRoll = 6
)

type Player int8

const (
	PlayerA Player = iota
	PlayerB
)

// Players lists both players in turn order from A.
var Players = [2]Player{PlayerA, PlayerB}

type Kind int

const (
	None Kind = iota
	Snake
	Ladder
)

type Transposition struct {
	From, To int
	Kind     Kind
}

// Coord is a cell of the 10x10 grid, row 0 at the top.
type Coord struct {
	Row, Col int
}

type EngineState int

const (
	StateInProgress EngineState = iota + 1
	StateWon
)

type Outcome int

const (
	OutcomeRejected Outcome = iota + 1
	OutcomeMoved
	OutcomeOvershoot
	OutcomeWin
)

// TurnResult reports one TakeTurn call. Landing is the square reached by the
// roll before any snake or ladder, To the square the player ends on.
type TurnResult struct {
	Outcome    Outcome
	Player     Player
	Roll       int
	From       int
	Landing    int
	To         int
	Transposed bool
	Kind       Kind
	Next       Player
}

type Engine struct {
	Board     *Board
	Positions [2]int
	Active    Player
	Start     Player
	State     EngineState
	Winner    Player
}

// Snapshot is a copy of the engine state safe to hand to other goroutines.
type Snapshot struct {
	Positions [2]int
	Active    Player
	State     EngineState
	Winner    Player
}

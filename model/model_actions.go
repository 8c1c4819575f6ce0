package model

// NewEngine starts a game with both players off the board. A nil board
// means DefaultBoard.
func NewEngine(board *Board, start Player) *Engine {
	if board == nil {
		board = DefaultBoard()
	}
	if !start.Valid() {
		start = PlayerA
	}
	e := &Engine{Board: board, Start: start}
	e.Reset()
	return e
}

func (e *Engine) Reset() {
	e.Positions = [2]int{StartPosition, StartPosition}
	e.Active = e.Start
	e.State = StateInProgress
	e.Winner = e.Start
}

func (e *Engine) Position(p Player) int {
	return e.Positions[p]
}

func (e *Engine) IsOver() bool {
	return e.State == StateWon
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Positions: e.Positions,
		Active:    e.Active,
		State:     e.State,
		Winner:    e.Winner,
	}
}

// TakeTurn moves the active player by roll.
//
// A roll outside 1-6 returns an OutcomeRejected result together with a
// *DieRollError; nothing changes and the same player is still due. A roll
// that would carry the player past 100 is forfeited and the turn passes.
// Landing exactly on 100, directly or by ladder, wins and ends the game;
// after that every call fails with ErrGameOver until Reset.
func (e *Engine) TakeTurn(roll int) (TurnResult, error) {
	if e.State == StateWon {
		return TurnResult{}, ErrGameOver
	}
	p := e.Active
	from := e.Positions[p]
	res := TurnResult{
		Player:  p,
		Roll:    roll,
		From:    from,
		Landing: from,
		To:      from,
		Kind:    None,
	}

	if roll < MinRoll || roll > MaxRoll {
		res.Outcome = OutcomeRejected
		res.Next = p
		return res, &DieRollError{Roll: roll}
	}

	landing := from + roll
	if landing > MaxPosition {
		res.Outcome = OutcomeOvershoot
		e.Active = p.Other()
		res.Next = e.Active
		return res, nil
	}
	res.Landing = landing
	res.To = landing
	if t, found := e.Board.Lookup(landing); found {
		res.To = t.To
		res.Transposed = true
		res.Kind = t.Kind
	}
	e.Positions[p] = res.To

	if res.To == MaxPosition {
		res.Outcome = OutcomeWin
		e.State = StateWon
		e.Winner = p
		res.Next = p
		return res, nil
	}

	res.Outcome = OutcomeMoved
	e.Active = p.Other()
	res.Next = e.Active
	return res, nil
}

package model

import (
	"fmt"
	"strings"
)

func (p Player) Name() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return fmt.Sprintf("n/a:%d", p)
	}
}

func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// ParsePlayer accepts "A" or "B" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return PlayerA, nil
	case "B":
		return PlayerB, nil
	default:
		return PlayerA, fmt.Errorf("unknown player %q", s)
	}
}

func (k Kind) Name() string {
	switch k {
	case None:
		return "NONE"
	case Snake:
		return "SNAKE"
	case Ladder:
		return "LADDER"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}

func (s EngineState) Name() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateWon:
		return "WON"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

func (o Outcome) Name() string {
	switch o {
	case OutcomeRejected:
		return "REJECTED"
	case OutcomeMoved:
		return "MOVED"
	case OutcomeOvershoot:
		return "OVERSHOOT"
	case OutcomeWin:
		return "WIN"
	default:
		return fmt.Sprintf("n/a:%d", o)
	}
}

func (r RefusalReason) Name() string {
	switch r {
	case RefusalNotYourTurn:
		return "NOT_YOUR_TURN"
	case RefusalGameOver:
		return "GAME_OVER"
	case RefusalGameRunning:
		return "GAME_RUNNING"
	case RefusalNoOpponent:
		return "NO_OPPONENT"
	default:
		return fmt.Sprintf("n/a:%d", r)
	}
}

package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidDieRoll  = errors.New("invalid die roll")
	ErrGameOver        = errors.New("game is over")
	ErrInvalidTable    = errors.New("invalid transposition table")
)

type InvalidPositionError struct {
	Position int
}

func NewInvalidPositionError(position int) error {
	if position >= MinPosition && position <= MaxPosition {
		panic(fmt.Errorf("position %d is NOT out of range(%d-%d), "+
			"but treat it as an error", position, MinPosition, MaxPosition))
	}
	return &InvalidPositionError{Position: position}
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("position is out of range(%d-%d): %d",
		MinPosition, MaxPosition, e.Position)
}

func (e *InvalidPositionError) Is(target error) bool {
	return target == ErrInvalidPosition
}

type DieRollError struct {
	Roll int
}

func (e *DieRollError) Error() string {
	return fmt.Sprintf("die roll is out of range(%d-%d): %d", MinRoll, MaxRoll, e.Roll)
}

func (e *DieRollError) Is(target error) bool {
	return target == ErrInvalidDieRoll
}

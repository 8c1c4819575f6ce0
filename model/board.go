package model

import (
	"fmt"
	"sort"
)

// DefaultTranspositions is the fixed snake and ladder layout of the board.
var DefaultTranspositions = []Transposition{
	{From: 60, To: 30, Kind: Snake},
	{From: 94, To: 1, Kind: Snake},
	{From: 82, To: 17, Kind: Snake},
	{From: 36, To: 7, Kind: Snake},
	{From: 99, To: 3, Kind: Snake},
	{From: 97, To: 32, Kind: Snake},
	{From: 27, To: 98, Kind: Ladder},
	{From: 43, To: 66, Kind: Ladder},
	{From: 7, To: 77, Kind: Ladder},
	{From: 33, To: 85, Kind: Ladder},
	{From: 49, To: 93, Kind: Ladder},
	{From: 14, To: 61, Kind: Ladder},
}

// Board is read only once built and may be shared between engines.
type Board struct {
	transpositions map[int]Transposition
}

var defaultBoard = MustBoard(DefaultTranspositions)

// DefaultBoard returns the shared board built from DefaultTranspositions.
func DefaultBoard() *Board {
	return defaultBoard
}

func NewBoard(table []Transposition) (*Board, error) {
	m := make(map[int]Transposition, len(table))
	for _, t := range table {
		if t.From < MinPosition || t.From > MaxPosition ||
			t.To < MinPosition || t.To > MaxPosition {
			return nil, fmt.Errorf("%w: %d->%d out of range", ErrInvalidTable, t.From, t.To)
		}
		switch {
		case t.Kind == Snake && t.To < t.From:
		case t.Kind == Ladder && t.To > t.From:
		default:
			return nil, fmt.Errorf("%w: %d->%d is not a %s", ErrInvalidTable, t.From, t.To, t.Kind.Name())
		}
		if _, found := m[t.From]; found {
			return nil, fmt.Errorf("%w: %d listed twice", ErrInvalidTable, t.From)
		}
		m[t.From] = t
	}
	return &Board{transpositions: m}, nil
}

func MustBoard(table []Transposition) *Board {
	b, err := NewBoard(table)
	if err != nil {
		panic(err)
	}
	return b
}

// CoordinatesFor maps a position onto the zigzag grid. 1 is bottom left,
// the bottom row runs left to right and every row above turns back.
func (b *Board) CoordinatesFor(position int) (Coord, error) {
	if position < MinPosition || position > MaxPosition {
		return Coord{}, NewInvalidPositionError(position)
	}
	fromBottom := (position - 1) / BoardSize
	col := (position - 1) % BoardSize
	if fromBottom%2 == 1 {
		col = BoardSize - 1 - col
	}
	row := BoardSize - 1 - fromBottom
	return Coord{Row: row, Col: col}, nil
}

// ApplyTransposition is a single lookup. A destination that is itself a
// source (36->7, 7->77) is not followed again.
func (b *Board) ApplyTransposition(position int) int {
	if t, found := b.transpositions[position]; found {
		return t.To
	}
	return position
}

func (b *Board) Lookup(position int) (Transposition, bool) {
	t, found := b.transpositions[position]
	return t, found
}

// Transpositions returns a copy of the table ordered by source square.
func (b *Board) Transpositions() []Transposition {
	ts := make([]Transposition, 0, len(b.transpositions))
	for _, t := range b.transpositions {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].From < ts[j].From
	})
	return ts
}

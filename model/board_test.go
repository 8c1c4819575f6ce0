package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTranspositionTable(t *testing.T) {
	b := DefaultBoard()
	want := map[int]int{
		60: 30, 94: 1, 82: 17, 36: 7, 99: 3, 97: 32,
		27: 98, 43: 66, 7: 77, 33: 85, 49: 93, 14: 61,
	}
	for p := MinPosition; p <= MaxPosition; p++ {
		if to, found := want[p]; found {
			assert.Equal(t, to, b.ApplyTransposition(p), "source %d", p)
		} else {
			assert.Equal(t, p, b.ApplyTransposition(p), "plain square %d", p)
		}
	}
	assert.Equal(t, 0, b.ApplyTransposition(0))
	assert.Equal(t, 103, b.ApplyTransposition(103))
}

func TestApplyTranspositionIsOneShot(t *testing.T) {
	// 36 drops onto 7 which is itself the foot of a ladder
	assert.Equal(t, 7, DefaultBoard().ApplyTransposition(36))
}

func TestLookupKinds(t *testing.T) {
	b := DefaultBoard()
	for _, tr := range DefaultTranspositions {
		got, found := b.Lookup(tr.From)
		require.True(t, found, "source %d", tr.From)
		assert.Equal(t, tr, got)
		if tr.Kind == Snake {
			assert.Less(t, got.To, got.From)
		} else {
			assert.Greater(t, got.To, got.From)
		}
	}
	_, found := b.Lookup(50)
	assert.False(t, found)
}

func TestTranspositionsSorted(t *testing.T) {
	ts := DefaultBoard().Transpositions()
	require.Len(t, ts, len(DefaultTranspositions))
	for i := 1; i < len(ts); i++ {
		assert.Less(t, ts[i-1].From, ts[i].From)
	}
	ts[0].To = 42
	assert.NotEqual(t, 42, DefaultBoard().ApplyTransposition(ts[0].From))
}

func TestCoordinatesForZigzag(t *testing.T) {
	b := DefaultBoard()
	cases := []struct {
		position int
		want     Coord
	}{
		{1, Coord{Row: 9, Col: 0}},
		{10, Coord{Row: 9, Col: 9}},
		{11, Coord{Row: 8, Col: 9}},
		{20, Coord{Row: 8, Col: 0}},
		{21, Coord{Row: 7, Col: 0}},
		{55, Coord{Row: 4, Col: 5}},
		{91, Coord{Row: 0, Col: 9}},
		// every row turns back, so with ten rows the top one runs right to left
		{100, Coord{Row: 0, Col: 0}},
	}
	for _, c := range cases {
		got, err := b.CoordinatesFor(c.position)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "position %d", c.position)
	}
}

func TestCoordinatesForBijection(t *testing.T) {
	b := DefaultBoard()
	seen := make(map[Coord]int)
	for p := MinPosition; p <= MaxPosition; p++ {
		c, err := b.CoordinatesFor(p)
		require.NoError(t, err)
		require.True(t, c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize, "%v", c)
		prev, dup := seen[c]
		require.False(t, dup, "%d and %d share %v", prev, p, c)
		seen[c] = p
	}
	assert.Len(t, seen, BoardSize*BoardSize)
}

func TestCoordinatesForOutOfRange(t *testing.T) {
	b := DefaultBoard()
	for _, p := range []int{-1, 0, 101, 1000} {
		_, err := b.CoordinatesFor(p)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPosition)
		var ipe *InvalidPositionError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, p, ipe.Position)
	}
}

func TestNewBoardRejectsBadTables(t *testing.T) {
	cases := []struct {
		name  string
		table []Transposition
	}{
		{"snake going up", []Transposition{{From: 10, To: 20, Kind: Snake}}},
		{"ladder going down", []Transposition{{From: 20, To: 10, Kind: Ladder}}},
		{"no kind", []Transposition{{From: 20, To: 10, Kind: None}}},
		{"source off board", []Transposition{{From: 101, To: 10, Kind: Snake}}},
		{"destination off board", []Transposition{{From: 10, To: 0, Kind: Snake}}},
		{"duplicate source", []Transposition{
			{From: 10, To: 5, Kind: Snake},
			{From: 10, To: 50, Kind: Ladder},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBoard(c.table)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestMustBoardPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustBoard([]Transposition{{From: 10, To: 20, Kind: Snake}})
	})
}

package play

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
)

type scripted struct {
	rolls []int
	asked []model.Player
}

func (s *scripted) NextRoll(ctx context.Context, p model.Player) (int, error) {
	s.asked = append(s.asked, p)
	if len(s.rolls) == 0 {
		return 0, io.EOF
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	return r, nil
}

func TestRunToWin(t *testing.T) {
	e := model.NewEngine(nil, model.PlayerA)
	lines := "6\n1\n6\n1\n6\n1\n3\n1\n6\n1\n2\n"
	var prompt bytes.Buffer
	var results []model.TurnResult
	winner, err := Run(context.Background(), e, NewLineSource(strings.NewReader(lines), &prompt),
		ObserverFunc(func(res model.TurnResult) { results = append(results, res) }))
	require.NoError(t, err)
	assert.Equal(t, model.PlayerA, winner)
	require.Len(t, results, 11)

	ladder := results[8]
	assert.Equal(t, model.Ladder, ladder.Kind)
	assert.Equal(t, 27, ladder.Landing)
	assert.Equal(t, 98, ladder.To)

	last := results[10]
	assert.Equal(t, model.OutcomeWin, last.Outcome)
	assert.Equal(t, [2]int{100, 5}, e.Positions)
	assert.Contains(t, prompt.String(), "Player B, enter dice roll (1-6): ")
}

func TestRunRejectedRollAsksSamePlayer(t *testing.T) {
	e := model.NewEngine(nil, model.PlayerA)
	e.Positions = [2]int{94, 0}
	src := &scripted{rolls: []int{9, 6}}
	var outcomes []model.Outcome
	winner, err := Run(context.Background(), e, src,
		ObserverFunc(func(res model.TurnResult) { outcomes = append(outcomes, res.Outcome) }))
	require.NoError(t, err)
	assert.Equal(t, model.PlayerA, winner)
	assert.Equal(t, []model.Outcome{model.OutcomeRejected, model.OutcomeWin}, outcomes)
	assert.Equal(t, []model.Player{model.PlayerA, model.PlayerA}, src.asked)
}

func TestRunStopsOnSourceEnd(t *testing.T) {
	e := model.NewEngine(nil, model.PlayerA)
	_, err := Run(context.Background(), e, &scripted{rolls: []int{2}}, nil)
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, 2, e.Position(model.PlayerA))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &scripted{rolls: []int{1}}
	_, err := Run(ctx, model.NewEngine(nil, model.PlayerA), src, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.asked)
}

func TestRunAlreadyWon(t *testing.T) {
	e := model.NewEngine(nil, model.PlayerB)
	e.Positions = [2]int{0, 96}
	_, err := e.TakeTurn(4)
	require.NoError(t, err)
	winner, err := Run(context.Background(), e, &scripted{}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.PlayerB, winner)
}

func TestLineSourceNotANumber(t *testing.T) {
	src := NewLineSource(strings.NewReader("abc\n 4 \n"), nil)
	roll, err := src.NextRoll(context.Background(), model.PlayerA)
	require.NoError(t, err)
	assert.Equal(t, 0, roll)
	roll, err = src.NextRoll(context.Background(), model.PlayerA)
	require.NoError(t, err)
	assert.Equal(t, 4, roll)
	_, err = src.NextRoll(context.Background(), model.PlayerA)
	assert.Equal(t, io.EOF, err)
}

func TestThrowSourcePlaysToEnd(t *testing.T) {
	e := model.NewEngine(nil, model.PlayerA)
	turns := 0
	winner, err := Run(context.Background(), e, ThrowSource{Roller: dice.New(3)},
		ObserverFunc(func(res model.TurnResult) {
			turns++
			assert.NotEqual(t, model.OutcomeRejected, res.Outcome)
		}))
	require.NoError(t, err)
	assert.True(t, winner.Valid())
	assert.Equal(t, 100, e.Position(winner))
	assert.Greater(t, turns, 0)
}

func TestLogObserverFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := model.NewEngine(nil, model.PlayerA)
	e.Positions = [2]int{30, 0}
	res, err := e.TakeTurn(6)
	require.NoError(t, err)

	LogObserver{Entry: logger.WithField("seed", 7)}.Turn(res)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "turn", entry.Message)
	assert.Equal(t, "info", entry.Level.String())
	assert.Equal(t, 7, entry.Data["seed"])
	assert.Equal(t, "A", entry.Data["player"])
	assert.Equal(t, 6, entry.Data["roll"])
	assert.Equal(t, 36, entry.Data["landing"])
	assert.Equal(t, 7, entry.Data["to"])
	assert.Equal(t, model.Snake.Name(), entry.Data["kind"])
	assert.Equal(t, "MOVED", entry.Data["outcome"])
	assert.Equal(t, "B", entry.Data["next"])
}

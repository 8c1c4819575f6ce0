// Package play drives a game engine from an outside source of die rolls.
package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
)

// DieSource blocks until the player p has a roll ready. io.EOF ends play.
type DieSource interface {
	NextRoll(ctx context.Context, p model.Player) (int, error)
}

type Observer interface {
	Turn(res model.TurnResult)
}

type ObserverFunc func(res model.TurnResult)

func (f ObserverFunc) Turn(res model.TurnResult) {
	f(res)
}

// Run feeds rolls from src into e until somebody wins and returns the winner.
// Rejected rolls go to obs like any other turn and the same player is asked
// again. Run is the only caller of e while it runs.
func Run(ctx context.Context, e *model.Engine, src DieSource, obs Observer) (model.Player, error) {
	for {
		if e.IsOver() {
			return e.Winner, nil
		}
		if err := ctx.Err(); err != nil {
			return e.Active, err
		}
		roll, err := src.NextRoll(ctx, e.Active)
		if err != nil {
			return e.Active, err
		}
		res, err := e.TakeTurn(roll)
		if err != nil && !errors.Is(err, model.ErrInvalidDieRoll) {
			return e.Active, err
		}
		if obs != nil {
			obs.Turn(res)
		}
	}
}

// LineSource reads one roll per line. A line that is not a number counts as
// roll 0 so the engine refuses it and the player loses the chance.
type LineSource struct {
	scanner *bufio.Scanner
	Prompt  io.Writer
}

func NewLineSource(r io.Reader, prompt io.Writer) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r), Prompt: prompt}
}

func (s *LineSource) NextRoll(ctx context.Context, p model.Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.Prompt != nil {
		fmt.Fprintf(s.Prompt, "Player %s, enter dice roll (%d-%d): ", p.Name(), model.MinRoll, model.MaxRoll)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read roll: %w", err)
		}
		return 0, io.EOF
	}
	roll, err := strconv.Atoi(strings.TrimSpace(s.scanner.Text()))
	if err != nil {
		log.Debugf("LineSource not a number %q", s.scanner.Text())
		return 0, nil
	}
	return roll, nil
}

// ThrowSource rolls the die for every player.
type ThrowSource struct {
	Roller *dice.Roller
}

func (s ThrowSource) NextRoll(ctx context.Context, p model.Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.Roller.Roll(), nil
}

// LogObserver writes every turn to the logrus entry.
type LogObserver struct {
	Entry *log.Entry
}

func (o LogObserver) Turn(res model.TurnResult) {
	entry := o.Entry
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	TurnFields(entry, res).Info("turn")
}

// TurnFields annotates entry with the fields of one turn.
func TurnFields(entry *log.Entry, res model.TurnResult) *log.Entry {
	return entry.WithFields(log.Fields{
		"player":  res.Player.Name(),
		"roll":    res.Roll,
		"outcome": res.Outcome.Name(),
		"from":    res.From,
		"landing": res.Landing,
		"to":      res.To,
		"kind":    res.Kind.Name(),
		"next":    res.Next.Name(),
	})
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/play"
)

type Settings struct {
	Start string `env:"SNAKELADDER_START" envDefault:"A"`
	Seed  int64  `env:"SNAKELADDER_SEED"`
	Throw bool   `env:"SNAKELADDER_THROW"`
	Debug bool   `env:"SNAKELADDER_DEBUG"`
}

func main() {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	flag.StringVar(&settings.Start, "start", settings.Start, "player who rolls first: A or B")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "dice seed for -throw, 0 is time based")
	flag.BoolVar(&settings.Throw, "throw", settings.Throw, "let the computer throw the die for both players")
	flag.BoolVar(&settings.Debug, "debug", settings.Debug, "log every turn")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if settings.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	start, err := model.ParsePlayer(settings.Start)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := model.NewEngine(model.DefaultBoard(), start)
	var src play.DieSource = play.NewLineSource(os.Stdin, os.Stdout)
	if settings.Throw {
		src = play.ThrowSource{Roller: dice.New(settings.Seed)}
	}
	out := &console{w: os.Stdout, engine: engine}
	if settings.Debug {
		out.trace = play.LogObserver{Entry: log.WithField("seed", settings.Seed)}
	}

	out.instructions()
	out.board()
	winner, err := play.Run(ctx, engine, src, out)
	switch {
	case err == nil:
		fmt.Fprintf(os.Stdout, "\nPLAYER %s WINS! CONGRATULATION!\n", winner.Name())
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout, "\nTHANK YOU FOR PLAYING!")
	default:
		log.Fatal(err)
	}
}

type console struct {
	w      io.Writer
	engine *model.Engine
	trace  play.Observer
}

func (c *console) Turn(res model.TurnResult) {
	if c.trace != nil {
		c.trace.Turn(res)
	}
	p := res.Player.Name()
	switch res.Outcome {
	case model.OutcomeRejected:
		fmt.Fprintf(c.w, "Invalid dice roll %d! Player %s, enter %d-%d.\n",
			res.Roll, p, model.MinRoll, model.MaxRoll)
		return
	case model.OutcomeOvershoot:
		fmt.Fprintf(c.w, "Player %s rolled %d, needs exactly %d to finish. Stays on %d.\n",
			p, res.Roll, model.MaxPosition-res.From, res.From)
		return
	}
	fmt.Fprintf(c.w, "Player %s rolled %d, moved to position %d\n", p, res.Roll, res.Landing)
	switch res.Kind {
	case model.Snake:
		fmt.Fprintf(c.w, "Snake! Moved from %d to %d\n", res.Landing, res.To)
	case model.Ladder:
		fmt.Fprintf(c.w, "Ladder! Moved from %d to %d\n", res.Landing, res.To)
	}
	c.board()
}

func (c *console) board() {
	var grid [model.BoardSize][model.BoardSize]int
	b := c.engine.Board
	for p := model.MinPosition; p <= model.MaxPosition; p++ {
		coord, err := b.CoordinatesFor(p)
		if err != nil {
			log.Fatal(err)
		}
		grid[coord.Row][coord.Col] = p
	}
	line := strings.Repeat("=", 60)
	fmt.Fprintln(c.w, line)
	for _, row := range grid {
		for _, n := range row {
			switch n {
			case c.engine.Position(model.PlayerA):
				fmt.Fprintf(c.w, "[A%3d]", n)
			case c.engine.Position(model.PlayerB):
				fmt.Fprintf(c.w, "[B%3d]", n)
			default:
				fmt.Fprintf(c.w, " %3d  ", n)
			}
		}
		fmt.Fprintln(c.w)
	}
	fmt.Fprintln(c.w, line)
	for _, p := range model.Players {
		fmt.Fprintf(c.w, "Player %s: position %d\n", p.Name(), c.engine.Position(p))
	}
}

func (c *console) instructions() {
	fmt.Fprintln(c.w, "SNAKE & LADDERS")
	fmt.Fprintf(c.w, "Two players take turns entering a roll between %d and %d.\n", model.MinRoll, model.MaxRoll)
	fmt.Fprintln(c.w, "A number outside that range is ignored and the same player enters again.")
	fmt.Fprintf(c.w, "Land exactly on %d to win.\n", model.MaxPosition)
	for _, t := range c.engine.Board.Transpositions() {
		fmt.Fprintf(c.w, "  %-6s %2d -> %2d\n", strings.ToLower(t.Kind.Name()), t.From, t.To)
	}
}

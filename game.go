package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/snakeladder/dice"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/play"
)

const (
	size        = 50
	boardWidth  = model.BoardSize * size
	boardHeight = model.BoardSize * size
	statusHigh  = 110

	screenWidth  = boardWidth
	screenHeight = boardHeight + statusHigh

	frame    = 1.0 / 60
	stepTime = .12
	jumpTime = .6
)

var errQuit = errors.New("quit")

var digitKeys = map[ebiten.Key]int{
	ebiten.Key0: 0, ebiten.Key1: 1, ebiten.Key2: 2, ebiten.Key3: 3, ebiten.Key4: 4,
	ebiten.Key5: 5, ebiten.Key6: 6, ebiten.Key7: 7, ebiten.Key8: 8, ebiten.Key9: 9,
}

type GameState int

const (
	IDLE GameState = iota + 1
	ACTING
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ACTING:
		return "ACTING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Game is the desktop host. It is the only caller of Engine and runs on
// the ebiten update goroutine.
type Game struct {
	State   GameState
	Engine  *model.Engine
	Roller  *dice.Roller
	Tokens  [2]*Token
	Tweens  map[*gween.Tween]Action
	Assets  *Assets
	Status  *Nine
	Banner  *Nine
	Message string
	log     *log.Entry
}

func NewGame(settings *Settings, assets *Assets) (*Game, error) {
	start, err := settings.StartPlayer()
	if err != nil {
		return nil, err
	}
	g := &Game{
		State:  IDLE,
		Engine: model.NewEngine(model.DefaultBoard(), start),
		Roller: dice.New(settings.Seed),
		Tweens: make(map[*gween.Tween]Action),
		Assets: assets,
		log:    log.WithField("host", "desktop"),
	}
	if assets != nil {
		g.Status = NewNine(assets.Panel, panelCorner, HexToF32(0x202020), .85)
		g.Status.SetBounds(4, boardHeight+4, screenWidth-8, statusHigh-8)
		g.Banner = NewNine(assets.Panel, panelCorner, COLOR_WIN, .92)
		g.Banner.SetBounds(60, boardHeight/2-70, screenWidth-120, 140)
	}
	for _, p := range model.Players {
		g.Tokens[p] = &Token{Player: p, Color: PLAYER_COLORS[p]}
	}
	g.placeTokens()
	g.Message = fmt.Sprintf("Player %s starts", start.Name())
	return g, nil
}

func (g *Game) placeTokens() {
	for _, p := range model.Players {
		g.Tokens[p].Place(g.Engine.Board, g.Engine.Position(p))
	}
}

func (g *Game) input() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	switch g.State {
	case IDLE:
		for key, roll := range digitKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.roll(roll)
				return nil
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.roll(g.Roller.Roll())
		}
	case GAME_OVER:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
	}
	return nil
}

func (g *Game) roll(roll int) {
	res, err := g.Engine.TakeTurn(roll)
	switch {
	case errors.Is(err, model.ErrGameOver):
		g.State = GAME_OVER
		return
	case errors.Is(err, model.ErrInvalidDieRoll):
		play.TurnFields(g.log, res).Debug("rejected")
		g.Message = fmt.Sprintf("%d is not a roll, player %s enter %d-%d",
			roll, res.Player.Name(), model.MinRoll, model.MaxRoll)
		return
	case err != nil:
		g.log.Errorf("turn failed: %v", err)
		return
	}
	play.TurnFields(g.log, res).Info("turn")
	g.Message = describe(res)
	if res.Outcome == model.OutcomeOvershoot {
		return
	}
	g.State = ACTING
	g.animate(res)
}

func describe(res model.TurnResult) string {
	p := res.Player.Name()
	switch {
	case res.Outcome == model.OutcomeOvershoot:
		return fmt.Sprintf("%s rolled %d, needs exactly %d", p, res.Roll, model.MaxPosition-res.From)
	case res.Kind == model.Snake:
		return fmt.Sprintf("%s rolled %d, snake! %d to %d", p, res.Roll, res.Landing, res.To)
	case res.Kind == model.Ladder:
		return fmt.Sprintf("%s rolled %d, ladder! %d to %d", p, res.Roll, res.Landing, res.To)
	default:
		return fmt.Sprintf("%s rolled %d, moved to %d", p, res.Roll, res.To)
	}
}

// animate walks the token square by square to the landing square, then
// slides it along the snake or ladder.
func (g *Game) animate(res model.TurnResult) {
	tok := g.Tokens[res.Player]
	b := g.Engine.Board

	var headTween *gween.Tween
	var head, cur *Action
	link := func(from, to int, duration float32, easing ease.TweenFunc) {
		fx, fy := squareOrigin(b, res.Player, from)
		tx, ty := squareOrigin(b, res.Player, to)
		t := gween.New(0, 1, duration, easing)
		if cur == nil {
			head = &Action{}
			headTween = t
			cur = head
		} else {
			cur = cur.next(t)
		}
		cur.onChange = func(v float32) {
			tok.x = fx + (tx-fx)*float64(v)
			tok.y = fy + (ty-fy)*float64(v)
		}
	}
	for p := res.From; p < res.Landing; p++ {
		link(p, p+1, stepTime, ease.OutQuad)
	}
	if res.Transposed {
		link(res.Landing, res.To, jumpTime, ease.InOutQuad)
	}
	if head == nil {
		g.settle(res)
		return
	}
	cur.addOnFinish(func() {
		g.settle(res)
	})
	g.Tweens[headTween] = *head
}

func (g *Game) settle(res model.TurnResult) {
	g.Tokens[res.Player].Place(g.Engine.Board, res.To)
	if res.Outcome == model.OutcomeWin {
		g.State = GAME_OVER
		g.Message = fmt.Sprintf("PLAYER %s WINS!", res.Player.Name())
		return
	}
	g.State = IDLE
}

func (g *Game) restart() {
	g.Engine.Reset()
	g.Tweens = make(map[*gween.Tween]Action)
	g.placeTokens()
	g.State = IDLE
	g.Message = fmt.Sprintf("New game, player %s starts", g.Engine.Active.Name())
	g.log.Info("new game")
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(frame)
	if err := g.input(); err != nil {
		return err
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	if e := screen.Fill(COLOR_BOARD); e != nil {
		log.Printf("%v", e)
	}
	b := g.Engine.Board
	for p := model.MinPosition; p <= model.MaxPosition; p++ {
		c, err := b.CoordinatesFor(p)
		if err != nil {
			continue
		}
		clr := COLOR_CELL_DARK
		if (c.Row+c.Col)%2 == 0 {
			clr = COLOR_CELL_LIGHT
		}
		ebitenutil.DrawRect(screen, float64(c.Col*size)+1, float64(c.Row*size)+1, size-2, size-2, clr)
		if g.Assets != nil {
			text.Draw(screen, fmt.Sprint(p), g.Assets.SmallFont, c.Col*size+4, c.Row*size+14, color.White)
		}
	}
	for _, t := range b.Transpositions() {
		fx, fy := squareCenter(b, t.From)
		tx, ty := squareCenter(b, t.To)
		if t.Kind == model.Ladder {
			ebitenutil.DrawLine(screen, fx-4, fy, tx-4, ty, COLOR_LADDER)
			ebitenutil.DrawLine(screen, fx+4, fy, tx+4, ty, COLOR_LADDER)
		} else {
			for d := -1.0; d <= 1; d++ {
				ebitenutil.DrawLine(screen, fx+d, fy, tx+d, ty, COLOR_SNAKE)
			}
		}
	}
	for _, tok := range g.Tokens {
		ebitenutil.DrawRect(screen, tok.x-1, tok.y-1, tokenWidth+2, tokenHeight+2, color.Black)
		ebitenutil.DrawRect(screen, tok.x, tok.y, tokenWidth, tokenHeight, tok.Color)
	}

	if g.Assets == nil {
		ebitenutil.DebugPrintAt(screen, g.Message, 10, boardHeight+30)
		return
	}
	g.Status.Draw(screen)
	for _, p := range model.Players {
		label := fmt.Sprintf("%s: %d", p.Name(), g.Engine.Position(p))
		text.Draw(screen, label, g.Assets.Font, 60+int(p)*120, boardHeight+30, g.Tokens[p].Color)
	}
	text.Draw(screen, g.Message, g.Assets.Font, 16, boardHeight+62, color.White)
	hint := fmt.Sprintf("player %s: keys %d-%d or space to throw", g.Engine.Active.Name(), model.MinRoll, model.MaxRoll)
	if g.State == GAME_OVER {
		hint = "R for a new game, Esc to quit"
	}
	text.Draw(screen, hint, g.Assets.SmallFont, 16, boardHeight+90, color.White)

	if g.State == GAME_OVER {
		g.Banner.Draw(screen)
		text.Draw(screen, g.Message, g.Assets.Font, 110, boardHeight/2-15, color.White)
		text.Draw(screen, "CONGRATULATION!", g.Assets.Font, 140, boardHeight/2+25, color.White)
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name(), screenWidth-70, 0)
}

func main() {
	settings, err := LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	assets, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	game, err := NewGame(settings, assets)
	if err != nil {
		log.Fatal(err)
	}
	err = ebiten.Run(game.update, screenWidth, screenHeight, settings.Scale, "Snake & Ladder")
	if err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

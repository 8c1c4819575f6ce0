package main

import (
	"github.com/zucenko/snakeladder/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r, g, b float64
}

func (c GameColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r * 0xffff), uint32(c.g * 0xffff), uint32(c.b * 0xffff), 0xffff
}

var COLOR_BOARD = HexToF32(0x1e3fa8)
var COLOR_CELL_DARK = HexToF32(0x2a4fc4)
var COLOR_CELL_LIGHT = HexToF32(0x3560d8)
var COLOR_SNAKE = HexToF32(0xfa3636)
var COLOR_LADDER = HexToF32(0x0abd38)
var COLOR_WIN = HexToF32(0x7b2fbf)

var PLAYER_COLORS = [2]GameColor{
	HexToF32(0xffe81e),
	HexToF32(0xffa500),
}

// Token is the on-screen piece of one player. x, y is its top left corner
// and is moved by tweens, Position is where the engine last put it.
type Token struct {
	Player   model.Player
	Color    GameColor
	Position int
	x, y     float64
}

const tokenWidth, tokenHeight = 16, 12

// squareOrigin returns the pixel origin of the token of p standing on
// position. Position 0 is the waiting slot under the board.
func squareOrigin(b *model.Board, p model.Player, position int) (float64, float64) {
	shift := float64(p) * (tokenWidth + 4)
	coord, err := b.CoordinatesFor(position)
	if err != nil {
		return 10 + shift, float64(boardHeight + 8)
	}
	return float64(coord.Col*size) + 6 + shift, float64(coord.Row*size) + size - tokenHeight - 4
}

// squareCenter is used for snake and ladder lines.
func squareCenter(b *model.Board, position int) (float64, float64) {
	coord, err := b.CoordinatesFor(position)
	if err != nil {
		return 0, 0
	}
	return float64(coord.Col*size) + size/2, float64(coord.Row*size) + size/2
}

func (t *Token) Place(b *model.Board, position int) {
	t.Position = position
	t.x, t.y = squareOrigin(b, t.Player, position)
}

package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine patch: corners keep their size, edges and center stretch.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [4][2]float64
}

func NewNine(img *ebiten.Image, corner int, c GameColor, alpha float64) *Nine {
	return &Nine{
		images: img,
		alpha:  alpha,
		R:      c.r, G: c.g, B: c.b, Scale: 1,
		positions: [4][2]int{{0, 0}, {corner, corner}, {2 * corner, 2 * corner}, {3 * corner, 3 * corner}},
	}
}

func (n *Nine) SetBounds(x, y, width, height int) {
	n.x = x
	n.y = y
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) patch(screen *ebiten.Image, col, row int, scaleX, scaleY float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
	op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
	src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
	screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scales := [3][2]float64{
		{n.Scale, n.Scale},
		{n.scaleCenterWidth, n.scaleCenterHeight},
		{n.Scale, n.Scale},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			n.patch(screen, col, row, scales[col][0], scales[row][1])
		}
	}
}

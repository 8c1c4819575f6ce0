package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/caarlos0/env/v11"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/zucenko/snakeladder/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type Settings struct {
	Start string  `env:"SNAKELADDER_START" envDefault:"A"`
	Seed  int64   `env:"SNAKELADDER_SEED"`
	Scale float64 `env:"SNAKELADDER_SCALE" envDefault:"1"`
}

func NewSettings() *Settings {
	return &Settings{Start: "A", Scale: 1}
}

func LoadSettings() (*Settings, error) {
	settings := NewSettings()
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if settings.Scale <= 0 {
		settings.Scale = 1
	}
	return settings, nil
}

func (s *Settings) StartPlayer() (model.Player, error) {
	return model.ParsePlayer(s.Start)
}

type Assets struct {
	Font      font.Face
	SmallFont font.Face
	Panel     *ebiten.Image
}

// Load prepares font faces and the nine patch panel image.
func Load() (*Assets, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    22,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	small := truetype.NewFace(tt, &truetype.Options{
		Size:    12,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	panel, err := ebiten.NewImageFromImage(panelImage(panelCorner), ebiten.FilterDefault)
	if err != nil {
		return nil, fmt.Errorf("panel image: %w", err)
	}
	return &Assets{Font: face, SmallFont: small, Panel: panel}, nil
}

const panelCorner = 8

// panelImage draws a white rounded square, 3 x corner wide, for Nine.
func panelImage(corner int) image.Image {
	side := 3 * corner
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	r := float64(corner)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := 0.0, 0.0
			if x < corner {
				dx = r - float64(x) - .5
			} else if x >= 2*corner {
				dx = float64(x) - 2*r + .5
			}
			if y < corner {
				dy = r - float64(y) - .5
			} else if y >= 2*corner {
				dy = float64(y) - 2*r + .5
			}
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

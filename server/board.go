package server

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakeladder/model"
)

type boardSquare struct {
	Position int `json:"position"`
	Row      int `json:"row"`
	Col      int `json:"col"`
}

type boardTransposition struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Kind string `json:"kind"`
}

type boardLayout struct {
	Size           int                  `json:"size"`
	Squares        []boardSquare        `json:"squares"`
	Transpositions []boardTransposition `json:"transpositions"`
}

// HandleBoard serves the grid layout and the snake and ladder table so a
// remote client can draw the board without knowing the rules.
func HandleBoard(b *model.Board) http.HandlerFunc {
	layout := boardLayout{Size: model.BoardSize}
	for p := model.MinPosition; p <= model.MaxPosition; p++ {
		c, err := b.CoordinatesFor(p)
		if err != nil {
			panic(err)
		}
		layout.Squares = append(layout.Squares, boardSquare{Position: p, Row: c.Row, Col: c.Col})
	}
	for _, t := range b.Transpositions() {
		layout.Transpositions = append(layout.Transpositions,
			boardTransposition{From: t.From, To: t.To, Kind: t.Kind.Name()})
	}
	body, err := json.Marshal(layout)
	if err != nil {
		panic(err)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			log.Warnf("HandleBoard write %v", err)
		}
	}
}

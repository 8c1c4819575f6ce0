package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/snakeladder/model"
)

func TestHandleBoard(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleBoard(model.DefaultBoard())(rec, httptest.NewRequest(http.MethodGet, "/board", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var layout boardLayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Equal(t, 10, layout.Size)
	require.Len(t, layout.Squares, 100)
	assert.Equal(t, boardSquare{Position: 1, Row: 9, Col: 0}, layout.Squares[0])
	assert.Equal(t, boardSquare{Position: 11, Row: 8, Col: 9}, layout.Squares[10])
	require.Len(t, layout.Transpositions, 12)
	assert.Equal(t, boardTransposition{From: 7, To: 77, Kind: "LADDER"}, layout.Transpositions[0])
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays vals in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestFruitSpawnerPlacesOnCellCentres(t *testing.T) {
	fs := NewFruitSpawner(DefaultConfig(), &seqSource{vals: []int{3, 7}})
	assert.Equal(t, 29, fs.Cols)
	assert.Equal(t, 22, fs.Rows)

	var food Sprite
	fs.Place(&food)
	assert.Equal(t, cell(3, 7), food.Pos)
	assert.Equal(t, food.Pos, food.PrevPos)
}

func TestFruitSpawnerStaysOnGrid(t *testing.T) {
	cfg := DefaultConfig()
	fs := NewFruitSpawner(cfg, NewRand(42))
	var food Sprite
	for i := 0; i < 500; i++ {
		fs.Place(&food)
		col := (food.Pos.X - 14) / 28
		row := (food.Pos.Y - 14) / 28
		require.Equal(t, float32(int(col)), col)
		require.Equal(t, float32(int(row)), row)
		require.True(t, col >= 0 && col < 29, "col %v", col)
		require.True(t, row >= 0 && row < 22, "row %v", row)
	}
}

func TestNewRandIsDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(29), b.Intn(29))
	}
}

func TestPlaceAvoidingSkipsSnake(t *testing.T) {
	fs := NewFruitSpawner(DefaultConfig(), &seqSource{vals: []int{0}})
	s := newTestSnake(t, cell(0, 0))

	var food Sprite
	fs.PlaceAvoiding(&food, s)
	assert.Equal(t, cell(1, 0), food.Pos)
}

func TestPlaceAvoidingFullBoardFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 56, 28
	fs := NewFruitSpawner(cfg, &seqSource{vals: []int{1, 0}})
	s := newTestSnake(t, cell(0, 0))
	s.Body = []Sprite{{Pos: cell(1, 0), Width: 24, Height: 24}}

	var food Sprite
	fs.PlaceAvoiding(&food, s)
	assert.Equal(t, cell(1, 0), food.Pos)
}

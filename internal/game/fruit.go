package game

import "golang.org/x/exp/rand"

// IntSource yields uniform integers in [0, n).
type IntSource interface {
	Intn(n int) int
}

// NewRand returns the seeded source used for fruit placement.
// Nearby seeds are mixed apart first.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(splitmix64(seed)))
}

// FruitSpawner places food on the centre of a random grid cell.
type FruitSpawner struct {
	Cols, Rows int
	Cell       float32

	rng IntSource
}

func NewFruitSpawner(cfg Config, rng IntSource) *FruitSpawner {
	return &FruitSpawner{Cols: cfg.Cols(), Rows: cfg.Rows(), Cell: cfg.Cell, rng: rng}
}

// Center returns the centre of cell (col, row).
func (fs *FruitSpawner) Center(col, row int) Vec3 {
	half := fs.Cell / 2
	return Vec3{X: half + float32(col)*fs.Cell, Y: half + float32(row)*fs.Cell}
}

// Place moves food to a uniformly random cell. The snake is not consulted,
// so food can land under the body.
func (fs *FruitSpawner) Place(food *Sprite) {
	col := fs.rng.Intn(fs.Cols)
	row := fs.rng.Intn(fs.Rows)
	food.Pos = fs.Center(col, row)
	food.PrevPos = food.Pos
}

// PlaceAvoiding picks uniformly among cells the snake does not cover.
// When every cell is covered it falls back to Place.
func (fs *FruitSpawner) PlaceAvoiding(food *Sprite, snake *Snake) {
	free := make([]Vec3, 0, fs.Cols*fs.Rows)
	for row := 0; row < fs.Rows; row++ {
		for col := 0; col < fs.Cols; col++ {
			c := fs.Center(col, row)
			if !snake.Covers(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		fs.Place(food)
		return
	}
	food.Pos = free[fs.rng.Intn(len(free))]
	food.PrevPos = food.Pos
}

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Playfield dimensions (in logical units).
// 812x616 is exactly 29x22 cells of 28 units.
const (
	PlayfieldWidth  = 812
	PlayfieldHeight = 616
	CellSize        = 28
)

// Simulation rate. The tick interval is TickSlowdown/TicksPerSecond.
const (
	TicksPerSecond = 12.0
	TickSlowdown   = 3.0
	MaxFrameDelta  = 1.0
)

const DefaultTitle = "Snake!"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a session needs that is not hard-wired.
type Config struct {
	Width          float32 `json:"width"`
	Height         float32 `json:"height"`
	Cell           float32 `json:"cell"`
	TicksPerSecond float64 `json:"ticksPerSecond"`
	TickSlowdown   float64 `json:"tickSlowdown"`
	MaxFrameDelta  float64 `json:"maxFrameDelta"`

	Seed             uint64 `json:"seed"`
	AssetDir         string `json:"assetDir"`
	Title            string `json:"title"`
	Mute             bool   `json:"mute"`
	FruitAvoidsSnake bool   `json:"fruitAvoidsSnake"`
}

func DefaultConfig() Config {
	return Config{
		Width:          PlayfieldWidth,
		Height:         PlayfieldHeight,
		Cell:           CellSize,
		TicksPerSecond: TicksPerSecond,
		TickSlowdown:   TickSlowdown,
		MaxFrameDelta:  MaxFrameDelta,
		Seed:           uint64(time.Now().UnixNano()),
		AssetDir:       "assets",
		Title:          DefaultTitle,
	}
}

// LoadConfig reads a JSON file on top of DefaultConfig. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SNAKE_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		}
	}
	if s := os.Getenv("SNAKE_ASSETS"); s != "" {
		c.AssetDir = s
	}
	if s := os.Getenv("SNAKE_MUTE"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			c.Mute = v
		}
	}
	if s := os.Getenv("SNAKE_AVOID_BODY"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			c.FruitAvoidsSnake = v
		}
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Cell <= 0 {
		return fmt.Errorf("%w: playfield %gx%g cell %g must be positive", ErrInvalidConfig, c.Width, c.Height, c.Cell)
	}
	if c.Cell > c.Width || c.Cell > c.Height {
		return fmt.Errorf("%w: cell %g larger than playfield", ErrInvalidConfig, c.Cell)
	}
	if c.Width != float32(c.Cols())*c.Cell || c.Height != float32(c.Rows())*c.Cell {
		return fmt.Errorf("%w: playfield %gx%g is not a whole number of %g cells", ErrInvalidConfig, c.Width, c.Height, c.Cell)
	}
	if c.TicksPerSecond <= 0 || c.TickSlowdown <= 0 {
		return fmt.Errorf("%w: tick rate %g/%g must be positive", ErrInvalidConfig, c.TicksPerSecond, c.TickSlowdown)
	}
	if c.MaxFrameDelta < 0 {
		return fmt.Errorf("%w: negative max frame delta", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Cols() int { return int(c.Width / c.Cell) }
func (c Config) Rows() int { return int(c.Height / c.Cell) }

// TickInterval is the simulated time of one step, in seconds.
func (c Config) TickInterval() float64 { return c.TickSlowdown / c.TicksPerSecond }

func (c Config) Bounds() Bounds { return Bounds{Width: c.Width, Height: c.Height} }

// HeadSize is one unit smaller than a cell so heads in adjacent cells never touch.
func (c Config) HeadSize() float32 { return c.Cell - 1 }

// BodySize is the edge of a body segment, a little smaller than the head.
func (c Config) BodySize() float32 { return c.Cell - 4 }

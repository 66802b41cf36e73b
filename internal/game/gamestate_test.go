package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tick is one simulation step at the default rate.
const tick = 0.25

func newTestGame(t *testing.T, events *EventBus) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	g, err := NewGame(cfg, &seqSource{vals: []int{0}}, events)
	require.NoError(t, err)
	return g
}

func TestNewGameOpeningBoard(t *testing.T) {
	g := newTestGame(t, nil)
	assert.Equal(t, StatePlaying, g.State)
	assert.Equal(t, Vec3{X: 406, Y: 322}, g.Snake.Head.Pos)
	assert.Equal(t, Vec3{X: 574, Y: 322}, g.Food.Pos)
	assert.Equal(t, float32(27), g.Snake.Head.Width)
	assert.Equal(t, float32(27), g.Food.Width)
	assert.Equal(t, Vec3{X: 406, Y: 308, Z: -0.5}, g.Background.Pos)
	assert.Equal(t, 0, g.Len())
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cell = 0
	_, err := NewGame(cfg, &seqSource{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFrameStepsOnTickBoundaries(t *testing.T) {
	g := newTestGame(t, nil)
	assert.Equal(t, 0, g.Frame(0.125, nil))
	assert.Equal(t, Vec3{X: 406, Y: 322}, g.Snake.Head.Pos)
	assert.Equal(t, 1, g.Frame(0.125, nil))
	assert.Equal(t, Vec3{X: 434, Y: 322}, g.Snake.Head.Pos)
	assert.Equal(t, 1, g.Steps())
}

func TestFrameSnapshotsOncePerFrame(t *testing.T) {
	g := newTestGame(t, nil)
	assert.Equal(t, 2, g.Frame(2*tick, nil))
	assert.Equal(t, Vec3{X: 462, Y: 322}, g.Snake.Head.Pos)
	assert.Equal(t, Vec3{X: 406, Y: 322}, g.Snake.Head.PrevPos)
}

func TestEatingGrowsAndRespawns(t *testing.T) {
	bus := NewEventBus()
	var eaten []Event
	bus.Subscribe(EventFruitEaten, func(e Event) { eaten = append(eaten, e) })
	g := newTestGame(t, bus)

	for i := 0; i < 6; i++ {
		g.Frame(tick, nil)
	}
	require.Equal(t, 1, g.Len())
	assert.Equal(t, Vec3{X: 546, Y: 322}, g.Snake.Body[0].Pos)
	assert.Equal(t, cell(0, 0), g.Food.Pos)
	require.Len(t, eaten, 1)
	assert.Equal(t, float32(574), eaten[0].X)
	assert.Equal(t, 1, eaten[0].Len)

	g.Frame(tick, nil)
	assert.Equal(t, Vec3{X: 574, Y: 322}, g.Snake.Body[0].Pos)
	assert.False(t, g.Over())
}

func TestReverseKeyIsIgnored(t *testing.T) {
	g := newTestGame(t, nil)
	g.Frame(tick, keysDown(KeyLeft))
	assert.Equal(t, Right, g.Snake.Head.Moving)
	assert.Equal(t, Vec3{X: 434, Y: 322}, g.Snake.Head.Pos)

	g.Frame(tick, keysDown(KeyUp))
	assert.Equal(t, Vec3{X: 434, Y: 350}, g.Snake.Head.Pos)
	assert.Equal(t, float32(90), g.Snake.Head.Angle)
}

func TestLeavingPlayfieldEndsGame(t *testing.T) {
	bus := NewEventBus()
	var over []Event
	bus.Subscribe(EventGameOver, func(e Event) { over = append(over, e) })
	g := newTestGame(t, bus)

	for i := 0; i < 14; i++ {
		g.Frame(tick, nil)
		require.False(t, g.Over(), "frame %d", i)
	}
	assert.Equal(t, float32(798), g.Snake.Head.Pos.X)

	g.Frame(tick, nil)
	assert.True(t, g.Over())
	assert.Equal(t, CauseOutOfBounds, g.Cause)
	require.Len(t, over, 1)
	assert.Equal(t, CauseOutOfBounds, over[0].Cause)

	assert.Equal(t, 0, g.Frame(tick, nil))
	assert.Len(t, over, 1)
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	g.Snake.Head.Pos = cell(10, 10)
	g.Snake.Body = []Sprite{
		{Pos: cell(9, 10), Width: 24, Height: 24},
		{Pos: cell(9, 11), Width: 24, Height: 24},
		{Pos: cell(10, 11), Width: 24, Height: 24},
		{Pos: cell(11, 11), Width: 24, Height: 24},
		{Pos: cell(11, 10), Width: 24, Height: 24},
	}

	g.Frame(tick, keysDown(KeyUp))
	assert.Equal(t, cell(10, 11), g.Snake.Head.Pos)
	assert.True(t, g.Over())
	assert.Equal(t, CauseSelfCollision, g.Cause)
}

func TestQuitEmitsOnce(t *testing.T) {
	bus := NewEventBus()
	n := 0
	bus.Subscribe(EventGameOver, func(e Event) {
		n++
		assert.Equal(t, CauseQuit, e.Cause)
	})
	g := newTestGame(t, bus)
	g.Quit()
	g.Quit()
	assert.Equal(t, 1, n)
	assert.Equal(t, "quit", g.Cause.String())
}

func TestStartedEventOnNewGame(t *testing.T) {
	bus := NewEventBus()
	started := 0
	bus.Subscribe(EventStarted, func(Event) { started++ })
	newTestGame(t, bus)
	assert.Equal(t, 1, started)
}

func TestFruitAvoidsSnakeOption(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FruitAvoidsSnake = true
	g, err := NewGame(cfg, &seqSource{vals: []int{0}}, nil)
	require.NoError(t, err)
	g.Snake.Body = []Sprite{{Pos: cell(0, 0), Width: 24, Height: 24}}
	g.Snake.Head.Pos = cell(19, 11)

	g.Frame(tick, nil)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, cell(1, 0), g.Food.Pos)
}

func TestViewsOrder(t *testing.T) {
	g := newTestGame(t, nil)
	g.Snake.Body = []Sprite{{Pos: cell(13, 11), Width: 24, Height: 24}}

	views := g.Views(nil)
	require.Len(t, views, 4)
	assert.Equal(t, []SpriteKind{KindBackground, KindHead, KindFood, KindBody},
		[]SpriteKind{views[0].Kind, views[1].Kind, views[2].Kind, views[3].Kind})
	assert.Equal(t, float32(-0.5), views[0].Z)
	assert.Equal(t, float32(812), views[0].Width)
	assert.Equal(t, float32(378), views[3].X)

	views[1].X = 0
	assert.Equal(t, float32(406), g.Snake.Head.Pos.X)

	again := g.Views(views)
	assert.Len(t, again, 4)
}

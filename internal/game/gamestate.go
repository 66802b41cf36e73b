package game

type GameState int

const (
	StatePlaying GameState = iota
	StateOver              // terminal; the loop should close
)

// OverCause says why a game ended.
type OverCause int

const (
	CauseNone OverCause = iota
	CauseOutOfBounds
	CauseSelfCollision
	CauseQuit
)

func (c OverCause) String() string {
	switch c {
	case CauseOutOfBounds:
		return "out of bounds"
	case CauseSelfCollision:
		return "self collision"
	case CauseQuit:
		return "quit"
	}
	return "none"
}

// Game is one session: the snake, the food and the clock driving them.
type Game struct {
	State GameState
	Cause OverCause

	Snake      *Snake
	Food       Sprite
	Background Sprite

	cfg     Config
	bounds  Bounds
	clock   *Clock
	spawner *FruitSpawner
	events  *EventBus
	steps   int
}

// NewGame sets up the opening board: head mid-field heading right, food six
// cells ahead of it.
func NewGame(cfg Config, rng IntSource, events *EventBus) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spawner := NewFruitSpawner(cfg, rng)
	midCol, midRow := cfg.Cols()/2, cfg.Rows()/2

	snake, err := NewSnake(spawner.Center(midCol, midRow), cfg.HeadSize(), cfg.BodySize(), cfg.Cell)
	if err != nil {
		return nil, err
	}
	food, err := NewSprite(spawner.Center(midCol+6, midRow), cfg.HeadSize(), cfg.HeadSize())
	if err != nil {
		return nil, err
	}
	bg, err := NewSprite(cfg.Bounds().Center(), cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	bg.Pos.Z = -0.5

	g := &Game{
		State:      StatePlaying,
		Snake:      snake,
		Food:       food,
		Background: bg,
		cfg:        cfg,
		bounds:     cfg.Bounds(),
		clock:      NewClock(cfg.TickInterval(), cfg.MaxFrameDelta),
		spawner:    spawner,
		events:     events,
	}
	g.events.Emit(Event{Type: EventStarted, X: snake.Head.Pos.X, Y: snake.Head.Pos.Y})
	return g, nil
}

func (g *Game) Over() bool { return g.State == StateOver }

// Len is the body length.
func (g *Game) Len() int { return g.Snake.Len() }

// Steps is the number of simulation steps run so far.
func (g *Game) Steps() int { return g.steps }

func (g *Game) Clock() *Clock { return g.clock }

// Frame advances the session by dt seconds of wall time and returns the
// number of simulation steps it ran. Phases, in order: input, snapshot,
// step (zero or more), judge.
func (g *Game) Frame(dt float64, keys *KeyState) int {
	if g.Over() {
		return 0
	}
	head := &g.Snake.Head

	// Input.
	head.Moving = MapDirection(keys, head.Moving, head.PrevMoving)

	// Snapshot: once per frame, not per step.
	head.Snapshot()

	n := 0
	g.clock.Add(dt)
	for g.clock.Step() {
		g.step()
		n++
	}

	g.judge()
	return n
}

func (g *Game) step() {
	g.steps++
	g.Snake.Head.Advance()
	g.Snake.Shift()

	if Collides(&g.Snake.Head, &g.Food) {
		if g.cfg.FruitAvoidsSnake {
			g.Snake.Grow()
			g.spawner.PlaceAvoiding(&g.Food, g.Snake)
		} else {
			g.spawner.Place(&g.Food)
			g.Snake.Grow()
		}
		g.events.Emit(Event{
			Type: EventFruitEaten,
			X:    g.Snake.Head.Pos.X,
			Y:    g.Snake.Head.Pos.Y,
			Len:  g.Snake.Len(),
		})
	}
}

// judge checks the terminal conditions once per frame.
func (g *Game) judge() {
	switch {
	case !g.bounds.Contains(g.Snake.Head.Pos):
		g.end(CauseOutOfBounds)
	case g.Snake.BitesItself():
		g.end(CauseSelfCollision)
	}
}

// Quit ends the game at the player's request.
func (g *Game) Quit() { g.end(CauseQuit) }

func (g *Game) end(cause OverCause) {
	if g.Over() {
		return
	}
	g.State = StateOver
	g.Cause = cause
	head := g.Snake.Head.Pos
	g.events.Emit(Event{Type: EventGameOver, X: head.X, Y: head.Y, Len: g.Snake.Len(), Cause: cause})
}

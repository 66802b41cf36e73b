package game

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("sprite size must be positive")

// Vec3 is a playfield point. Z only orders drawing.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3       { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(k float32) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Sprite is the simulation record of a positioned, sized, rotatable rectangle.
// Only the game loop writes to it; the renderer reads SpriteView copies.
type Sprite struct {
	Pos     Vec3
	PrevPos Vec3 // snapshot used to shift the chain

	Width, Height float32
	Angle         float32 // degrees, counter-clockwise
	Speed         float32 // units per step

	Moving     Direction
	PrevMoving Direction // committed on the last step
}

func NewSprite(pos Vec3, width, height float32) (Sprite, error) {
	if width <= 0 || height <= 0 {
		return Sprite{}, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return Sprite{Pos: pos, PrevPos: pos, Width: width, Height: height}, nil
}

// Min is the lower-left corner of the bounding box.
func (s *Sprite) Min() Vec3 {
	return Vec3{X: s.Pos.X - s.Width/2, Y: s.Pos.Y - s.Height/2}
}

// Max is the upper-right corner of the bounding box.
func (s *Sprite) Max() Vec3 {
	return Vec3{X: s.Pos.X + s.Width/2, Y: s.Pos.Y + s.Height/2}
}

// Snapshot records the current position as the previous one.
func (s *Sprite) Snapshot() { s.PrevPos = s.Pos }

// Advance moves one step of Speed along Moving and commits the direction.
func (s *Sprite) Advance() {
	s.Pos = s.Pos.Add(s.Moving.Delta().Scale(s.Speed))
	s.PrevMoving = s.Moving
	s.Angle = s.Moving.Angle()
}

// Collides reports whether the bounding boxes of a and b overlap on both axes.
// Touching edges count.
func Collides(a, b *Sprite) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	x := aMax.X >= bMin.X && bMax.X >= aMin.X
	y := aMax.Y >= bMin.Y && bMax.Y >= aMin.Y
	return x && y
}

// Bounds is the playfield rectangle anchored at the origin.
type Bounds struct {
	Width, Height float32
}

// Contains is inclusive on every edge.
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

func (b Bounds) Center() Vec3 { return Vec3{X: b.Width / 2, Y: b.Height / 2} }

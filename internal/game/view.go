package game

// SpriteKind picks the texture a view is drawn with.
type SpriteKind int

const (
	KindBackground SpriteKind = iota
	KindHead
	KindFood
	KindBody
)

// SpriteView is a read-only copy of a sprite for the renderer.
type SpriteView struct {
	Kind          SpriteKind
	X, Y, Z       float32
	Width, Height float32
	Angle         float32 // degrees
}

func viewOf(kind SpriteKind, s *Sprite) SpriteView {
	return SpriteView{
		Kind:   kind,
		X:      s.Pos.X,
		Y:      s.Pos.Y,
		Z:      s.Pos.Z,
		Width:  s.Width,
		Height: s.Height,
		Angle:  s.Angle,
	}
}

// Views appends this frame's draw list to buf[:0]: background, head, food,
// then the body from the head outwards.
func (g *Game) Views(buf []SpriteView) []SpriteView {
	buf = buf[:0]
	buf = append(buf,
		viewOf(KindBackground, &g.Background),
		viewOf(KindHead, &g.Snake.Head),
		viewOf(KindFood, &g.Food),
	)
	for i := range g.Snake.Body {
		buf = append(buf, viewOf(KindBody, &g.Snake.Body[i]))
	}
	return buf
}

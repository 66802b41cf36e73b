package game

// Snake is a head plus its body chain. Body[0] is the segment nearest the head.
type Snake struct {
	Head Sprite
	Body []Sprite

	bodySize float32
}

// NewSnake places the head at pos, heading right with speed units per step.
func NewSnake(pos Vec3, headSize, bodySize, speed float32) (*Snake, error) {
	head, err := NewSprite(pos, headSize, headSize)
	if err != nil {
		return nil, err
	}
	if bodySize <= 0 {
		return nil, ErrInvalidSize
	}
	head.Speed = speed
	head.Moving = Right
	head.PrevMoving = Right
	return &Snake{Head: head, bodySize: bodySize}, nil
}

// Len is the number of body segments.
func (s *Snake) Len() int { return len(s.Body) }

// Tail returns the last link of the chain: the last segment, or the head
// when there is no body.
func (s *Snake) Tail() *Sprite {
	if len(s.Body) == 0 {
		return &s.Head
	}
	return &s.Body[len(s.Body)-1]
}

// Shift moves every segment into the slot the link ahead of it held before
// this step. The head's PrevPos must already be set.
func (s *Snake) Shift() {
	for i := range s.Body {
		seg := &s.Body[i]
		seg.Snapshot()
		if i == 0 {
			seg.Pos = s.Head.PrevPos
		} else {
			seg.Pos = s.Body[i-1].PrevPos
		}
	}
}

// Grow appends one segment where the tail was before the latest Shift.
func (s *Snake) Grow() {
	at := s.Tail().PrevPos
	s.Body = append(s.Body, Sprite{
		Pos:     at,
		PrevPos: at,
		Width:   s.bodySize,
		Height:  s.bodySize,
	})
}

// BitesItself reports whether the head overlaps any body segment.
func (s *Snake) BitesItself() bool {
	for i := range s.Body {
		if Collides(&s.Head, &s.Body[i]) {
			return true
		}
	}
	return false
}

// Covers reports whether p lies inside the head or any segment.
func (s *Snake) Covers(p Vec3) bool {
	probe := Sprite{Pos: p}
	if Collides(&s.Head, &probe) {
		return true
	}
	for i := range s.Body {
		if Collides(&s.Body[i], &probe) {
			return true
		}
	}
	return false
}

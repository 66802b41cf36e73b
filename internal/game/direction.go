package game

// Direction is a grid heading. The zero value is Right.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta is the unit step for d. Up increases Y.
func (d Direction) Delta() Vec3 {
	switch d {
	case Up:
		return Vec3{Y: 1}
	case Down:
		return Vec3{Y: -1}
	case Left:
		return Vec3{X: -1}
	default:
		return Vec3{X: 1}
	}
}

// Angle is the sprite rotation, in degrees, that faces d.
func (d Direction) Angle() float32 {
	return float32(d) * 90
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

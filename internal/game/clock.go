package game

// Clock turns variable frame times into a whole number of fixed steps.
type Clock struct {
	Interval float64 // seconds per step
	MaxDelta float64 // largest frame time accepted; 0 disables the clamp

	acc float64
}

func NewClock(interval, maxDelta float64) *Clock {
	return &Clock{Interval: interval, MaxDelta: maxDelta}
}

// Add feeds one frame's elapsed time into the accumulator.
func (c *Clock) Add(dt float64) {
	if dt <= 0 {
		return
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	c.acc += dt
}

// Step consumes one interval if the accumulator holds one.
func (c *Clock) Step() bool {
	if c.Interval <= 0 || c.acc < c.Interval {
		return false
	}
	c.acc -= c.Interval
	return true
}

// Leftover is the time carried into the next frame.
func (c *Clock) Leftover() float64 { return c.acc }

func (c *Clock) Reset() { c.acc = 0 }

package game

// FrameStats counts rendered frames and reports a rate once per window.
type FrameStats struct {
	Window float64 // seconds between reports

	frames  int
	elapsed float64
	fps     float64
}

func NewFrameStats(window float64) *FrameStats {
	return &FrameStats{Window: window}
}

// Tick records one frame of dt seconds. It returns true when a new rate is ready.
func (fs *FrameStats) Tick(dt float64) bool {
	fs.frames++
	fs.elapsed += dt
	if fs.elapsed < fs.Window || fs.elapsed <= 0 {
		return false
	}
	fs.fps = float64(fs.frames) / fs.elapsed
	fs.frames = 0
	fs.elapsed = 0
	return true
}

func (fs *FrameStats) FPS() float64 { return fs.fps }

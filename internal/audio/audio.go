// Package audio plays short procedurally generated sound effects.
package audio

import (
	"context"
	"io"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundEat
	SoundGameOver
)

// System owns the oto context. A nil *System is silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu      sync.Mutex
	cache   map[SoundKind][]byte
	playing sync.WaitGroup
}

// New opens the audio device.
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:    ctx,
		ready:  ready,
		volume: clampF(volume, 0, 1),
		cache:  make(map[SoundKind][]byte),
	}, nil
}

// Play starts kind in the background. Sounds requested before the device is
// ready are dropped.
func (s *System) Play(kind SoundKind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := s.samples(kind)
	if len(samples) == 0 {
		return
	}
	s.playing.Add(1)
	go func() {
		defer s.playing.Done()
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Wait blocks until every started sound has finished or ctx is done.
func (s *System) Wait(ctx context.Context) error {
	if s == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		s.playing.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *System) samples(kind SoundKind) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if buf, ok := s.cache[kind]; ok {
		return buf
	}
	buf := generateSound(kind)
	s.cache[kind] = buf
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

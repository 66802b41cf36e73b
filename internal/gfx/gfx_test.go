package gfx

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"gridsnake/internal/game"
)

func assertVec(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestProjectionCorners(t *testing.T) {
	p := Projection(812, 616)
	assertVec(t, mgl32.Vec4{-1, -1, 0, 1}, p.Mul4x1(mgl32.Vec4{0, 0, 0, 1}))
	assertVec(t, mgl32.Vec4{1, 1, 0, 1}, p.Mul4x1(mgl32.Vec4{812, 616, 0, 1}))
	assertVec(t, mgl32.Vec4{0, 0, 0, 1}, p.Mul4x1(mgl32.Vec4{406, 308, 0, 1}))
}

func TestModelMatrixScalesAndTranslates(t *testing.T) {
	m := ModelMatrix(game.SpriteView{X: 406, Y: 322, Width: 27, Height: 27})
	assertVec(t, mgl32.Vec4{406, 322, 0, 1}, m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}))
	assertVec(t, mgl32.Vec4{419.5, 335.5, 0, 1}, m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1}))
}

func TestModelMatrixRotatesBeforeTranslating(t *testing.T) {
	m := ModelMatrix(game.SpriteView{X: 100, Y: 100, Width: 20, Height: 10, Angle: 90})
	// The quad's right edge midpoint ends up above the centre.
	assertVec(t, mgl32.Vec4{100, 110, 0, 1}, m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}))
}

type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(k glfw.Key) glfw.Action {
	if f[k] {
		return glfw.Press
	}
	return glfw.Release
}

func TestPollKeys(t *testing.T) {
	ks := game.NewKeyState()
	PollKeys(fakeKeys{glfw.KeyW: true, glfw.KeyEscape: true}, ks)
	assert.True(t, ks.Down(game.KeyW))
	assert.True(t, ks.Down(game.KeyEscape))
	assert.False(t, ks.Down(game.KeyUp))

	PollKeys(fakeKeys{}, ks)
	assert.False(t, ks.Down(game.KeyW))
	assert.Len(t, keyBindings, len(game.AllKeys))
}

package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/game"
)

// Projection maps playfield units to clip space with the origin bottom-left.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, 0, height, -1, 1)
}

// ModelMatrix places the unit quad: translate, then rotate about Z, then scale.
func ModelMatrix(v game.SpriteView) mgl32.Mat4 {
	return mgl32.Translate3D(v.X, v.Y, v.Z).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(v.Angle))).
		Mul4(mgl32.Scale3D(v.Width, v.Height, 1))
}

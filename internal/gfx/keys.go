package gfx

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

// keyBindings maps GLFW keys onto the game's logical keys.
var keyBindings = map[glfw.Key]game.Key{
	glfw.KeyLeft:   game.KeyLeft,
	glfw.KeyRight:  game.KeyRight,
	glfw.KeyUp:     game.KeyUp,
	glfw.KeyDown:   game.KeyDown,
	glfw.KeyA:      game.KeyA,
	glfw.KeyD:      game.KeyD,
	glfw.KeyW:      game.KeyW,
	glfw.KeyS:      game.KeyS,
	glfw.KeyEscape: game.KeyEscape,
}

// KeySampler reports whether a GLFW key is held. *glfw.Window satisfies it.
type KeySampler interface {
	GetKey(key glfw.Key) glfw.Action
}

// PollKeys copies the held state of every bound key into ks.
// Call after glfw.PollEvents.
func PollKeys(src KeySampler, ks *game.KeyState) {
	for gk, k := range keyBindings {
		ks.Set(k, src.GetKey(gk) == glfw.Press)
	}
}

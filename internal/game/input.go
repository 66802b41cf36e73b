package game

import "github.com/kamstrup/intmap"

// Key is a logical key the game reacts to. The platform layer maps its own
// key codes onto these.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape
)

// AllKeys lists every key a platform should sample each frame.
var AllKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS, KeyEscape}

// KeyState is the pressed/released state of every key for one frame.
// It is filled by the platform layer and handed to the game explicitly.
type KeyState struct {
	down     *intmap.Map[Key, bool]
	prevDown *intmap.Map[Key, bool]
}

func NewKeyState() *KeyState {
	return &KeyState{
		down:     intmap.New[Key, bool](len(AllKeys)),
		prevDown: intmap.New[Key, bool](len(AllKeys)),
	}
}

// Set records the current state of a key, remembering the last one for JustPressed.
func (ks *KeyState) Set(key Key, down bool) {
	was, _ := ks.down.Get(key)
	ks.prevDown.Put(key, was)
	ks.down.Put(key, down)
}

func (ks *KeyState) Down(key Key) bool {
	down, _ := ks.down.Get(key)
	return down
}

// JustPressed is true when the key went down on the latest Set.
func (ks *KeyState) JustPressed(key Key) bool {
	was, _ := ks.prevDown.Get(key)
	return ks.Down(key) && !was
}

// Any reports whether at least one of keys is down.
func (ks *KeyState) Any(keys ...Key) bool {
	for _, k := range keys {
		if ks.Down(k) {
			return true
		}
	}
	return false
}

func (ks *KeyState) Reset() {
	ks.down.Clear()
	ks.prevDown.Clear()
}

// Key bindings, checked in this order by MapDirection.
var directionBindings = []struct {
	dir  Direction
	keys [2]Key
}{
	{Left, [2]Key{KeyLeft, KeyA}},
	{Right, [2]Key{KeyRight, KeyD}},
	{Up, [2]Key{KeyUp, KeyW}},
	{Down, [2]Key{KeyDown, KeyS}},
}

// MapDirection returns the requested direction for this frame.
// Bindings are checked left, right, up, down; each accepted request
// overrides the earlier ones. A request that reverses committed is ignored.
// With no binding down, current is returned.
func MapDirection(keys *KeyState, current, committed Direction) Direction {
	if keys == nil {
		return current
	}
	next := current
	for _, b := range directionBindings {
		if !keys.Any(b.keys[0], b.keys[1]) {
			continue
		}
		if b.dir == committed.Opposite() {
			continue
		}
		next = b.dir
	}
	return next
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// KeyBindings maps keys to the two player controls
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultBindings is A/D or arrows to move, W, Up or Space to jump
func DefaultBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	}
}

// Keyboard samples the keyboard once per tick
type Keyboard struct {
	bindings KeyBindings
}

// NewKeyboard creates a keyboard sampler with the given bindings
func NewKeyboard(bindings KeyBindings) *Keyboard {
	return &Keyboard{bindings: bindings}
}

// GetInput reads the current input state. The keyboard never runs out.
func (k *Keyboard) GetInput() (entity.InputSample, bool) {
	return sample(
		anyKey(k.bindings.Left, ebiten.IsKeyPressed),
		anyKey(k.bindings.Right, ebiten.IsKeyPressed),
		anyKey(k.bindings.Jump, inpututil.IsKeyJustPressed),
		anyKey(k.bindings.Jump, ebiten.IsKeyPressed),
	), true
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// sample builds an input sample from key state; opposite directions cancel
func sample(left, right, jumpPressed, jumpHeld bool) entity.InputSample {
	var axis float64
	if left {
		axis--
	}
	if right {
		axis++
	}
	return entity.InputSample{
		Axis:        axis,
		JumpPressed: jumpPressed,
		JumpHeld:    jumpHeld || jumpPressed,
	}
}

package retrospector

import "github.com/hajimehoshi/ebiten/v2"

// Key identifies one tracked key in the fixed vocabulary: the 26 letters,
// the 10 digits, the four arrow keys, and enter. Keys outside this
// vocabulary are not tracked.
type Key uint8

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyArrowLeft
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyEnter
	keyCount // number of tracked keys; must stay last
)

// keyByCode is the static table from platform key codes to tracked keys.
// Codes absent from the table are untracked.
var keyByCode = map[ebiten.Key]Key{
	ebiten.KeyA:          KeyA,
	ebiten.KeyB:          KeyB,
	ebiten.KeyC:          KeyC,
	ebiten.KeyD:          KeyD,
	ebiten.KeyE:          KeyE,
	ebiten.KeyF:          KeyF,
	ebiten.KeyG:          KeyG,
	ebiten.KeyH:          KeyH,
	ebiten.KeyI:          KeyI,
	ebiten.KeyJ:          KeyJ,
	ebiten.KeyK:          KeyK,
	ebiten.KeyL:          KeyL,
	ebiten.KeyM:          KeyM,
	ebiten.KeyN:          KeyN,
	ebiten.KeyO:          KeyO,
	ebiten.KeyP:          KeyP,
	ebiten.KeyQ:          KeyQ,
	ebiten.KeyR:          KeyR,
	ebiten.KeyS:          KeyS,
	ebiten.KeyT:          KeyT,
	ebiten.KeyU:          KeyU,
	ebiten.KeyV:          KeyV,
	ebiten.KeyW:          KeyW,
	ebiten.KeyX:          KeyX,
	ebiten.KeyY:          KeyY,
	ebiten.KeyZ:          KeyZ,
	ebiten.KeyDigit0:     KeyDigit0,
	ebiten.KeyDigit1:     KeyDigit1,
	ebiten.KeyDigit2:     KeyDigit2,
	ebiten.KeyDigit3:     KeyDigit3,
	ebiten.KeyDigit4:     KeyDigit4,
	ebiten.KeyDigit5:     KeyDigit5,
	ebiten.KeyDigit6:     KeyDigit6,
	ebiten.KeyDigit7:     KeyDigit7,
	ebiten.KeyDigit8:     KeyDigit8,
	ebiten.KeyDigit9:     KeyDigit9,
	ebiten.KeyArrowLeft:  KeyArrowLeft,
	ebiten.KeyArrowUp:    KeyArrowUp,
	ebiten.KeyArrowRight: KeyArrowRight,
	ebiten.KeyArrowDown:  KeyArrowDown,
	ebiten.KeyEnter:      KeyEnter,
}

// KeyState tracks the held/released level of every key in the vocabulary.
// It is a pure level: repeated presses (key repeat) and repeated releases
// leave the state unchanged, and there is no ordering between keys.
//
// The frame loop mutates a KeyState from host key events and hands the app
// a per-tick snapshot, so the app's view never changes mid-tick. All of
// this happens on the single loop goroutine; KeyState itself is not safe
// for concurrent use from other goroutines.
type KeyState struct {
	down [keyCount]bool
}

// Press marks the key mapped to code as held. Unmapped codes are a no-op,
// not an error: unrecognized keys are simply untracked.
func (s *KeyState) Press(code ebiten.Key) {
	if key, ok := keyByCode[code]; ok {
		s.down[key] = true
	}
}

// Release marks the key mapped to code as no longer held. Unmapped codes
// are a no-op.
func (s *KeyState) Release(code ebiten.Key) {
	if key, ok := keyByCode[code]; ok {
		s.down[key] = false
	}
}

// IsDown reports whether the given key is currently held.
func (s *KeyState) IsDown(key Key) bool {
	return key < keyCount && s.down[key]
}

// Snapshot returns a copy of the current state. The copy is detached:
// later presses and releases on s do not affect it.
func (s *KeyState) Snapshot() KeyState {
	return *s
}

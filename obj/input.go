package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Snapshot holds one tick of keyboard state.
type Snapshot struct {
	// Shift is true while either shift key is held.
	Shift bool
	// Z is true while Z is held.
	Z bool
	// Pressed holds this tick's key-press events in the order ebiten reports
	// them, including auto-repeats of held keys.
	Pressed []ebiten.Key
	// Quit is true when escape was pressed or the window is closing.
	Quit bool
}

// Input polls the keyboard once per tick.
type Input struct {
	// RepeatDelay is the number of ticks a key must be held before it
	// repeats. Zero disables repeat.
	RepeatDelay int
	// RepeatInterval is the number of ticks between repeats.
	RepeatInterval int

	held []ebiten.Key
}

// NewInput returns an Input with the given repeat schedule, in ticks.
func NewInput(repeatDelay, repeatInterval int) *Input {
	return &Input{RepeatDelay: repeatDelay, RepeatInterval: repeatInterval}
}

// Poll reads the current keyboard state. It must be called from the game's
// Update.
func (i *Input) Poll() Snapshot {
	var s Snapshot

	s.Shift = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	s.Z = ebiten.IsKeyPressed(ebiten.KeyZ)

	s.Pressed = inpututil.AppendJustPressedKeys(s.Pressed)

	i.held = ebiten.AppendPressedKeys(i.held[:0])
	for _, k := range i.held {
		d := inpututil.KeyPressDuration(k)
		if d > 1 && Repeats(d, i.RepeatDelay, i.RepeatInterval) {
			s.Pressed = append(s.Pressed, k)
		}
	}

	s.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
	return s
}

// Repeats reports whether a key held for duration ticks emits a repeat on
// this tick. Repeats fire at delay, delay+interval, delay+2*interval and so
// on. A non-positive delay disables repeat; a non-positive interval repeats
// every tick after the delay.
func Repeats(duration, delay, interval int) bool {
	if delay <= 0 || duration < delay {
		return false
	}
	if interval <= 0 {
		return true
	}
	return (duration-delay)%interval == 0
}

// StepFor scales the base step by the held modifiers. Z only has an effect
// together with shift.
func StepFor(base float64, shift, z bool) float64 {
	switch {
	case shift && z:
		return base / 16
	case shift:
		return base / 4
	default:
		return base
	}
}

// Offset maps a key to the slot it moves and the offset to apply.
func Offset(key ebiten.Key, step float64) (slot Slot, dx, dy float64, ok bool) {
	switch key {
	case ebiten.KeyArrowUp:
		return SlotArrows, 0, -step, true
	case ebiten.KeyArrowDown:
		return SlotArrows, 0, step, true
	case ebiten.KeyArrowLeft:
		return SlotArrows, -step, 0, true
	case ebiten.KeyArrowRight:
		return SlotArrows, step, 0, true

	case ebiten.KeyW:
		return SlotWASD, 0, -step, true
	case ebiten.KeyS:
		return SlotWASD, 0, step, true
	case ebiten.KeyA:
		return SlotWASD, -step, 0, true
	case ebiten.KeyD:
		return SlotWASD, step, 0, true
	}
	return 0, 0, 0, false
}

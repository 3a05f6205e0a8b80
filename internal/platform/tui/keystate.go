package tui

import "github.com/vovakirdan/skyhop/internal/core"

// heldActions are the actions the game reads as held keys.
var heldActions = []core.Action{core.ActionJump, core.ActionLeft, core.ActionRight}

// keyHold emulates key-up events. Terminals only report presses (and
// auto-repeat), so a key counts as held for holdTicks ticks after its last
// press event. A key held through the terminal's auto-repeat delay (commonly
// about 500ms) is seen as released and pressed again once repeats begin.
type keyHold struct {
	holdTicks int
	remaining map[core.Action]int
}

func newKeyHold(holdTicks int) *keyHold {
	if holdTicks <= 0 {
		holdTicks = 1
	}
	return &keyHold{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int, len(heldActions)),
	}
}

// Press marks an action as held for the next holdTicks ticks.
func (k *keyHold) Press(a core.Action) {
	k.remaining[a] = k.holdTicks
}

// Frame returns this tick's snapshot and ages every held key by one tick.
func (k *keyHold) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range heldActions {
		if k.remaining[a] <= 0 {
			continue
		}
		f.Set(a)
		k.remaining[a]--
	}
	return f
}

// Reset releases every key.
func (k *keyHold) Reset() {
	clear(k.remaining)
}

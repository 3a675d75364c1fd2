package retrospector

import "testing"

func TestSetDebugMode(t *testing.T) {
	t.Cleanup(func() { SetDebugMode(false) })

	SetDebugMode(true)
	if !globalDebug {
		t.Error("globalDebug = false after SetDebugMode(true)")
	}

	// Rejected draws under debug mode only log; they still skip quietly.
	r := NewRenderer(nil, 100, 80)
	r.DrawText("offscreen", Location{DX: -1, DY: 0})

	SetDebugMode(false)
	if globalDebug {
		t.Error("globalDebug = true after SetDebugMode(false)")
	}
}

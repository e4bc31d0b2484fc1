package game

// IntentKind is the closed set of things input can ask for. Raw device
// events are translated into intents and drained once per frame before the
// tick step, so the loop stays the single writer of game state.
type IntentKind int

const (
	IntentTurn IntentKind = iota
	IntentTogglePause
	IntentSpeedUp
	IntentSpeedDown
	IntentToggleMute
	IntentConfirm // start from the menu
	IntentRestart // restart after game over / win
	IntentReload  // hard reset: discard the session, back to the menu
)

type Intent struct {
	Kind IntentKind
	Dir  Direction // IntentTurn only
}

// Apply routes a gameplay intent into the board. Mute and reload are
// environment concerns and are handled by the frame loop, not here; mode
// transitions that touch audio (confirm, restart, pause) are routed by the
// loop too so it can sequence music alongside them.
func (b *Board) Apply(in Intent) {
	switch in.Kind {
	case IntentTurn:
		if b.State == StatePlaying {
			b.Turn(in.Dir)
		}
	case IntentSpeedUp:
		if b.State == StatePlaying || b.State == StatePaused {
			b.AdjustSpeed(1)
		}
	case IntentSpeedDown:
		if b.State == StatePlaying || b.State == StatePaused {
			b.AdjustSpeed(-1)
		}
	}
}

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks previous key/button states for edge-triggered queries.
type Input struct {
	prevKeys  map[glfw.Key]bool
	prevMouse map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:  make(map[glfw.Key]bool),
		prevMouse: make(map[glfw.MouseButton]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// turnKeys maps the direction keys; arrows and WASD are equivalent.
var turnKeys = []struct {
	keys []glfw.Key
	dir  Direction
}{
	{[]glfw.Key{glfw.KeyUp, glfw.KeyW}, DirUp},
	{[]glfw.Key{glfw.KeyDown, glfw.KeyS}, DirDown},
	{[]glfw.Key{glfw.KeyLeft, glfw.KeyA}, DirLeft},
	{[]glfw.Key{glfw.KeyRight, glfw.KeyD}, DirRight},
}

// CollectIntents translates this frame's device events into the closed
// intent set, routed by the current mode. It never touches game state.
func CollectIntents(window *glfw.Window, in *Input, state GameState) []Intent {
	var out []Intent

	if in.JustPressed(window, glfw.KeyM) {
		out = append(out, Intent{Kind: IntentToggleMute})
	}
	if in.JustPressed(window, glfw.KeyF5) {
		out = append(out, Intent{Kind: IntentReload})
	}

	switch state {
	case StateMenu:
		if in.JustPressed(window, glfw.KeySpace) || in.JustPressed(window, glfw.KeyEnter) {
			out = append(out, Intent{Kind: IntentConfirm})
		}
		if in.JustClicked(window, glfw.MouseButtonLeft) {
			cx, cy := window.GetCursorPos()
			bx, by, bw, bh := StartButtonRect()
			if cx >= bx && cx <= bx+bw && cy >= by && cy <= by+bh {
				out = append(out, Intent{Kind: IntentConfirm})
			}
		}

	case StatePlaying, StatePaused:
		if in.JustPressed(window, glfw.KeySpace) {
			out = append(out, Intent{Kind: IntentTogglePause})
		}
		if in.JustPressed(window, glfw.KeyMinus) || in.JustPressed(window, glfw.KeyKPSubtract) {
			out = append(out, Intent{Kind: IntentSpeedDown})
		}
		if in.JustPressed(window, glfw.KeyEqual) || in.JustPressed(window, glfw.KeyKPAdd) {
			out = append(out, Intent{Kind: IntentSpeedUp})
		}
		for _, tk := range turnKeys {
			for _, k := range tk.keys {
				if in.JustPressed(window, k) {
					out = append(out, Intent{Kind: IntentTurn, Dir: tk.dir})
				}
			}
		}

	case StateGameOver, StateWin:
		if in.JustPressed(window, glfw.KeyR) {
			out = append(out, Intent{Kind: IntentRestart})
		}
	}

	return out
}

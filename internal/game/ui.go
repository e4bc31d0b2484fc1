package game

import "fmt"

// StartButtonRect returns the menu Start button in logical window pixels.
// Input hit-testing and rendering both use it, so click and pixels agree.
func StartButtonRect() (x, y, w, h float64) {
	return WindowWidth/2 - 80, WindowHeight/2 - 22, 160, 44
}

// glassPanel is the translucent white panel style used for the HUD and menu
// button.
func glassPanel(x, y, w, h, s float32) Panel {
	return Panel{
		X: x * s, Y: y * s, W: w * s, H: h * s,
		Radius:      12 * s,
		Fill:        [4]float32{1, 1, 1, HudAlpha / 255.0},
		BorderCol:   [4]float32{1, 1, 1, HudBorderAlpha / 255.0},
		BorderWidth: 1 * s,
		Sheen:       70.0 / 255,
	}
}

// RenderHUD draws all text and panel UI for the current mode.
func RenderHUD(r *Renderer, b *Board, fbW, fbH int) {
	s := float32(fbW) / float32(WindowWidth)
	white := Palette.Text
	centered := func(text string, y int, scale float32, col RGB) {
		r.DrawString(text, fbW/2-TextWidth(text, scale)/2, int(float32(y)*s), scale, col)
	}

	switch b.State {
	case StateMenu:
		centered("Snake", WindowHeight/2-120, 4*s, Palette.Snake)

		bx, by, bw, bh := StartButtonRect()
		r.DrawPanel(glassPanel(float32(bx), float32(by), float32(bw), float32(bh), s), fbW, fbH)
		btnScale := 1.5 * s
		btnY := (float32(by) + float32(bh)/2) * s
		r.DrawString("Start", fbW/2-TextWidth("Start", btnScale)/2,
			int(btnY-float32(FontCellH)*btnScale/2), btnScale, white)

		centered("Space/Enter to start", int(by+bh)+12, 1.2*s, white)

	default:
		// HUD panel along the top, then mode overlays.
		r.DrawPanel(glassPanel(8, 8, WindowWidth-16, HudReservedPx-16, s), fbW, fbH)
		hud := fmt.Sprintf("Score: %d   Speed: %d", b.Score, b.Speed)
		if Muted() {
			hud += "   [muted]"
		}
		r.DrawString(hud, int(20*s), int(14*s), 1.3*s, white)
		keys := "arrows/WASD, +/- speed, Space pause, M mute, R restart, Esc quit"
		r.DrawString(keys, int(20*s), int(34*s), 0.85*s, white.Mul(180))

		switch b.State {
		case StatePaused:
			centered("Paused", WindowHeight/2-8, 2*s, white)
		case StateGameOver:
			msg := fmt.Sprintf("Game Over (%s). Score: %d.", b.DeathReason, b.Score)
			centered(msg, WindowHeight/2-20, 1.4*s, Palette.Border.Add(40, 40, 40))
			centered("Press R to restart or Esc to quit.", WindowHeight/2+6, 1.1*s, white)
		case StateWin:
			msg := fmt.Sprintf("You Win! Score: %d.", b.Score)
			centered(msg, WindowHeight/2-20, 1.4*s, Palette.Snake)
			centered("Press R to restart.", WindowHeight/2+6, 1.1*s, white)
		}
	}

	r.FlushText(fbW, fbH)
}

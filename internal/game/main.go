package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Audio is optional: the game stays fully playable without sound.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.GradientBottom.R)/255.0,
		float32(Palette.GradientBottom.G)/255.0,
		float32(Palette.GradientBottom.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Collaborators subscribe to session events; the tick engine never calls
	// them directly.
	bus := NewEventBus()
	bus.Subscribe(EventAte, func(Event) { PlaySound(SoundEat) })
	bus.Subscribe(EventGameOver, func(Event) {
		FadeOutMusic()
		PlaySound(SoundGameOver)
	})
	bus.Subscribe(EventWin, func(Event) { FadeOutMusic() })
	NewRunLog("logs").Attach(bus)

	board := NewBoard(seed, bus)
	input := NewInput()

	// Fixed-timestep accumulator: elapsed real time drains in 1/Speed steps,
	// so slow frames catch up with extra ticks while rendering stays once
	// per frame.
	var acc float64
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.25 {
			dt = 0.25
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		for _, in := range CollectIntents(window, input, board.State) {
			switch in.Kind {
			case IntentToggleMute:
				ToggleMute()
			case IntentReload:
				// Hard reset: discard the session wholesale, back to the menu.
				seed = splitmix64(seed)
				board = NewBoard(seed, bus)
				PauseMusic()
				acc = 0
			case IntentConfirm:
				if board.State == StateMenu {
					PlaySound(SoundMenuSelect)
					board.Start()
					StartMusic()
					acc = 0
				}
			case IntentRestart:
				if board.State.Terminal() {
					board.Start()
					StartMusic()
					acc = 0
				}
			case IntentTogglePause:
				board.TogglePause()
				if board.State == StatePaused {
					PauseMusic()
				} else if board.State == StatePlaying {
					ResumeMusic()
				}
			default:
				board.Apply(in)
			}
		}

		if board.State == StatePlaying {
			acc += dt
			for acc >= 1.0/float64(board.Speed) && board.State == StatePlaying {
				acc -= 1.0 / float64(board.Speed)
				board.Step()
			}
		} else {
			acc = 0
		}

		rend.BeginFrame(fbW, fbH)
		rend.DrawBackground()
		if board.State != StateMenu {
			rend.DrawPlayfieldBorder(fbW, fbH)
			rend.DrawBoard(board, fbW, fbH)
		}
		RenderHUD(rend, board, fbW, fbH)
		window.SwapBuffers()
	}
}

package platform

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Buttons mirrors the handheld control cluster: a four-way pad plus
// two action buttons.
type Buttons struct {
	Left, Right, Up, Down bool
	Primary, Secondary    bool
}

// Input polls SDL events into button state and edge-triggered
// presses.
type Input struct {
	state    Buttons
	pressed  Buttons
	quit     bool
	snapshot bool
}

// NewInput creates an input handler.
func NewInput() *Input {
	return &Input{}
}

// Poll drains the SDL event queue. Returns true when the window was
// closed or Escape pressed.
func (in *Input) Poll() bool {
	in.pressed = Buttons{}
	in.snapshot = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.quit = true

		case *sdl.KeyboardEvent:
			down := e.Type == sdl.KEYDOWN
			edge := down && e.Repeat == 0
			switch e.Keysym.Sym {
			case sdl.K_LEFT:
				in.state.Left = down
				in.pressed.Left = in.pressed.Left || edge
			case sdl.K_RIGHT:
				in.state.Right = down
				in.pressed.Right = in.pressed.Right || edge
			case sdl.K_UP:
				in.state.Up = down
				in.pressed.Up = in.pressed.Up || edge
			case sdl.K_DOWN:
				in.state.Down = down
				in.pressed.Down = in.pressed.Down || edge
			case sdl.K_z, sdl.K_c, sdl.K_n:
				in.state.Primary = down
				in.pressed.Primary = in.pressed.Primary || edge
			case sdl.K_x, sdl.K_v, sdl.K_m:
				in.state.Secondary = down
				in.pressed.Secondary = in.pressed.Secondary || edge
			case sdl.K_F12:
				if edge {
					in.snapshot = true
				}
			case sdl.K_ESCAPE:
				if down {
					in.quit = true
				}
			}
		}
	}

	return in.quit
}

// Held returns the buttons currently held down.
func (in *Input) Held() Buttons { return in.state }

// Pressed returns the buttons that went down since the last Poll.
func (in *Input) Pressed() Buttons { return in.pressed }

// SnapshotRequested reports whether the screenshot key went down since
// the last Poll.
func (in *Input) SnapshotRequested() bool { return in.snapshot }

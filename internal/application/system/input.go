package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the pointer input for one frame
type InputState struct {
	MouseX       int
	MouseY       int
	Pressed      bool // left button held
	JustPressed  bool
	JustReleased bool
	// SaveRecording asks the scene to flush the input recording (F5)
	SaveRecording bool
}

// InputSource yields one InputState per frame.
// ok is false once the source has no more input (e.g. a finished replay).
type InputSource interface {
	Poll() (input InputState, ok bool)
}

// EbitenInput reads live mouse and keyboard input from ebiten
type EbitenInput struct{}

// NewEbitenInput creates a live input source
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll reads the current input state
func (EbitenInput) Poll() (InputState, bool) {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:        mx,
		MouseY:        my,
		Pressed:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SaveRecording: inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}, true
}

// ScriptedInput replays a fixed list of frames, then reports exhaustion
type ScriptedInput struct {
	frames []InputState
	next   int
}

// NewScriptedInput creates a source that yields frames in order
func NewScriptedInput(frames ...InputState) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Poll returns the next scripted frame
func (s *ScriptedInput) Poll() (InputState, bool) {
	if s.next >= len(s.frames) {
		return InputState{}, false
	}
	in := s.frames[s.next]
	s.next++
	return in, true
}

// Push appends frames to the script
func (s *ScriptedInput) Push(frames ...InputState) {
	s.frames = append(s.frames, frames...)
}

// Click returns the press and release frames of a left click at (x, y)
func Click(x, y int) []InputState {
	return []InputState{
		{MouseX: x, MouseY: y, Pressed: true, JustPressed: true},
		{MouseX: x, MouseY: y, JustReleased: true},
	}
}

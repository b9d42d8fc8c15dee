package replay

import "github.com/younwookim/wfy/internal/application/system"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records pointer input for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	P  bool `json:"p,omitempty"`  // Left button held
	JP bool `json:"jp,omitempty"` // JustPressed
	JR bool `json:"jr,omitempty"` // JustReleased
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput converts one frame of live input into its recorded form
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.MouseX,
		MY: in.MouseY,
		P:  in.Pressed,
		JP: in.JustPressed,
		JR: in.JustReleased,
	}
}

// Input converts a recorded frame back into an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		MouseX:       fi.MX,
		MouseY:       fi.MY,
		Pressed:      fi.P,
		JustPressed:  fi.JP,
		JustReleased: fi.JR,
	}
}

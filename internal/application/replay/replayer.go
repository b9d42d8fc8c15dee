package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/wfy/internal/application/system"
)

// Replayer plays back recorded input. It implements system.InputSource.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}

	return &data, nil
}

// Poll returns the input for the current frame and advances
func (r *Replayer) Poll() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Session returns the recorded session id
func (r *Replayer) Session() string {
	return r.data.Session
}

// CreateTestReplayData creates replay data for testing: the cursor rests at
// (mouseX, mouseY) and clicks once at each frame listed in clicks.
func CreateTestReplayData(frames int, mouseX, mouseY int, clicks ...int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Session:   uuid.NewString(),
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}
	for _, c := range clicks {
		if c < 0 || c >= frames {
			continue
		}
		data.Frames[c].P = true
		data.Frames[c].JP = true
		if c+1 < frames {
			data.Frames[c+1].JR = true
		}
	}

	return data
}

package menu

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wfy/internal/application/replay"
	"github.com/younwookim/wfy/internal/application/system"
)

func TestNewRecorder(t *testing.T) {
	r := NewRecorder(SceneName)

	assert.True(t, r.IsRecording())
	assert.Equal(t, 0, r.FrameCount())

	data := r.GetData()
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, SceneName, data.Scene)
	_, err := uuid.Parse(r.Session())
	assert.NoError(t, err)

	assert.NotEqual(t, r.Session(), NewRecorder(SceneName).Session(), "each recording has its own session")
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(SceneName)

	for _, in := range system.Click(400, 250) {
		r.RecordFrame(in)
	}

	require.Equal(t, 2, r.FrameCount())
	frames := r.GetData().Frames
	assert.Equal(t, 0, frames[0].F)
	assert.True(t, frames[0].JP)
	assert.Equal(t, 1, frames[1].F)
	assert.True(t, frames[1].JR)

	r.Stop()
	r.RecordFrame(system.InputState{})
	assert.Equal(t, 2, r.FrameCount(), "stopped recorder ignores frames")
}

func TestRecorder_Save(t *testing.T) {
	dir := t.TempDir()

	empty := NewRecorder(SceneName)
	assert.Error(t, empty.Save(filepath.Join(dir, "empty.json")))

	r := NewRecorder(SceneName)
	r.RecordFrame(system.InputState{MouseX: 1, MouseY: 2})
	path := filepath.Join(dir, "one.json")
	require.NoError(t, r.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 1)
	assert.Equal(t, 1, data.Frames[0].MX)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}

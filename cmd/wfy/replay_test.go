package main

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wfy/internal/application/game"
	"github.com/younwookim/wfy/internal/application/replay"
	"github.com/younwookim/wfy/internal/application/scene/menu"
	"github.com/younwookim/wfy/internal/application/state"
	"github.com/younwookim/wfy/internal/application/system"
	"github.com/younwookim/wfy/internal/infrastructure/config"
)

// newReplayGame builds a headless game driven by data
func newReplayGame(t *testing.T, ctx context.Context, data replay.ReplayData) (*game.Game, *menu.Menu) {
	t.Helper()
	cfg, err := loadConfig("")
	require.NoError(t, err)

	logger := slogt.New(t)
	m := menu.New(menu.Options{
		Config:            cfg,
		Input:             replay.NewReplayer(data),
		ExitWhenExhausted: true,
		Logger:            logger,
	})
	return newGame(ctx, m, cfg, logger), m
}

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"--replay", "r.json", "--headless", "--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "r.json", f.replayPath)
	assert.True(t, f.headless)
	assert.Equal(t, "debug", f.logLevel)

	_, err = parseFlags([]string{"--headless"})
	assert.Error(t, err, "headless needs a replay")

	_, err = parseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestRunHeadless_Idle(t *testing.T) {
	g, m := newReplayGame(t, context.Background(), replay.CreateTestReplayData(120, 400, 250))

	require.NoError(t, runHeadless(context.Background(), g, maxHeadlessFrames))

	assert.True(t, m.Exhausted())
	assert.Equal(t, state.MainMenu, m.Machine().Current())

	res := summarize(m)
	assert.Equal(t, "MainMenu", res.Current)
	assert.Equal(t, "Menu", res.Label)
	assert.Contains(t, res.String(), "previous=-")
}

func TestRunHeadless_ThreeClicks(t *testing.T) {
	g, m := newReplayGame(t, context.Background(), replay.CreateTestReplayData(20, 400, 250, 2, 6, 10))

	require.NoError(t, runHeadless(context.Background(), g, maxHeadlessFrames))

	res := summarize(m)
	assert.Equal(t, "MainMenu", res.Current, "three clicks come back around")
	assert.Equal(t, "Credits", res.Previous)
	assert.Equal(t, "Menu", res.Label)
}

func TestRunHeadless_ClickOutsideDoesNothing(t *testing.T) {
	g, m := newReplayGame(t, context.Background(), replay.CreateTestReplayData(20, 10, 10, 2, 6))

	require.NoError(t, runHeadless(context.Background(), g, maxHeadlessFrames))

	assert.Equal(t, state.MainMenu, m.Machine().Current())
}

func TestReplayDeterminism(t *testing.T) {
	data := replay.CreateTestReplayData(30, 400, 250, 3, 9)

	var results []headlessResult
	for i := 0; i < 3; i++ {
		g, m := newReplayGame(t, context.Background(), data)
		require.NoError(t, runHeadless(context.Background(), g, maxHeadlessFrames))
		results = append(results, summarize(m))
	}

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i], "replay %d should match the first run", i)
	}
	assert.Equal(t, "Credits", results[0].Current)
}

func TestRunHeadless_FrameLimit(t *testing.T) {
	cfg := config.Default()
	logger := slogt.New(t)
	m := menu.New(menu.Options{
		Config: cfg,
		Input:  system.NewScriptedInput(),
		Logger: logger,
	})
	g := newGame(context.Background(), m, cfg, logger)

	err := runHeadless(context.Background(), g, 5)
	assert.ErrorIs(t, err, errFrameLimit)
	assert.Equal(t, 5, g.Frames())
}

func TestRunHeadless_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, _ := newReplayGame(t, ctx, replay.CreateTestReplayData(10, 0, 0))
	cancel()

	err := runHeadless(ctx, g, maxHeadlessFrames)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGame_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, m := newReplayGame(t, ctx, replay.CreateTestReplayData(100, 400, 250))

	require.NoError(t, g.Update())
	cancel()

	assert.ErrorIs(t, g.Update(), ebiten.Termination, "a signal ends the windowed loop")
	assert.Equal(t, 1, m.Frame())
}

func TestLogReplayProgress(t *testing.T) {
	player := replay.NewReplayer(replay.CreateTestReplayData(3, 0, 0))
	_, ok := player.Poll()
	require.True(t, ok)

	assert.NotPanics(t, func() { logReplayProgress(slogt.New(t), player) })
	assert.Equal(t, 1, player.CurrentFrame())
	assert.Equal(t, 3, player.TotalFrames())
}

// Package menu provides the button scene: one centred button that cycles the
// app state MainMenu → InGame → Credits and shows the current state.
package menu

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/application/scene"
	"github.com/younwookim/wfy/internal/application/state"
	"github.com/younwookim/wfy/internal/application/system"
	"github.com/younwookim/wfy/internal/ecs"
	"github.com/younwookim/wfy/internal/infrastructure/assets"
	"github.com/younwookim/wfy/internal/infrastructure/config"
	"github.com/younwookim/wfy/internal/infrastructure/metrics"
)

// SceneName identifies the scene in recordings
const SceneName = "menu"

// Options configures a Menu scene
type Options struct {
	Config *config.AppConfig
	// Face renders the button label. Nil falls back to the debug font.
	Face text.Face
	// Input drives the scene. Nil reads live mouse input.
	Input system.InputSource
	// ExitWhenExhausted ends the game once Input runs dry
	ExitWhenExhausted bool
	// RecordPath enables input recording when not empty
	RecordPath string
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
}

// Menu is the button scene
type Menu struct {
	cfg     *config.AppConfig
	face    text.Face
	input   system.InputSource
	logger  *slog.Logger
	metrics *metrics.Metrics

	world     *ecs.World
	machine   *state.Machine
	materials *assets.Materials
	button    donburi.Entity

	interactionSystem *system.InteractionSystem
	buttonSystem      *system.ButtonSystem
	labelSystem       *system.LabelSystem
	diagnostics       *system.DiagnosticsSystem

	frame      int
	lastInput  system.InputState
	exhausted  bool
	exitOnDone bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Menu scene. The world is populated in OnEnter.
func New(opts Options) *Menu {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	input := opts.Input
	if input == nil {
		input = system.NewEbitenInput()
	}

	materials := assets.NewMaterials()
	visuals := system.NewButtonVisuals(materials,
		cfg.Button.Colors.Normal.Color(),
		cfg.Button.Colors.Hovered.Color(),
		cfg.Button.Colors.Pressed.Color(),
	)

	m := &Menu{
		cfg:               cfg,
		face:              opts.Face,
		input:             input,
		logger:            logger,
		metrics:           opts.Metrics,
		machine:           state.NewMachine(state.MainMenu),
		materials:         materials,
		button:            donburi.Null,
		interactionSystem: system.NewInteractionSystem(),
		buttonSystem:      system.NewButtonSystem(visuals, logger, opts.Metrics),
		labelSystem:       system.NewLabelSystem(cfg.StateLabels()),
		diagnostics:       system.NewDiagnosticsSystem(logger),
		exitOnDone:        opts.ExitWhenExhausted,
		recordFilename:    opts.RecordPath,
	}

	m.machine.OnTransition(func(from, to state.AppState) {
		m.metrics.ObserveTransition(from, to)
		m.logger.Debug("transition applied", "frame", m.frame, "from", from, "to", to)
	})

	if opts.RecordPath != "" {
		m.recorder = NewRecorder(SceneName)
		logger.Info("recording enabled", "path", opts.RecordPath, "session", m.recorder.Session())
	}

	return m
}

// OnEnter spawns the camera, the button and its label (implements scene.Scene)
func (m *Menu) OnEnter() {
	m.world = ecs.NewWorld()
	m.world.SpawnCamera(m.cfg.Window.ClearColor.Color())

	rect := ecs.CenteredRect(m.cfg.Window.Width, m.cfg.Window.Height, m.cfg.Button.Width, m.cfg.Button.Height)
	m.button = m.world.SpawnButton(rect, m.buttonSystem.Visuals().Normal)

	label := ecs.Text{
		Value: m.cfg.Label.Initial,
		Face:  m.face,
		Size:  m.cfg.Label.FontSize,
		Color: m.cfg.Label.Color.Color(),
	}
	if _, err := m.world.SpawnText(m.button, label); err != nil {
		m.logger.Error("failed to spawn button label", "err", err)
	}
}

// OnExit saves the recording, if any (implements scene.Scene)
func (m *Menu) OnExit() {
	if m.recorder != nil && m.recorder.IsRecording() {
		m.saveRecording()
		m.recorder.Stop()
	}
}

// Update runs one frame of the system schedule (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	// State: apply last frame's request before anything reads current
	m.machine.ApplyPending()

	// Input
	input := m.pollInput()
	if m.recorder != nil {
		m.recorder.RecordFrame(input)
		if input.SaveRecording {
			m.saveRecording()
		}
	}

	// Interaction
	m.interactionSystem.Update(m.world, input)

	// Button
	if err := m.buttonSystem.Update(m.world, m.machine); err != nil {
		m.logger.Warn("transition request rejected", "frame", m.frame, "err", err)
	}

	// Label
	if err := m.labelSystem.Update(m.world, m.machine.Current()); err != nil {
		m.logger.Error("label update failed", "frame", m.frame, "err", err)
	}

	// Diagnostics
	m.diagnostics.Update(m.frame, m.machine)

	m.metrics.ObserveFrame()
	m.frame++

	if m.exhausted && m.exitOnDone {
		return nil, ebiten.Termination
	}
	return nil, nil // nil = stay on this scene
}

// pollInput reads the next frame of input. An exhausted source leaves the
// cursor where it was with the button released.
func (m *Menu) pollInput() system.InputState {
	input, ok := m.input.Poll()
	if !ok {
		if !m.exhausted {
			m.logger.Info("input exhausted", "frame", m.frame)
		}
		m.exhausted = true
		input = system.InputState{MouseX: m.lastInput.MouseX, MouseY: m.lastInput.MouseY}
	}
	m.lastInput = input
	return input
}

// saveRecording saves the current recording to file
func (m *Menu) saveRecording() {
	filename := m.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := m.recorder.Save(filename); err != nil {
		m.logger.Error("failed to save recording", "path", filename, "err", err)
		return
	}
	m.logger.Info("recording saved", "path", filename, "frames", m.recorder.FrameCount())
}

// Draw renders the button and its label (implements scene.Scene)
func (m *Menu) Draw(screen *ebiten.Image) {
	if cam, ok := m.world.Camera(); ok {
		screen.Fill(cam.ClearColor)
	}

	m.world.EachButton(func(entry *donburi.Entry) {
		rect := ecs.NodeComponent.Get(entry).Rect
		fill, ok := m.materials.Get(ecs.MaterialComponent.Get(entry).Handle)
		if !ok {
			fill = color.RGBA{255, 0, 255, 255}
		}
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), fill, false)

		txt, err := m.world.FirstChildText(entry)
		if err != nil {
			return
		}
		drawLabel(screen, rect, txt)
	})
}

// drawLabel draws txt centred in rect
func drawLabel(screen *ebiten.Image, rect ecs.Rect, txt *ecs.Text) {
	cx, cy := rect.Center()

	if txt.Face == nil {
		// Debug font glyphs are 6x16
		x := int(cx) - len(txt.Value)*3
		y := int(cy) - 8
		ebitenutil.DebugPrintAt(screen, txt.Value, x, y)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if txt.Color != nil {
		op.ColorScale.ScaleWithColor(txt.Color)
	}
	text.Draw(screen, txt.Value, txt.Face, op)
}

// Machine returns the app state machine
func (m *Menu) Machine() *state.Machine {
	return m.machine
}

// World returns the entity world
func (m *Menu) World() *ecs.World {
	return m.world
}

// Frame returns the number of frames run so far
func (m *Menu) Frame() int {
	return m.frame
}

// Exhausted reports whether the input source has run dry
func (m *Menu) Exhausted() bool {
	return m.exhausted
}

// Recorder returns the input recorder, nil when not recording
func (m *Menu) Recorder() *Recorder {
	return m.recorder
}

// ButtonMaterial returns the colour the button currently shows
func (m *Menu) ButtonMaterial() (color.RGBA, bool) {
	if m.world == nil || !m.world.Valid(m.button) {
		return color.RGBA{}, false
	}
	return m.materials.Get(ecs.MaterialComponent.Get(m.world.Entry(m.button)).Handle)
}

// ButtonLabel returns the button's label text
func (m *Menu) ButtonLabel() (string, error) {
	if m.world == nil || !m.world.Valid(m.button) {
		return "", errors.New("button not spawned")
	}
	txt, err := m.world.FirstChildText(m.world.Entry(m.button))
	if err != nil {
		return "", err
	}
	return txt.Value, nil
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/game"
	"github.com/akovalev/fridayfall/internal/storage"
)

// SnapshotSink receives one read-only game snapshot per tick. The spectator
// feed implements this; a nil sink disables publishing.
type SnapshotSink interface {
	Publish(snap game.Snapshot)
}

// Model is the Bubble Tea model running the cabinet loop.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	keyboard  *KeyboardSource
	extra     []core.Source
	sink      SnapshotSink
	config    core.RuntimeConfig
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:     g,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		keyboard: NewKeyboardSource(0),
		config:   cfg,
	}
}

// AttachSource adds an extra input provider (e.g., a hardware controller).
// Its snapshot is OR-merged with the keyboard's every tick.
func (m *Model) AttachSource(src core.Source) {
	m.extra = append(m.extra, src)
}

// AttachSink sets the per-tick snapshot consumer.
func (m *Model) AttachSink(sink SnapshotSink) {
	m.sink = sink
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyboard.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game renders scaled to
// whatever screen it gets, so a resize never resets the simulation.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick: sample all sources, step the game,
// record finished results, publish the snapshot.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sources := make([]core.Source, 0, 1+len(m.extra))
	sources = append(sources, m.keyboard)
	sources = append(sources, m.extra...)

	snapshot := core.Combine(sources...)
	m.keyboard.Tick()

	result := m.game.Step(snapshot)
	m.gameState = result.State

	if m.store != nil {
		for _, f := range m.game.DrainRoundResults() {
			//nolint:errcheck // Best-effort history, game continues regardless
			m.store.RecordRound(f.Slot, f.Score, m.game.Mode())
		}
	}

	if m.sink != nil {
		m.sink.Publish(m.game.Snapshot())
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".fridayfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, sink SnapshotSink) error {
	model := NewModel(g, store, cfg)
	model.AttachSink(sink)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

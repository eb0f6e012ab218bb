package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f/foliodesk/pkg/config"
	"github.com/f/foliodesk/pkg/console"
	"github.com/f/foliodesk/pkg/contrib"
	"github.com/f/foliodesk/pkg/heatmap"
	"github.com/f/foliodesk/pkg/template"
	"github.com/f/foliodesk/pkg/wm"
)

// frameInterval is the animation step; ~60fps.
const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

// configReloadMsg arrives when the watched config file changes on disk.
type configReloadMsg struct{}

// dataReloadMsg arrives when the contribution data file changes on disk.
type dataReloadMsg struct{}

type model struct {
	cfg      *config.Config
	cfgPath  string
	dataPath string

	reg  *template.Registry
	mgr  *wm.Manager
	con  *console.Console
	data contrib.Data
	heat *heatmap.Renderer

	theme theme

	width  int
	height int

	// consoleWin tracks the window hosting the console so the toggle key
	// raises it instead of spawning a second one.
	consoleWin string

	drag *wm.Window

	// allClosed flips when the last panel closes; the desktop then shows
	// the restart hint until the respawn key fires.
	allClosed bool

	spawnedInitial bool
	ticking        bool
	lastTick       time.Time

	// mdCache holds glamour output keyed by window id; dropped on resize
	// and reload.
	mdCache map[string]string
}

func newModel(cfg *config.Config, cfgPath, dataPath string, reg *template.Registry, data contrib.Data) *model {
	m := &model{
		cfg:      cfg,
		cfgPath:  cfgPath,
		dataPath: dataPath,
		reg:      reg,
		data:     data,
		mdCache:  make(map[string]string),
	}
	m.mgr = wm.NewManager(reg, wm.Config{
		SnapThreshold:    cfg.Desktop.SnapThreshold,
		MaxCenteredWidth: cfg.Desktop.MaxCenteredWidth,
		MobileBreakpoint: cfg.Desktop.MobileBreakpoint,
		Transition:       time.Duration(cfg.Desktop.TransitionMs) * time.Millisecond,
		OnAllClosed:      func() { m.allClosed = true },
	})
	m.con = console.New(m, debugf)
	m.applyTheme(cfg)
	return m
}

func (m *model) applyTheme(cfg *config.Config) {
	m.theme = newTheme(cfg.Theme)
	m.heat = heatmap.NewRenderer(m.theme.heatmapPalette)
	m.mdCache = make(map[string]string)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mgr.Resize(msg.Width, msg.Height)
		m.mdCache = make(map[string]string)
		if !m.spawnedInitial {
			m.spawnedInitial = true
			m.spawnInitial()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick)
		if dt <= 0 || dt > time.Second {
			dt = frameInterval
		}
		m.lastTick = now
		m.mgr.StepTransitions(dt)
		if m.mgr.Animating() {
			return m, tick()
		}
		m.ticking = false
		return m, nil

	case configReloadMsg:
		cfg, err := config.LoadConfig(m.cfgPath)
		if err != nil {
			debugf("config reload failed: %v", err)
			return m, nil
		}
		m.cfg = cfg
		m.applyTheme(cfg)
		debugf("config reloaded from %s", m.cfgPath)
		return m, nil

	case dataReloadMsg:
		data, err := contrib.Load(m.dataPath)
		if err != nil {
			debugf("data reload failed: %v", err)
			return m, nil
		}
		m.data = data
		debugf("contribution data reloaded: %d years", len(data))
		return m, nil

	default:
		// Remaining messages (shell output and friends) belong to the
		// console component.
		return m, m.con.Update(msg)
	}
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case m.cfg.Bindings.Quit, "ctrl+c":
		return m, tea.Quit
	case m.cfg.Bindings.ToggleConsole:
		m.toggleConsole()
		return m, nil
	}

	if m.allClosed && key == m.cfg.Bindings.Respawn {
		m.allClosed = false
		m.spawnInitial()
		return m, nil
	}

	focused := m.focused()
	if focused == nil {
		return m, nil
	}

	if key == "esc" {
		focused.Close()
		return m, m.startTicking()
	}

	if focused.Template.Kind == template.KindConsole {
		return m, m.con.Update(msg)
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		hit := m.mgr.WindowAt(msg.X, msg.Y)
		if hit == nil {
			return m, nil
		}
		switch m.controlAt(hit, msg.X, msg.Y) {
		case controlClose, controlCloseAlt:
			hit.Close()
			return m, m.startTicking()
		case controlCenter:
			hit.Center()
			return m, m.startTicking()
		}
		if m.inTitleBar(hit, msg.Y) {
			hit.StartDrag(msg.X, msg.Y)
			m.drag = hit
			return m, nil
		}
		hit.Focus()
		return m, nil

	case tea.MouseActionMotion:
		if m.drag != nil && m.drag.Dragging() {
			m.drag.DragTo(msg.X, msg.Y)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag != nil && m.drag.Dragging() {
			m.drag.EndDrag(msg.X, msg.Y)
			m.drag = nil
			return m, m.startTicking()
		}
		m.drag = nil
		return m, nil
	}
	return m, nil
}

// startTicking kicks the animation loop if it is idle.
func (m *model) startTicking() tea.Cmd {
	if m.ticking || !m.mgr.Animating() {
		return nil
	}
	m.ticking = true
	m.lastTick = time.Now()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// focused returns the top-most live window, or nil.
func (m *model) focused() *wm.Window {
	var top *wm.Window
	for _, w := range m.mgr.Windows() {
		if w.Closing {
			continue
		}
		if top == nil || w.StackOrder > top.StackOrder {
			top = w
		}
	}
	return top
}

func (m *model) findWindow(id string) *wm.Window {
	for _, w := range m.mgr.Windows() {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// spawnInitial opens the startup panel set: config-declared panels marked
// spawn, or the built-in trio when the config declares none.
func (m *model) spawnInitial() {
	var ids []string
	for _, p := range m.cfg.Panels {
		if p.Spawn {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		ids = []string{"about", "projects", "contributions"}
	}
	for _, id := range ids {
		if _, err := m.mgr.Spawn(id, wm.SpawnOptions{}); err != nil {
			debugf("spawn %s: %v", id, err)
		}
	}
	if m.mgr.Len() > 0 {
		m.allClosed = false
	}
}

// toggleConsole raises the console panel if it is open, spawning it
// otherwise.
func (m *model) toggleConsole() {
	if w := m.findWindow(m.consoleWin); w != nil && !w.Closing {
		w.Focus()
		return
	}
	w, err := m.mgr.Spawn("console", wm.SpawnOptions{})
	if err != nil {
		debugf("spawn console: %v", err)
		return
	}
	m.consoleWin = w.ID
	m.allClosed = false
}

// console.Host implementation: the console drives the desktop through the
// model, never through the manager directly.

func (m *model) Windows() []console.WindowSummary {
	stacked := m.mgr.Stacked()
	out := make([]console.WindowSummary, 0, len(stacked))
	for i := len(stacked) - 1; i >= 0; i-- { // top first
		w := stacked[i]
		out = append(out, console.WindowSummary{
			ID:        w.ID,
			Title:     w.Title,
			Placement: w.Placement.String(),
			Stack:     w.StackOrder,
		})
	}
	return out
}

func (m *model) Spawn(templateID string) (string, error) {
	w, err := m.mgr.Spawn(templateID, wm.SpawnOptions{})
	if err != nil {
		return "", err
	}
	m.allClosed = false
	return w.ID, nil
}

func (m *model) Close(windowID string) error {
	w := m.findWindow(windowID)
	if w == nil {
		return fmt.Errorf("%w: %s", wm.ErrWindowNotManaged, windowID)
	}
	w.Close()
	w.CompleteTransition()
	return nil
}

func (m *model) TemplateIDs() []string {
	return m.reg.IDs()
}

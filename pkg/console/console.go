// Package console implements the desktop's command console panel: a
// scrollback buffer plus a prompt that dispatches a small command set for
// inspecting and driving the desktop (listing windows, spawning and closing
// panels, rendering files, shelling out).
package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxScrollback bounds the line buffer; oldest lines fall off.
const maxScrollback = 500

// WindowSummary is one row of `windows` output.
type WindowSummary struct {
	ID        string
	Title     string
	Placement string
	Stack     int
}

// Host is the desktop surface the console drives. Implemented by the app
// model so the console never holds the window manager directly.
type Host interface {
	Windows() []WindowSummary
	Spawn(templateID string) (string, error)
	Close(windowID string) error
	TemplateIDs() []string
}

// Logf matches the app's debug logger signature.
type Logf func(format string, args ...interface{})

// Console is the panel state. It is a plain component, not a tea.Model:
// the app routes messages to it while the console window is focused.
type Console struct {
	host  Host
	logf  Logf
	input textinput.Model
	vp    viewport.Model
	lines []string

	promptStyle lipgloss.Style
	errStyle    lipgloss.Style

	width  int
	height int
}

// shellOutputMsg carries the captured output of a `!command` run.
type shellOutputMsg struct {
	command string
	output  string
	err     error
}

// New creates a console bound to a host. logf may be nil.
func New(host Host, logf Logf) *Console {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.CharLimit = 256
	ti.Focus()

	c := &Console{
		host:        host,
		logf:        logf,
		input:       ti,
		vp:          viewport.New(0, 0),
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")),
	}
	c.Println("foliodesk console. Type `help` for commands.")
	return c
}

// SetSize resizes the scrollback viewport; the last row is the prompt.
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	vpHeight := height - 1
	if vpHeight < 1 {
		vpHeight = 1
	}
	c.vp.Width = width
	c.vp.Height = vpHeight
	c.input.Width = width - len(c.input.Prompt) - 1
	c.refresh()
}

// Println appends a line (possibly multi-line text) to the scrollback.
func (c *Console) Println(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		c.lines = append(c.lines, line)
	}
	if over := len(c.lines) - maxScrollback; over > 0 {
		c.lines = c.lines[over:]
	}
	c.refresh()
}

// Errorln appends an error line, styled.
func (c *Console) Errorln(text string) {
	c.Println(c.errStyle.Render(text))
}

func (c *Console) refresh() {
	c.vp.SetContent(strings.Join(c.lines, "\n"))
	c.vp.GotoBottom()
}

func (c *Console) debugf(format string, args ...interface{}) {
	if c.logf != nil {
		c.logf(format, args...)
	}
}

// Update handles a message while the console window is focused.
func (c *Console) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(c.input.Value())
			c.input.SetValue("")
			if line == "" {
				return nil
			}
			c.Println(c.promptStyle.Render("> " + line))
			return c.exec(line)
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			c.vp, cmd = c.vp.Update(msg)
			return cmd
		default:
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return cmd
		}
	case shellOutputMsg:
		if msg.err != nil {
			c.Errorln("! " + msg.command + ": " + msg.err.Error())
		}
		if msg.output != "" {
			c.Println(msg.output)
		}
		return nil
	}
	return nil
}

// View renders the scrollback plus the prompt row.
func (c *Console) View() string {
	return c.vp.View() + "\n" + c.input.View()
}

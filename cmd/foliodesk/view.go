package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/f/foliodesk/pkg/colors"
	"github.com/f/foliodesk/pkg/config"
	"github.com/f/foliodesk/pkg/heatmap"
	"github.com/f/foliodesk/pkg/perf"
	"github.com/f/foliodesk/pkg/template"
	"github.com/f/foliodesk/pkg/wm"
)

// theme holds every style derived from the config's colors.
type theme struct {
	background lipgloss.Style
	hint       lipgloss.Style
	status     lipgloss.Style
	preview    lipgloss.Style
	content    lipgloss.Style
	closing    lipgloss.Style

	focused   colors.Chrome
	unfocused colors.Chrome

	heatmapPalette heatmap.Palette
}

func newTheme(t config.Theme) theme {
	focused, unfocused := colors.DeriveChrome(t.Accent)

	palette := heatmap.DefaultPalette
	if len(t.Palette) == 5 {
		copy(palette[:], t.Palette)
	} else if t.HeatmapBase != "" {
		palette = colors.DeriveHeatmapPalette(t.HeatmapBase, "#161b22")
	}

	return theme{
		background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")).Bold(true),
		status:     lipgloss.NewStyle().Foreground(lipgloss.Color("#484f58")),
		preview:    lipgloss.NewStyle().Foreground(lipgloss.Color(focused.Border)).Faint(true),
		content:    lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9")),
		closing:    lipgloss.NewStyle().Faint(true),
		focused:    focused,
		unfocused:  unfocused,

		heatmapPalette: palette,
	}
}

// Control glyph identifiers for title-bar hit testing.
type control int

const (
	controlNone control = iota
	controlClose
	controlCloseAlt
	controlCenter
)

// Control glyphs sit at fixed interior columns of the title bar:
// " × − □  Title". Columns 1, 3 and 5 are the affordances.
const (
	closeGlyphCol    = 1
	closeAltGlyphCol = 3
	centerGlyphCol   = 5
)

// controlAt maps a pointer position to the title-bar control under it.
func (m *model) controlAt(w *wm.Window, x, y int) control {
	if y != w.Frame.Y+1 {
		return controlNone
	}
	ctl := w.Template.Controls
	switch x - (w.Frame.X + 1) {
	case closeGlyphCol:
		if ctl.Close {
			return controlClose
		}
	case closeAltGlyphCol:
		if ctl.CloseAlt {
			return controlCloseAlt
		}
	case centerGlyphCol:
		if ctl.Maximize {
			return controlCenter
		}
	}
	return controlNone
}

// inTitleBar reports whether the row is the window's drag handle: the top
// border or the title row.
func (m *model) inTitleBar(w *wm.Window, y int) bool {
	return y == w.Frame.Y || y == w.Frame.Y+1
}

func (m *model) View() string {
	defer perf.Start("view").Stop()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	view := m.theme.background.Width(m.width).Height(m.height).Render("")

	if m.mgr.Len() == 0 {
		hint := m.theme.hint.Render("all panels closed, press " + m.cfg.Bindings.Respawn + " to restore")
		hw := ansi.PrintableRuneWidth(hint)
		return overlay((m.width-hw)/2, m.height/2, hint, view)
	}

	// Snap-zone previews paint beneath every window.
	for _, w := range m.mgr.Windows() {
		if w.PreviewLeft {
			view = m.overlayPreview(view, wm.SlotLeft)
		}
		if w.PreviewRight {
			view = m.overlayPreview(view, wm.SlotRight)
		}
	}

	top := m.focused()
	for _, w := range m.mgr.Stacked() {
		block := m.renderWindow(w, w == top)
		if block == "" {
			continue
		}
		view = overlay(w.Frame.X, w.Frame.Y, block, view)
	}

	status := m.theme.status.Render(m.cfg.Bindings.ToggleConsole + " console · drag a panel edge-ward to snap · " + m.cfg.Bindings.Quit + " quit")
	return overlay(1, m.height-1, status, view)
}

func (m *model) overlayPreview(view string, slot wm.Slot) string {
	vw, vh := m.mgr.Viewport()
	r := wm.SlotRect(slot, vw, vh)
	if r.Width < 2 || r.Height < 2 {
		return view
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.focused.Border)).
		Faint(true).
		Width(r.Width - 2).
		Height(r.Height - 2).
		Render("")
	return overlay(r.X, r.Y, box, view)
}

func (m *model) renderWindow(w *wm.Window, focused bool) string {
	iw := w.Frame.Width - 2
	ih := w.Frame.Height - 2
	if iw < 1 || ih < 1 {
		return ""
	}

	chrome := m.theme.unfocused
	if focused && !w.Closing {
		chrome = m.theme.focused
	}

	body := m.renderTitleBar(w, iw, chrome)
	if ih > 1 {
		content := m.renderContent(w, iw, ih-1)
		if w.Closing {
			content = m.theme.closing.Render(content)
		}
		body += "\n" + clipBlock(content, iw, ih-1)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(chrome.Border)).
		Render(body)
}

func (m *model) renderTitleBar(w *wm.Window, iw int, chrome colors.Chrome) string {
	ctl := w.Template.Controls
	glyph := func(on bool, g string) string {
		if on {
			return g
		}
		return " "
	}
	bar := " " + glyph(ctl.Close, "×") + " " + glyph(ctl.CloseAlt, "−") + " " + glyph(ctl.Maximize, "□") + "  " + w.Title
	return lipgloss.NewStyle().
		Background(lipgloss.Color(chrome.TitleBg)).
		Foreground(lipgloss.Color(chrome.TitleFg)).
		Width(iw).
		MaxWidth(iw).
		Render(bar)
}

func (m *model) renderContent(w *wm.Window, iw, ih int) string {
	tpl := w.Template
	switch tpl.Kind {
	case template.KindMarkdown:
		return m.renderMarkdown(w, iw)
	case template.KindHeatmap:
		return m.renderHeatmap()
	case template.KindConsole:
		m.con.SetSize(iw-2, ih)
		return m.con.View()
	default:
		return m.theme.content.Width(iw - 2).Render(m.readSource(tpl))
	}
}

func (m *model) renderHeatmap() string {
	years := m.data.Years()
	if len(years) == 0 {
		return m.theme.content.Render("no contribution data yet")
	}

	var parts []string
	for _, year := range years {
		g := heatmap.Build(year, m.data.Counts(year))
		periods := periodsFor(m.cfg.Data.Periods, year)
		if len(periods) == 0 {
			parts = append(parts, m.heat.Render(&g))
			continue
		}
		regions := heatmap.Regions(&g, heatmap.PeriodLabeler(periods))
		block := m.heat.RenderAnnotated(&g, regions)
		if legend := regionLegend(regions); legend != "" {
			block += m.theme.status.Render(legend) + "\n"
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n")
}

// periodsFor filters the configured period spans down to one year.
func periodsFor(specs []config.PeriodSpec, year int) []heatmap.Period {
	var periods []heatmap.Period
	for _, s := range specs {
		if s.Year != year {
			continue
		}
		periods = append(periods, heatmap.Period{Label: s.Label, Start: s.Start, End: s.End})
	}
	return periods
}

// regionLegend summarizes outlined regions: "label (n days)" per region.
func regionLegend(regions []heatmap.Region) string {
	parts := make([]string, 0, len(regions))
	for _, r := range regions {
		parts = append(parts, fmt.Sprintf("%s (%d days)", r.Label, r.Cells))
	}
	return strings.Join(parts, " · ")
}

// renderMarkdown renders a panel's markdown through glamour, caching per
// window. Render failures fall back to the raw text.
func (m *model) renderMarkdown(w *wm.Window, iw int) string {
	if cached, ok := m.mdCache[w.ID]; ok {
		return cached
	}
	raw := m.readSource(w.Template)

	out := raw
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(iw-2),
	)
	if err != nil {
		debugf("glamour init: %v", err)
	} else if rendered, rerr := r.Render(raw); rerr != nil {
		debugf("glamour render %s: %v", w.ID, rerr)
	} else {
		out = strings.TrimRight(rendered, "\n")
	}

	m.mdCache[w.ID] = out
	return out
}

// readSource resolves a template's content: inline text wins, then the file
// path. Read failures surface as the panel body.
func (m *model) readSource(tpl *template.Template) string {
	if tpl.Text != "" {
		return tpl.Text
	}
	if tpl.Path == "" {
		return ""
	}
	raw, err := os.ReadFile(tpl.Path)
	if err != nil {
		debugf("read %s: %v", tpl.Path, err)
		return "could not read " + tpl.Path
	}
	return string(raw)
}

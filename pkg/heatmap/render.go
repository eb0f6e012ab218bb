package heatmap

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds one color per intensity level.
type Palette [5]string

// DefaultPalette is the classic contribution-green ramp.
var DefaultPalette = Palette{
	"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353",
}

const (
	cellGlyph    = "■ "
	paddingGlyph = "  "
)

// Renderer draws grids with a fixed palette. Rendering is a pure function
// of the grid: repeated calls over identical input produce identical
// output.
type Renderer struct {
	styles  [5]lipgloss.Style
	padding lipgloss.Style
	label   lipgloss.Style
}

// NewRenderer builds a renderer over the palette.
func NewRenderer(p Palette) *Renderer {
	r := &Renderer{}
	for i, hex := range p {
		r.styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	r.padding = lipgloss.NewStyle()
	r.label = lipgloss.NewStyle().Bold(true)
	return r
}

// Render draws one grid, weekday rows top to bottom, prefixed by a year
// label line. A zero-column grid yields the empty string.
func (r *Renderer) Render(g *Grid) string {
	if g == nil || g.Cols == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.label.Render(strconv.Itoa(g.Year)))
	b.WriteByte('\n')
	for row := 0; row < Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.Cells[col][row]
			if c.Day < 0 {
				b.WriteString(paddingGlyph)
				continue
			}
			b.WriteString(r.styles[c.Level].Render(cellGlyph))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderAnnotated draws the grid like Render, with every cell on a region
// outline underlined. Output is as deterministic as the region list.
func (r *Renderer) RenderAnnotated(g *Grid, regions []Region) string {
	if g == nil || g.Cols == 0 {
		return ""
	}
	outline := make(map[cellKey]bool)
	for _, reg := range regions {
		for _, b := range reg.Borders {
			outline[cellKey{b.Col, b.Row}] = true
		}
	}

	var b strings.Builder
	b.WriteString(r.label.Render(strconv.Itoa(g.Year)))
	b.WriteByte('\n')
	for row := 0; row < Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.Cells[col][row]
			if c.Day < 0 {
				b.WriteString(paddingGlyph)
				continue
			}
			style := r.styles[c.Level]
			if outline[cellKey{col, row}] {
				style = style.Underline(true)
			}
			b.WriteString(style.Render(cellGlyph))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderYear builds and draws the grid for a year's counts in one step.
func (r *Renderer) RenderYear(year int, counts []int) string {
	g := Build(year, counts)
	return r.Render(&g)
}

// RenderYears draws several years newest-first, separated by blank lines.
func (r *Renderer) RenderYears(years []int, data map[int][]int) string {
	parts := make([]string, 0, len(years))
	for _, year := range years {
		parts = append(parts, r.RenderYear(year, data[year]))
	}
	return strings.Join(parts, "\n")
}

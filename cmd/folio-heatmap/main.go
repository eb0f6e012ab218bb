// folio-heatmap renders the contribution heatmap straight to stdout, for
// shell prompts and pipelines outside the desktop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/f/foliodesk/pkg/config"
	"github.com/f/foliodesk/pkg/contrib"
	"github.com/f/foliodesk/pkg/heatmap"
	"github.com/f/foliodesk/pkg/paths"
)

func main() {
	dataPath := flag.String("data", "", "contribution data file (default: state dir)")
	year := flag.Int("year", 0, "render a single year (default: all years, newest first)")
	flag.Parse()

	// Plain glyphs when piped, ANSI256 on a terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := *dataPath
	if path == "" {
		path = cfg.Data.Contributions
	}
	if path == "" {
		path = paths.StatePath("contributions.json")
	}

	data, err := contrib.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	palette := heatmap.DefaultPalette
	if len(cfg.Theme.Palette) == 5 {
		copy(palette[:], cfg.Theme.Palette)
	}
	r := heatmap.NewRenderer(palette)

	render := func(y int) string {
		g := heatmap.Build(y, data.Counts(y))
		var periods []heatmap.Period
		for _, s := range cfg.Data.Periods {
			if s.Year == y {
				periods = append(periods, heatmap.Period{Label: s.Label, Start: s.Start, End: s.End})
			}
		}
		if len(periods) == 0 {
			return r.Render(&g)
		}
		return r.RenderAnnotated(&g, heatmap.Regions(&g, heatmap.PeriodLabeler(periods)))
	}

	if *year != 0 {
		fmt.Print(render(*year))
		return
	}

	years := data.Years()
	if len(years) == 0 {
		fmt.Fprintln(os.Stderr, "no contribution data at", path)
		os.Exit(1)
	}
	for i, y := range years {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(render(y))
	}
}

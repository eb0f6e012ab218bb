package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"

	"github.com/f/foliodesk/pkg/config"
	"github.com/f/foliodesk/pkg/contrib"
	"github.com/f/foliodesk/pkg/paths"
	"github.com/f/foliodesk/pkg/template"
)

var crashLog *log.Logger
var debugLog *log.Logger

func initCrashLog() {
	f, err := os.OpenFile("/tmp/foliodesk-crash.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		crashLog = log.New(os.Stderr, "[CRASH] ", log.LstdFlags)
		return
	}
	crashLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

// initDebugLog enables the debug log when FOLIO_DEBUG=1.
func initDebugLog() {
	if os.Getenv("FOLIO_DEBUG") != "1" {
		return
	}
	f, err := os.OpenFile("/tmp/foliodesk-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		debugLog = log.New(os.Stderr, "[debug] ", log.LstdFlags|log.Lmicroseconds)
		return
	}
	debugLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

func logCrash(context string, r interface{}) {
	crashLog.Printf("=== CRASH in %s ===", context)
	crashLog.Printf("Panic: %v", r)
	crashLog.Printf("Stack trace:\n%s", debug.Stack())
	crashLog.Printf("=== END CRASH ===\n")
}

// registerBuiltins seeds the panels every install ships with. Config panels
// layer on top and may not shadow these ids.
func registerBuiltins(reg *template.Registry) error {
	builtins := []template.Template{
		{
			ID:    "about",
			Title: "About",
			Kind:  template.KindMarkdown,
			Text:  aboutText,
		},
		{
			ID:    "projects",
			Title: "Projects",
			Kind:  template.KindMarkdown,
			Text:  projectsText,
		},
		{
			ID:        "contributions",
			Title:     "Contributions",
			Kind:      template.KindHeatmap,
			MinWidth:  110,
			MinHeight: 12,
		},
		{
			ID:        "console",
			Title:     "Console",
			Kind:      template.KindConsole,
			MinWidth:  70,
			MinHeight: 18,
		},
	}
	for _, t := range builtins {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func registerConfigPanels(reg *template.Registry, panels []config.Panel) {
	kinds := map[string]template.Kind{
		"text":     template.KindText,
		"markdown": template.KindMarkdown,
		"heatmap":  template.KindHeatmap,
		"console":  template.KindConsole,
	}
	for _, p := range panels {
		kind, ok := kinds[p.Kind]
		if !ok && p.Kind != "" {
			debugf("panel %s: unknown kind %q, treating as text", p.ID, p.Kind)
		}
		err := reg.Register(template.Template{
			ID:        p.ID,
			Title:     p.Title,
			Kind:      kind,
			Text:      p.Text,
			Path:      p.Path,
			MinWidth:  p.MinWidth,
			MinHeight: p.MinHeight,
		})
		if err != nil {
			debugf("panel %s: %v", p.ID, err)
		}
	}
}

// watchFiles sends reload messages when the config or data file changes.
func watchFiles(p *tea.Program, cfgPath, dataPath string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	_ = watcher.Add(cfgPath)
	_ = watcher.Add(dataPath)
	go func() {
		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Write != fsnotify.Write {
					continue
				}
				if event.Name == dataPath {
					p.Send(dataReloadMsg{})
				} else {
					p.Send(configReloadMsg{})
				}
			case <-watcher.Errors:
				return
			}
		}
	}()
}

func main() {
	// Force ANSI256 color mode to avoid partial 24-bit escape code issues
	lipgloss.SetColorProfile(termenv.ANSI256)

	cfgPath := flag.String("config", config.DefaultConfigPath(), "config file path")
	flag.Parse()

	initCrashLog()
	initDebugLog()
	defer func() {
		if r := recover(); r != nil {
			logCrash("main", r)
			os.Exit(1)
		}
	}()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dataPath := cfg.Data.Contributions
	if dataPath == "" {
		dataPath = paths.StatePath("contributions.json")
	}
	data, err := contrib.Load(dataPath)
	if err != nil {
		debugf("contribution data: %v", err)
		data = contrib.Data{}
	}

	reg := template.NewRegistry()
	if err := registerBuiltins(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registerConfigPanels(reg, cfg.Panels)

	m := newModel(cfg, *cfgPath, dataPath, reg, data)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	watchFiles(p, *cfgPath, dataPath)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

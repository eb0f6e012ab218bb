package config

import "github.com/f/foliodesk/pkg/paths"

type Config struct {
	Theme    Theme    `yaml:"theme"`
	Desktop  Desktop  `yaml:"desktop"`
	Data     Data     `yaml:"data"`
	Bindings Bindings `yaml:"bindings"`
	Panels   []Panel  `yaml:"panels"`
}

type Theme struct {
	Accent      string   `yaml:"accent"`       // Window chrome base color (default: #3498db)
	Background  string   `yaml:"background"`   // Desktop surface color (default: #0d1117)
	HeatmapBase string   `yaml:"heatmap_base"` // Base color the 5 intensity levels derive from
	Palette     []string `yaml:"palette"`      // Explicit 5-color override; wins over heatmap_base
}

type Desktop struct {
	SnapThreshold    int `yaml:"snap_threshold"`     // Edge proximity in cells for preview and commit
	MobileBreakpoint int `yaml:"mobile_breakpoint"`  // Viewport width below which snapping is disabled
	MaxCenteredWidth int `yaml:"max_centered_width"` // Cap for CENTERED placement
	TransitionMs     int `yaml:"transition_ms"`      // Snap/center/close animation duration
}

type Data struct {
	Contributions string       `yaml:"contributions"` // Path to the year→counts JSON
	Periods       []PeriodSpec `yaml:"periods"`       // Labeled spans outlined on the heatmap
}

// PeriodSpec marks an inclusive day-of-year span of one year, e.g. a job or
// a project. Days are zero-based.
type PeriodSpec struct {
	Label string `yaml:"label"`
	Year  int    `yaml:"year"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

type Bindings struct {
	ToggleConsole string `yaml:"toggle_console"`
	Respawn       string `yaml:"respawn"`
	Quit          string `yaml:"quit"`
}

// Panel declares a spawnable panel in config. Kind is one of "text",
// "markdown", "heatmap", "console".
type Panel struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Kind      string `yaml:"kind"`
	Text      string `yaml:"text"`
	Path      string `yaml:"path"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	Spawn     bool   `yaml:"spawn"` // Spawn at startup
}

// DefaultConfigPath returns the resolved config.yaml location.
func DefaultConfigPath() string {
	return paths.ConfigPath()
}

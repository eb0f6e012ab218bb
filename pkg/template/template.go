// Package template defines the structural descriptors panels are spawned
// from. A descriptor replaces markup cloning: it names a header (title plus
// implied drag handle), the three control affordances, and a content source.
package template

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a template id has no registration.
	ErrNotFound = errors.New("template not found")
	// ErrExists is returned when registering a duplicate id.
	ErrExists = errors.New("template already registered")
	// ErrInvalid is returned for descriptors missing required regions.
	ErrInvalid = errors.New("invalid template")
)

// Kind selects how a panel's content region is produced.
type Kind int

const (
	// KindText renders the inline text verbatim.
	KindText Kind = iota
	// KindMarkdown renders a markdown document (inline or from a file).
	KindMarkdown
	// KindHeatmap renders the contribution heatmap.
	KindHeatmap
	// KindConsole hosts the debug console.
	KindConsole
)

// Controls are the header affordances every panel carries. All three are on
// by default; a template may hide individual ones.
type Controls struct {
	Close    bool
	CloseAlt bool
	Maximize bool
}

// DefaultControls returns the full affordance set.
func DefaultControls() Controls {
	return Controls{Close: true, CloseAlt: true, Maximize: true}
}

// Template describes one spawnable panel.
type Template struct {
	ID       string
	Title    string
	Kind     Kind
	Controls Controls

	// Text is inline content; Path points at a document on disk. For
	// KindText and KindMarkdown at least one must be set.
	Text string
	Path string

	// Minimum content-driven size, used as the natural size of spawned
	// windows unless the caller overrides it.
	MinWidth  int
	MinHeight int
}

// validate enforces the structural contract: a header region (title) and a
// content region (source appropriate to the kind).
func (t *Template) validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: %s: missing header title", ErrInvalid, t.ID)
	}
	switch t.Kind {
	case KindText, KindMarkdown:
		if t.Text == "" && t.Path == "" {
			return fmt.Errorf("%w: %s: missing content source", ErrInvalid, t.ID)
		}
	}
	return nil
}

// Registry holds spawnable templates by id.
type Registry struct {
	byID  map[string]*Template
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Template)}
}

// Register validates and adds a template. Controls default to the full set
// when left zero. Minimum sizes default to a readable panel.
func (r *Registry) Register(t Template) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, ok := r.byID[t.ID]; ok {
		return fmt.Errorf("%w: %s", ErrExists, t.ID)
	}
	if t.Controls == (Controls{}) {
		t.Controls = DefaultControls()
	}
	if t.MinWidth <= 0 {
		t.MinWidth = 48
	}
	if t.MinHeight <= 0 {
		t.MinHeight = 14
	}
	r.byID[t.ID] = &t
	r.order = append(r.order, t.ID)
	return nil
}

// Lookup returns the template for id or ErrNotFound.
func (r *Registry) Lookup(id string) (*Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, nil
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

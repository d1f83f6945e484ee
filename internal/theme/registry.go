package theme

import "sort"

// Registry holds the available themes and tracks the current one. The
// editor reads the current theme on every refresh; changing it takes
// effect on the next frame.
type Registry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry returns a registry seeded with the builtin themes, with
// classic current.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	r.Register(Classic())
	r.Register(Midnight())
	r.Register(Parchment())
	r.current = r.themes["classic"]
	return r
}

// Register adds a theme, replacing any existing theme with the same
// name. Nil and unnamed themes are ignored.
func (r *Registry) Register(t *Theme) {
	if t == nil || t.Name == "" {
		return
	}
	r.themes[t.Name] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the active theme.
func (r *Registry) Current() *Theme {
	return r.current
}

// SetCurrent switches the active theme by name and reports whether the
// name was known.
func (r *Registry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns all registered theme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

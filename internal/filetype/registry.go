package filetype

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry resolves file types by name or extension. Registration is
// last-writer-wins, so user definitions loaded after the builtins
// override them. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	byName      map[string]*FileType
	byExtension map[string]*FileType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*FileType),
		byExtension: make(map[string]*FileType),
	}
}

// Default returns a registry seeded with the builtin languages.
func Default() *Registry {
	r := NewRegistry()
	for _, ft := range builtins() {
		r.Register(ft)
	}
	return r
}

// Register adds ft to the registry, replacing any earlier type with the
// same name or claiming the same extension. Nil and unnamed types are
// ignored.
func (r *Registry) Register(ft *FileType) {
	if ft == nil || ft.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[strings.ToLower(ft.Name)] = ft
	for _, ext := range ft.Extensions {
		r.byExtension[normalizeExt(ext)] = ft
	}
}

// GetByName finds a type by its display name, case-insensitively.
func (r *Registry) GetByName(name string) (*FileType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.byName[strings.ToLower(name)]
	return ft, ok
}

// GetByExtension finds a type by filename extension. The leading dot is
// optional.
func (r *Registry) GetByExtension(ext string) (*FileType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.byExtension[normalizeExt(ext)]
	return ft, ok
}

// Detect derives the file type for a path from its extension, falling
// back to the plain type when nothing matches.
func (r *Registry) Detect(path string) *FileType {
	if ext := filepath.Ext(path); ext != "" {
		if ft, ok := r.GetByExtension(ext); ok {
			return ft
		}
	}
	return Plain()
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for _, ft := range r.byName {
		names = append(names, ft.Name)
	}
	sort.Strings(names)
	return names
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

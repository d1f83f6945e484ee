// Package plugin runs user Lua scripts in sandboxed interpreters.
//
// Each script gets its own Lua state with only the base, table, string,
// and math libraries opened. Scripts hook editor events through the
// quill module:
//
//	quill.on("save", function(name)
//	  quill.status("wrote " .. name)
//	end)
package plugin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single script call. Long-running Lua that
// never yields is cut off when it expires (best-effort).
const DefaultTimeout = 2 * time.Second

// ErrHostClosed is returned when loading into a closed host.
var ErrHostClosed = errors.New("plugin host is closed")

// Editor is the surface scripts reach back into. Line numbering is
// zero-based on this side; the quill module exposes it one-based.
type Editor interface {
	// Filename returns the path of the open document, or "".
	Filename() string
	// LineCount returns the number of rows in the open document.
	LineCount() int
	// Line returns the text of row i, reporting whether it exists.
	Line(i int) (string, bool)
	// SetStatus replaces the editor's status message.
	SetStatus(msg string)
}

// Script is one loaded Lua file.
type Script struct {
	ID   string
	Name string
	Path string

	state    *lua.LState
	handlers map[string][]*lua.LFunction
}

// Host loads scripts and dispatches editor events to their handlers.
//
// Lua states are not goroutine-safe; Load, Fire, and Close must all be
// called from the same goroutine or be externally synchronized.
type Host struct {
	api     Editor
	timeout time.Duration
	logf    func(script, msg string)
	errf    func(script string, err error)

	mu      sync.Mutex
	scripts []*Script
	closed  bool
}

// Option configures a Host.
type Option func(*Host)

// WithTimeout sets the per-call execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		h.timeout = d
	}
}

// WithLogFunc routes quill.log output. The default discards it.
func WithLogFunc(fn func(script, msg string)) Option {
	return func(h *Host) {
		h.logf = fn
	}
}

// WithErrorFunc receives handler failures during Fire. The default
// discards them.
func WithErrorFunc(fn func(script string, err error)) Option {
	return func(h *Host) {
		h.errf = fn
	}
}

// NewHost creates a plugin host bound to api.
func NewHost(api Editor, opts ...Option) *Host {
	h := &Host{
		api:     api,
		timeout: DefaultTimeout,
		logf:    func(string, string) {},
		errf:    func(string, error) {},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load runs one script file and keeps its handlers.
func (h *Host) Load(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	s := &Script{
		ID:       uuid.NewString(),
		Name:     filepath.Base(path),
		Path:     path,
		handlers: make(map[string][]*lua.LFunction),
	}
	s.state = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.state)
	h.installModule(s)

	if err := h.protect(s, func() error {
		return s.state.DoFile(path)
	}); err != nil {
		s.state.Close()
		return fmt.Errorf("load %s: %w", path, err)
	}

	h.scripts = append(h.scripts, s)
	return nil
}

// LoadDir loads every *.lua script under dir in name order. A missing
// directory is not an error; a script that fails to load is reported
// but does not stop the rest from loading.
func (h *Host) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		if err := h.Load(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Fire calls every handler registered for event, passing arg. Handler
// failures go to the error callback; one script's failure does not stop
// the others.
func (h *Host) Fire(event, arg string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for _, s := range h.scripts {
		for _, fn := range s.handlers[event] {
			err := h.protect(s, func() error {
				return s.state.CallByParam(lua.P{
					Fn:      fn,
					NRet:    0,
					Protect: true,
				}, lua.LString(arg))
			})
			if err != nil {
				h.errf(s.Name, err)
			}
		}
	}
}

// Scripts returns the loaded scripts in load order.
func (h *Host) Scripts() []*Script {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*Script, len(h.scripts))
	copy(out, h.scripts)
	return out
}

// Close releases every script's Lua state. It is safe to call more
// than once.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, s := range h.scripts {
		s.state.Close()
	}
	h.scripts = nil
}

// protect runs fn under the execution timeout with panic recovery.
func (h *Host) protect(s *Script, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	return fn()
}

// openSafeLibraries opens the Lua standard libraries scripts may use.
// io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installModule registers the quill module in the script's state.
func (h *Host) installModule(s *Script) {
	L := s.state
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"on": func(L *lua.LState) int {
			event := L.CheckString(1)
			fn := L.CheckFunction(2)
			s.handlers[event] = append(s.handlers[event], fn)
			return 0
		},
		"log": func(L *lua.LState) int {
			h.logf(s.Name, L.CheckString(1))
			return 0
		},
		"status": func(L *lua.LState) int {
			h.api.SetStatus(L.CheckString(1))
			return 0
		},
		"filename": func(L *lua.LState) int {
			L.Push(lua.LString(h.api.Filename()))
			return 1
		},
		"lines": func(L *lua.LState) int {
			L.Push(lua.LNumber(h.api.LineCount()))
			return 1
		},
		"line": func(L *lua.LState) int {
			text, ok := h.api.Line(L.CheckInt(1) - 1)
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(text))
			return 1
		},
	})
	L.SetGlobal("quill", mod)
}

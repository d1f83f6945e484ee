package app

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/filetype"
	"github.com/dshills/quill/internal/plugin"
	"github.com/dshills/quill/internal/terminal"
	"github.com/dshills/quill/internal/theme"
)

// Application owns every component of a quill session and runs the
// editor loop. Components that fail to initialize are logged and
// skipped; only the terminal itself is required.
type Application struct {
	mu sync.RWMutex

	cfg     config.Config
	cfgPath string

	logger  *Logger
	logFile *os.File
	metrics *Metrics

	filetypes *filetype.Registry
	themes    *theme.Registry

	doc     *document.Document
	screen  *terminal.Screen
	editor  *editor.Editor
	plugins *plugin.Host
	watcher *config.Watcher

	running  atomic.Bool
	shutdown sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath points at the configuration file. Empty means the
	// conventional location under the user config directory.
	ConfigPath string

	// Theme overrides the configured theme by name.
	Theme string

	// LogLevel overrides the configured log level.
	LogLevel string

	// Version is shown in the welcome banner.
	Version string

	// Files are the files to open on startup. quill edits a single
	// buffer, so only the first is opened.
	Files []string
}

// New builds an application: configuration, logging, the file type and
// theme registries, the document, plugins, and the config watcher, in
// that order.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		metrics: NewMetrics(),
	}

	// 1. Configuration. A broken file falls back to the defaults.
	app.cfgPath = opts.ConfigPath
	if app.cfgPath == "" {
		app.cfgPath = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(app.cfgPath)
	app.cfg = cfg

	// 2. Logging. The terminal belongs to tcell while the editor runs,
	// so log lines go to a file or nowhere.
	level := app.cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	app.logger = NullLogger
	if app.cfg.LogFile != "" {
		f, err := OpenLogFile(app.cfg.LogFile)
		if err != nil {
			return nil, NewOperationError("open log file", app.cfg.LogFile, err)
		}
		app.logFile = f
		app.logger = NewLogger(ParseLogLevel(level), f)
	}
	SetLogger(app.logger)
	if cfgErr != nil {
		app.logger.Warn("config: %v", cfgErr)
	}

	// 3. File types: builtins plus user definitions.
	app.filetypes = filetype.Default()
	if err := filetype.LoadDir(app.filetypes, app.cfg.FileTypeDir); err != nil {
		app.logger.Warn("%v", NewComponentError("filetypes", err))
	}

	// 4. Themes: builtins plus user themes, then pick the current one.
	app.themes = theme.NewRegistry()
	if err := theme.LoadDir(app.themes, app.cfg.ThemeDir); err != nil {
		app.logger.Warn("%v", NewComponentError("themes", err))
	}
	if !app.themes.SetCurrent(app.cfg.Theme) {
		app.logger.Warn("unknown theme %q, using %s", app.cfg.Theme, app.themes.Current().Name)
	}
	if opts.Theme != "" && !app.themes.SetCurrent(opts.Theme) {
		app.logger.Warn("unknown theme %q, using %s", opts.Theme, app.themes.Current().Name)
	}

	// 5. The document.
	app.doc = app.openDocument()

	// 6. Plugins.
	app.plugins = plugin.NewHost(&editorAPI{app: app},
		plugin.WithLogFunc(func(script, msg string) {
			app.logger.WithComponent("plugin").Debug("%s: %s", script, msg)
		}),
		plugin.WithErrorFunc(func(script string, err error) {
			app.logger.WithComponent("plugin").Error("%s: %v", script, err)
		}),
	)
	if err := app.plugins.LoadDir(app.cfg.PluginDir); err != nil {
		app.logger.Warn("%v", NewComponentError("plugins", err))
	}

	// 7. Config watcher for live reload.
	if app.cfgPath != "" {
		w, err := config.Watch(app.cfgPath, app.onConfigChange)
		if err != nil {
			app.logger.Warn("%v", NewComponentError("config watcher", err))
		} else {
			app.watcher = w
		}
	}

	app.logger.Info("quill initialized, theme=%s", app.themes.Current().Name)
	return app, nil
}

// openDocument opens the first startup file. A missing file becomes an
// empty document that keeps the name, so the first save creates it.
// Any other failure is logged and editing starts on a scratch buffer.
func (app *Application) openDocument() *document.Document {
	docOpts := []document.Option{document.WithFileTypes(app.filetypes)}
	if app.cfg.Backup {
		docOpts = append(docOpts, document.WithBackup())
	}
	if len(app.opts.Files) == 0 {
		return document.New(docOpts...)
	}
	if extra := app.opts.Files[1:]; len(extra) > 0 {
		app.logger.Warn("quill edits one file at a time, ignoring %v", extra)
	}

	path := app.opts.Files[0]
	timer := StartTimer()
	doc, err := document.Open(path, docOpts...)
	switch {
	case err == nil:
		app.metrics.RecordOpen()
		app.logger.Debug("opened %s (%d rows) in %.1fms", path, doc.Len(), timer.ElapsedMs())
		return doc
	case errors.Is(err, fs.ErrNotExist):
		doc = document.New(docOpts...)
		doc.SetFilename(path)
		app.logger.Info("new file %s", path)
		return doc
	default:
		app.logger.Error("%v", NewOperationError("open", path, err))
		return document.New(docOpts...)
	}
}

// SetScreen attaches the terminal screen. Must be called before Run.
func (app *Application) SetScreen(s *terminal.Screen) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.screen = s
	return nil
}

// Run initializes the screen, starts the editor loop, and blocks until
// the user quits. A clean exit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	screen := app.screen
	app.mu.RUnlock()
	if screen == nil {
		return ErrNoScreen
	}

	if err := screen.Init(); err != nil {
		return NewOperationError("init terminal", "", err)
	}

	ed := editor.New(screen, app.doc,
		editor.WithTheme(app.themes.Current()),
		editor.WithTabWidth(app.cfg.TabWidth),
		editor.WithQuitTimes(app.cfg.QuitTimes),
		editor.WithVersion(app.opts.Version),
		editor.WithSaveHook(app.onSave),
	)
	app.mu.Lock()
	app.editor = ed
	app.mu.Unlock()

	app.fireEvent("open", app.doc.Filename())

	app.logger.Info("editor started, file=%q", app.doc.Filename())
	if err := ed.Run(); err != nil {
		return err
	}
	app.logger.Info("editor stopped")
	return ErrQuit
}

// onSave runs after every successful save.
func (app *Application) onSave(name string) {
	app.metrics.RecordSave()
	app.logger.Info("saved %s", name)
	app.fireEvent("save", name)
}

// fireEvent dispatches one plugin event.
func (app *Application) fireEvent(event, arg string) {
	app.metrics.RecordPluginEvent()
	app.plugins.Fire(event, arg)
}

// onConfigChange applies a reloaded configuration to the running
// editor. It arrives on the watcher goroutine, so editor changes are
// posted onto the event loop.
func (app *Application) onConfigChange(cfg config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload: %v", err)
		return
	}

	app.mu.Lock()
	app.cfg = cfg
	ed, screen := app.editor, app.screen
	app.mu.Unlock()

	app.metrics.RecordReload()
	app.logger.Info("config reloaded, theme=%s tab_width=%d", cfg.Theme, cfg.TabWidth)

	if ed == nil || screen == nil {
		return
	}
	screen.Post(func() {
		ed.SetTabWidth(cfg.TabWidth)
		ed.SetQuitTimes(cfg.QuitTimes)
		if t, ok := app.themes.Get(cfg.Theme); ok {
			ed.SetTheme(t)
		}
		ed.SetStatus("Configuration reloaded")
	})
}

// Shutdown releases everything the application holds: the config
// watcher, the plugin states, the terminal, and the log file. Safe to
// call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("close config watcher: %v", err)
			}
		}
		if app.plugins != nil {
			app.plugins.Close()
		}
		app.mu.RLock()
		screen := app.screen
		app.mu.RUnlock()
		if screen != nil {
			screen.Fini()
		}
		app.logger.Info("quill shut down")
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}

// IsRunning reports whether the editor loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the current configuration.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Document returns the open document.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Editor returns the running editor, or nil before Run.
func (app *Application) Editor() *editor.Editor {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.editor
}

// Themes returns the theme registry.
func (app *Application) Themes() *theme.Registry {
	return app.themes
}

// FileTypes returns the file type registry.
func (app *Application) FileTypes() *filetype.Registry {
	return app.filetypes
}

// Plugins returns the plugin host.
func (app *Application) Plugins() *plugin.Host {
	return app.plugins
}

// Metrics returns the session counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

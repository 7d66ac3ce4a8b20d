// Package app wires the centerview components together and runs the
// terminal event loop.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/centerview/internal/center"
	"github.com/dshills/centerview/internal/command"
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/event"
	"github.com/dshills/centerview/internal/plugin/lua"
	"github.com/dshills/centerview/internal/render"
	"github.com/dshills/centerview/internal/window"
)

// Options configures the application.
type Options struct {
	// Config is the starting configuration, usually from config.Load.
	Config config.Config

	// ConfigPath is the settings file to watch. Empty disables reloading.
	ConfigPath string

	// Overrides is reapplied on every reload so command-line settings
	// keep winning over the file.
	Overrides func(cfg *config.Config)

	// Script overrides the configured Lua init script.
	Script string

	// Screen is the terminal to draw on. Nil opens the real terminal.
	Screen tcell.Screen

	// Log receives component logs. Nil disables logging.
	Log *zap.Logger
}

// App owns every component and the UI state shared between them.
//
// All component calls happen on the goroutine running Run; the config
// watcher hands reloads over through a tcell interrupt.
type App struct {
	opts Options
	log  *zap.Logger

	screen   tcell.Screen
	store    *config.Store
	bus      *event.Bus
	wm       *window.Manager
	ctrl     *center.Controller
	commands *command.Dispatcher
	lua      *lua.State
	renderer *render.Renderer
	library  *library
	keys     keymap

	watcher  *config.Watcher
	storeSub *config.Subscription

	message   string
	running   atomic.Bool
	closeOnce sync.Once
}

// configChanged is posted to the event loop after the store changes.
type configChanged struct {
	cfg config.Config
}

// quitRequest is posted by Quit.
type quitRequest struct{}

// New creates the application. The screen is not initialised until Run.
func New(opts Options) (*App, error) {
	a := &App{
		opts: opts,
		log:  opts.Log,
		keys: newKeymap(defaultBindings),
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if err := a.bootstrap(); err != nil {
		return nil, err
	}
	return a, nil
}

// bootstrap initializes all components in dependency order.
func (a *App) bootstrap() error {
	a.screen = a.opts.Screen
	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
		a.screen = s
	}

	cfg := a.opts.Config
	if err := config.Validate(cfg); err != nil {
		a.log.Warn("configuration has problems", zap.Error(err))
	}
	a.store = config.NewStore(cfg)
	a.bus = event.NewBus()

	a.wm = window.NewManager(a.bus, a.log.Named("window"), 1, 1, cfg.UI.InitialBuffer)
	a.ctrl = center.NewController(a.wm, a.store, center.WithLogger(a.log.Named("center")))

	a.commands = command.NewDispatcher(a.log.Named("command"))
	a.commands.Register(command.NewCenterHandler(a.ctrl, a.wm))
	a.commands.Register(command.NewWindowHandler(a.wm))

	state, err := lua.NewState(lua.WithLogger(a.log.Named("lua")))
	if err != nil {
		return &InitError{Component: "lua", Err: err}
	}
	lua.Install(state, a.commands, a.store)
	a.lua = state

	a.library = newLibrary(defaultBindings)
	a.renderer = render.New(a.screen, a.theme(cfg.UI.MarginColor), a.library.Lines)

	if a.opts.ConfigPath != "" {
		w, err := config.NewWatcher(a.opts.ConfigPath, a.store, a.reload,
			config.WithErrorHandler(func(err error) {
				a.log.Warn("config reload failed", zap.String("path", a.opts.ConfigPath), zap.Error(err))
			}))
		if err != nil {
			// Non-fatal: run without live reload.
			a.log.Warn("config watcher unavailable", zap.Error(err))
		} else {
			a.watcher = w
		}
	}
	a.storeSub = a.store.Subscribe(a.onConfigChanged)
	return nil
}

// reload rebuilds the configuration from disk for the watcher.
func (a *App) reload() (config.Config, error) {
	cfg, _, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if a.opts.Overrides != nil {
		a.opts.Overrides(&cfg)
	}
	return cfg, nil
}

// onConfigChanged runs on the watcher goroutine.
func (a *App) onConfigChanged(cfg config.Config) {
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(configChanged{cfg: cfg})); err != nil {
		a.log.Warn("config change dropped", zap.Error(err))
	}
}

// theme builds the render theme, falling back to the default margin
// color when hex does not parse.
func (a *App) theme(hex string) render.Theme {
	th, err := render.NewTheme(hex)
	if err == nil {
		return th
	}
	a.log.Warn("bad margin color", zap.String("color", hex), zap.Error(err))
	th, _ = render.NewTheme(config.Default().UI.MarginColor)
	return th
}

// Store returns the live configuration.
func (a *App) Store() *config.Store {
	return a.store
}

// Windows returns the window manager.
func (a *App) Windows() *window.Manager {
	return a.wm
}

// Controller returns the centering controller.
func (a *App) Controller() *center.Controller {
	return a.ctrl
}

// Dispatch runs a command and shows its message on the status line.
func (a *App) Dispatch(action command.Action) command.Result {
	res := a.commands.Dispatch(action)
	if res.IsError() {
		a.log.Warn("command failed", zap.String("action", action.Name), zap.Error(res.Error))
	}
	a.message = res.Text()
	return res
}

// Quit asks a running event loop to return. Safe to call from any
// goroutine.
func (a *App) Quit() {
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{})); err != nil {
		a.log.Warn("quit request dropped", zap.Error(err))
	}
}

// Close stops the watcher, removes all margins and releases the terminal.
// It is safe to call more than once.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.storeSub.Unsubscribe()
		if a.watcher != nil {
			err = a.watcher.Stop()
		}
		a.ctrl.Close()
		if cerr := a.lua.Close(); cerr != nil && err == nil {
			err = cerr
		}
		a.screen.Fini()
		_ = a.log.Sync()
	})
	return err
}

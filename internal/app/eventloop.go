package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/centerview/internal/command"
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/render"
	"github.com/dshills/centerview/internal/window"
)

// Run initialises the screen and processes terminal events until the
// user quits. Call Close afterwards.
func (a *App) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.start(); err != nil {
		return err
	}

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return nil
		}
		if err := a.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// start brings the screen up, applies start-up centering and runs the
// init script.
func (a *App) start() error {
	if err := a.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	a.resize(a.screen.Size())

	cfg := a.store.Get()
	if cfg.UI.CenterOnStart {
		a.Dispatch(command.Action{Name: command.ActionToggle})
	}

	script := a.opts.Script
	if script == "" {
		script = cfg.Plugin.InitScript
	}
	if script != "" {
		if err := a.lua.DoFile(script); err != nil {
			// Non-fatal: the session is usable without the script.
			err = NewOperationError("run script", script, err)
			a.log.Warn("init script failed", zap.Error(err))
			a.message = err.Error()
		}
	}

	if a.watcher != nil {
		a.watcher.Start()
	}
	a.draw()
	return nil
}

// handleEvent processes one terminal event and redraws.
// Returns ErrQuit if the application should exit.
func (a *App) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize(ev.Size())
		a.screen.Sync()
	case *tcell.EventKey:
		if err := a.handleKey(ev); err != nil {
			return err
		}
	case *tcell.EventInterrupt:
		if err := a.handleInterrupt(ev); err != nil {
			return err
		}
	default:
		return nil
	}
	a.draw()
	return nil
}

// resize gives the viewports every row except the status line.
func (a *App) resize(width, height int) {
	a.wm.Resize(width, height-1)
}

func (a *App) handleKey(ev *tcell.EventKey) error {
	if isQuit(ev) {
		return ErrQuit
	}
	name, ok := a.keys.lookup(ev)
	if !ok {
		return nil
	}
	a.Dispatch(command.Action{Name: name})
	return nil
}

func (a *App) handleInterrupt(ev *tcell.EventInterrupt) error {
	switch data := ev.Data().(type) {
	case configChanged:
		a.applyConfig(data.cfg)
	case quitRequest:
		return ErrQuit
	}
	return nil
}

// applyConfig reacts to a reloaded configuration: new colors, and every
// centered viewport recomputed with the new parameters.
func (a *App) applyConfig(cfg config.Config) {
	if err := config.Validate(cfg); err != nil {
		a.log.Warn("reloaded configuration has problems", zap.Error(err))
	}
	a.renderer.SetTheme(a.theme(cfg.UI.MarginColor))
	a.ctrl.OnLayoutChanged(window.LayoutChanged{Reason: "config"})
	a.message = "config reloaded"
	a.log.Info("config reloaded")
}

func (a *App) draw() {
	centered := make(map[window.ID]bool)
	for _, id := range a.ctrl.ActiveIDs() {
		centered[id] = true
	}
	a.renderer.Draw(render.View{
		Windows:  a.wm.Windows(),
		Centered: centered,
		Message:  a.message,
	})
}

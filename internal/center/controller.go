package center

import (
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/dshills/centerview/internal/center/geometry"
	"github.com/dshills/centerview/internal/window"
)

// viewportState is what the Controller remembers about one centered
// viewport between activation and deactivation.
type viewportState struct {
	// content is the content identity recorded at activation.
	content string

	// original holds the margins the viewport had before activation.
	original window.Margins

	// leftOffset and rightOffset override the configured margin offsets
	// once adjusted. Nil means use the configuration.
	leftOffset  *int
	rightOffset *int

	unsubscribe func()
}

// Result describes the outcome of recentering one viewport.
type Result struct {
	// Applied reports whether fresh margins were written.
	Applied bool

	// Margins is the applied pair when Applied is true.
	Margins geometry.MarginPair

	// Reason explains why nothing was applied.
	Reason Reason
}

// Controller centers viewports on a Host.
type Controller struct {
	host    Host
	cfg     ConfigSource
	applier *Applier
	log     *zap.Logger

	states map[window.ID]*viewportState
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a Controller with no active viewports.
func NewController(host Host, cfg ConfigSource, opts ...Option) *Controller {
	c := &Controller{
		host:    host,
		cfg:     cfg,
		applier: NewApplier(host),
		log:     zap.NewNop(),
		states:  make(map[window.ID]*viewportState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate enables centering for id: it snapshots the current margins,
// subscribes to layout changes for the viewport, and recenters once.
func (c *Controller) Activate(id window.ID) error {
	if _, ok := c.states[id]; ok {
		err := &AlreadyActiveError{ID: id}
		c.log.Debug("activate ignored", zap.Error(err))
		return err
	}

	original, err := c.applier.Snapshot(id)
	if err != nil {
		return err
	}
	content, err := c.host.Content(id)
	if err != nil {
		return hostError("activate", id, err)
	}

	st := &viewportState{content: content, original: original}
	unsubscribe, err := c.host.SubscribeLayout(id, func(ev window.LayoutChanged) {
		c.handleLayout(id, ev)
	})
	if err != nil {
		return hostError("activate", id, err)
	}
	st.unsubscribe = unsubscribe
	c.states[id] = st

	c.log.Info("centering activated",
		zap.String("viewport", string(id)),
		zap.String("content", content),
		zap.Stringer("original", original))

	res, err := c.recenter(id, st)
	if err != nil {
		return err
	}
	if !res.Applied {
		c.log.Info("centering skipped", zap.String("viewport", string(id)), zap.Stringer("reason", res.Reason))
	}
	return nil
}

// Deactivate restores the viewport's original margins and forgets it.
// Deactivating an inactive viewport does nothing.
func (c *Controller) Deactivate(id window.ID) error {
	st, ok := c.states[id]
	if !ok {
		return nil
	}
	c.drop(id, st)

	err := c.applier.Restore(id, st.original)
	if errors.Is(err, ErrViewportGone) {
		return nil
	}
	if err != nil {
		return err
	}
	c.log.Info("centering deactivated", zap.String("viewport", string(id)))
	return nil
}

// Toggle activates or deactivates id and returns the new state.
func (c *Controller) Toggle(id window.ID) (bool, error) {
	if c.Active(id) {
		return false, c.Deactivate(id)
	}
	if err := c.Activate(id); err != nil {
		return c.Active(id), err
	}
	return true, nil
}

// Active reports whether centering is enabled for id.
func (c *Controller) Active(id window.ID) bool {
	_, ok := c.states[id]
	return ok
}

// Absolute reports whether absolute centering is configured. Margin
// offsets are kept but not applied while it is.
func (c *Controller) Absolute() bool {
	return c.cfg.Centering().UseAbsoluteCentering
}

// ActiveIDs returns the centered viewports in a stable order.
func (c *Controller) ActiveIDs() []window.ID {
	ids := make([]window.ID, 0, len(c.states))
	for id := range c.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// OnLayoutChanged recenters every active viewport the event affects. A
// viewport that has gone away is deactivated and the rest still run.
func (c *Controller) OnLayoutChanged(ev window.LayoutChanged) {
	for _, id := range c.ActiveIDs() {
		if ev.Affects(id) {
			c.handleLayout(id, ev)
		}
	}
}

// Recenter recenters one viewport now. A skipped recenter is not an
// error; the Result carries the reason.
func (c *Controller) Recenter(id window.ID) (Result, error) {
	st, ok := c.states[id]
	if !ok {
		return Result{Reason: ReasonInactive}, nil
	}
	return c.recenter(id, st)
}

// Close deactivates every viewport.
func (c *Controller) Close() {
	for _, id := range c.ActiveIDs() {
		if err := c.Deactivate(id); err != nil {
			c.log.Warn("deactivate on close", zap.String("viewport", string(id)), zap.Error(err))
		}
	}
}

func (c *Controller) handleLayout(id window.ID, ev window.LayoutChanged) {
	st, ok := c.states[id]
	if !ok {
		return
	}
	res, err := c.recenter(id, st)
	if err != nil {
		c.log.Warn("recenter failed",
			zap.String("viewport", string(id)),
			zap.String("cause", ev.Reason),
			zap.Error(err))
		return
	}
	c.log.Debug("recentered",
		zap.String("viewport", string(id)),
		zap.String("cause", ev.Reason),
		zap.Bool("applied", res.Applied),
		zap.Stringer("margins", res.Margins),
		zap.Stringer("reason", res.Reason))
}

// recenter restores the original margins, then applies fresh ones if the
// viewport is eligible. A vanished viewport is dropped.
func (c *Controller) recenter(id window.ID, st *viewportState) (Result, error) {
	res, err := c.restoreAndCompute(id, st)
	if errors.Is(err, ErrViewportGone) {
		c.drop(id, st)
		c.log.Info("viewport gone, centering dropped", zap.String("viewport", string(id)))
	}
	return res, err
}

func (c *Controller) restoreAndCompute(id window.ID, st *viewportState) (Result, error) {
	content, err := c.host.Content(id)
	if err != nil {
		return Result{}, hostError("recenter", id, err)
	}
	if content != st.content {
		return Result{Reason: ReasonContentChanged}, nil
	}

	if err := c.applier.Restore(id, st.original); err != nil {
		return Result{}, err
	}

	cfg := c.cfg.Centering()
	reason, err := c.eligibility(id, cfg)
	if err != nil {
		return Result{}, err
	}
	if reason != ReasonNone {
		return Result{Reason: reason}, nil
	}

	if err := geometry.CheckSizing(cfg); err != nil {
		c.log.Warn("invalid sizing config", zap.String("viewport", string(id)), zap.Error(err))
		return Result{Reason: ReasonInvalidConfig}, nil
	}

	dims, err := c.dimensions(id)
	if err != nil {
		return Result{}, err
	}

	var pair geometry.MarginPair
	if cfg.UseAbsoluteCentering {
		var ok bool
		if pair, ok = geometry.Absolute(dims, cfg); !ok {
			return Result{Reason: ReasonNoRoom}, nil
		}
	} else {
		pair = geometry.Relative(dims.ViewportWidth, cfg, c.adjustment(st, cfg))
	}

	if err := c.applier.Apply(id, pair); err != nil {
		return Result{}, err
	}
	return Result{Applied: true, Margins: pair}, nil
}

// dimensions samples the viewport's current geometry.
func (c *Controller) dimensions(id window.ID) (geometry.Dimensions, error) {
	var (
		d   geometry.Dimensions
		err error
	)
	if d.ViewportWidth, err = c.host.ViewportWidth(id); err != nil {
		return d, hostError("viewport width", id, err)
	}
	if d.FrameWidth, err = c.host.FrameWidth(id); err != nil {
		return d, hostError("frame width", id, err)
	}
	if d.ViewportLeft, err = c.host.ViewportLeft(id); err != nil {
		return d, hostError("viewport left", id, err)
	}
	return d, nil
}

func (c *Controller) drop(id window.ID, st *viewportState) {
	if st.unsubscribe != nil {
		st.unsubscribe()
	}
	delete(c.states, id)
}

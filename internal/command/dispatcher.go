package command

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// NamespaceHandler handles every action in one namespace.
type NamespaceHandler interface {
	// Namespace returns the prefix this handler owns.
	Namespace() string

	// CanHandle returns true if this handler can process the action.
	CanHandle(name string) bool

	// HandleAction executes the action.
	HandleAction(action Action) Result
}

// Dispatcher routes actions to namespace handlers.
type Dispatcher struct {
	mu         sync.RWMutex
	namespaces map[string]NamespaceHandler
	log        *zap.Logger
}

// NewDispatcher creates a dispatcher with no handlers.
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		namespaces: make(map[string]NamespaceHandler),
		log:        log,
	}
}

// Register adds h, replacing any handler for the same namespace.
func (d *Dispatcher) Register(h NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[h.Namespace()] = h
}

// CanDispatch returns true if some handler accepts the action name.
func (d *Dispatcher) CanDispatch(name string) bool {
	h := d.route(Action{Name: name})
	return h != nil
}

// Dispatch runs an action synchronously. A panicking handler yields an
// error result.
func (d *Dispatcher) Dispatch(action Action) (result Result) {
	h := d.route(action)
	if h == nil {
		return Errorf("no handler for action: %s", action.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.log.Error("handler panic",
				zap.String("action", action.Name),
				zap.Any("panic", r),
				zap.ByteString("stack", stack[:n]))
			result = Errorf("handler panic for %s: %v", action.Name, r)
		}
	}()

	result = h.HandleAction(action)
	d.log.Debug("action dispatched",
		zap.String("action", action.Name),
		zap.String("viewport", string(action.Viewport)),
		zap.Stringer("status", result.Status),
		zap.String("message", result.Message),
		zap.Error(result.Error))
	return result
}

func (d *Dispatcher) route(action Action) NamespaceHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.namespaces[action.Namespace()]
	if !ok || !h.CanHandle(action.Name) {
		return nil
	}
	return h
}

package center

import (
	"errors"
	"fmt"

	"github.com/dshills/centerview/internal/center/geometry"
	"github.com/dshills/centerview/internal/window"
)

// Centering errors.
var (
	// ErrAlreadyActive is matched by AlreadyActiveError.
	ErrAlreadyActive = errors.New("centering already active")

	// ErrViewportGone is matched by ViewportGoneError.
	ErrViewportGone = errors.New("viewport gone")

	// ErrNotActive indicates an operation that needs centering to be
	// active on the viewport.
	ErrNotActive = errors.New("centering not active")

	// ErrInvalidConfig is matched by InvalidConfigError.
	ErrInvalidConfig = geometry.ErrInvalidConfig
)

// InvalidConfigError reports sizing that cannot derive a desired width.
type InvalidConfigError = geometry.InvalidConfigError

// AlreadyActiveError is returned by Activate for a viewport that is
// already centered. The existing state is left untouched.
type AlreadyActiveError struct {
	ID window.ID
}

func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("centering already active for viewport %s", e.ID)
}

// Is reports whether target is ErrAlreadyActive.
func (e *AlreadyActiveError) Is(target error) bool {
	return target == ErrAlreadyActive
}

// ViewportGoneError indicates the viewport no longer resolves on the host.
type ViewportGoneError struct {
	ID  window.ID
	Op  string
	Err error
}

func (e *ViewportGoneError) Error() string {
	return fmt.Sprintf("%s: viewport %s gone", e.Op, e.ID)
}

// Unwrap returns the host error.
func (e *ViewportGoneError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrViewportGone.
func (e *ViewportGoneError) Is(target error) bool {
	return target == ErrViewportGone
}

// hostError converts a host lookup failure into a ViewportGoneError.
// Other errors are wrapped with op.
func hostError(op string, id window.ID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, window.ErrNotFound) {
		return &ViewportGoneError{ID: id, Op: op, Err: err}
	}
	return fmt.Errorf("%s %s: %w", op, id, err)
}

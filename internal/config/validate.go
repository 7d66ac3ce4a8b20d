package config

import "errors"

// Validate checks settings for values the centering code will have to
// degrade around. It never rejects a configuration outright: callers log
// the result and keep going.
func Validate(cfg Config) error {
	var errs []error
	c := cfg.Center

	if c.MinSize < 0 {
		errs = append(errs, &ValidationError{Setting: "center.min_size", Value: c.MinSize, Reason: "must not be negative"})
	}
	if c.MaxSize <= 0 && (c.MaxScale <= 0 || c.MaxScale > 1) {
		errs = append(errs, &ValidationError{Setting: "center.max_scale", Value: c.MaxScale, Reason: "must be in (0, 1] when max_size is unset"})
	}
	if c.MinSize > 0 && c.MaxSize > 0 && c.MinSize > c.MaxSize {
		errs = append(errs, &ValidationError{Setting: "center.min_size", Value: c.MinSize, Reason: "greater than max_size"})
	}
	if c.MarginLeftFactor < 0 {
		errs = append(errs, &ValidationError{Setting: "center.margin_left_factor", Value: c.MarginLeftFactor, Reason: "must not be negative"})
	}
	if c.MarginRightFactor < 0 {
		errs = append(errs, &ValidationError{Setting: "center.margin_right_factor", Value: c.MarginRightFactor, Reason: "must not be negative"})
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Setting: "log.level", Value: cfg.Log.Level, Reason: "must be debug, info, warn, or error"})
	}

	return errors.Join(errs...)
}

package ctor

import (
	"github.com/ib-77/coerce/pkg/coerce"
	"github.com/ib-77/coerce/pkg/coerce/fn"
)

type config struct {
	fallback    fn.Fn
	hasFallback bool
	meta        map[string]any
}

// Option configures a Constructor.
type Option func(*config)

// WithFn supplies an already-built composition used when no explicit
// transform step is passed. This is how an existing constructor's fn is
// reused while extending it.
func WithFn(f fn.Fn) Option {
	return func(c *config) {
		c.fallback = f
		c.hasFallback = true
	}
}

// WithMeta sets a metadata entry on the constructor's options bag.
// Metadata is carried through composition and excluded from equality.
func WithMeta(key string, v any) Option {
	return func(c *config) {
		if c.meta == nil {
			c.meta = make(map[string]any)
		}
		c.meta[key] = v
	}
}

// resolveFn picks the transform: an explicit step wins, then the
// fallback composition; with neither, construction fails.
func resolveFn(transform fn.Step, cfg config) (fn.Fn, error) {
	if transform != nil {
		return fn.Wrap(transform)
	}
	if cfg.hasFallback {
		return cfg.fallback, nil
	}
	return fn.Fn{}, coerce.ErrMissingFn
}

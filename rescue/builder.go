package rescue

import (
	"github.com/jonwraymond/faultops/fault"
)

// config collects the pieces of a composed policy.
type config struct {
	handlers  []Handler
	factory   Factory
	finalize  FinalizeFunc
	unchecked bool
}

// Option configures a composed policy.
type Option func(*config)

// WithHandlers registers handlers, in order.
func WithHandlers(handlers ...Handler) Option {
	return func(c *config) {
		c.handlers = append(c.handlers, handlers...)
	}
}

// WithCatch registers a handler claiming the given kinds.
func WithCatch(action Action, tag fault.Tag, more ...fault.Tag) Option {
	return func(c *config) {
		c.handlers = append(c.handlers, NewCatch(action, tag, more...))
	}
}

// WithRemap adds a remap step using the given factory.
func WithRemap(factory Factory) Option {
	return func(c *config) {
		c.factory = factory
	}
}

// WithRemapTo adds a remap step converting failures into the given
// kind, preserving the original as the cause.
func WithRemapTo(tag fault.Tag) Option {
	return WithRemap(To(tag))
}

// WithFinally adds a finalize action.
func WithFinally(finalize FinalizeFunc) Option {
	return func(c *config) {
		c.finalize = finalize
	}
}

// WithUnchecked marks the declared failure surface as unchecked.
func WithUnchecked() Option {
	return func(c *config) {
		c.unchecked = true
	}
}

// New assembles a policy from the given options. The layering is fixed
// at construction: the dispatcher (or remapper, when a factory is
// present) sits innermost, Finally wraps it so the finalize action
// observes the remapped outcome, and Unchecked sits outermost. No other
// ordering is representable.
func New(opts ...Option) Policy {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var p Policy
	if cfg.factory != nil {
		p = NewRemap(cfg.factory, cfg.handlers...)
	} else {
		p = NewTry(cfg.handlers...)
	}

	if cfg.finalize != nil {
		p = NewFinally(p, cfg.finalize)
	}

	if cfg.unchecked {
		p = NewUnchecked(p)
	}

	return p
}

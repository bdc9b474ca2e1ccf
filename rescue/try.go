package rescue

import "context"

// Try is the base dispatch policy. On failure it invokes every handler
// claiming the failure, in registration order, then propagates the
// original failure unchanged. Zero matching handlers is not an error.
type Try struct {
	handlers []Handler
}

// NewTry creates a dispatcher over the given handlers. Registration
// order is preserved and significant.
func NewTry(handlers ...Handler) *Try {
	return &Try{handlers: append([]Handler(nil), handlers...)}
}

// Exec runs op. On success the handlers never run.
func (t *Try) Exec(ctx context.Context, op Op) error {
	if op == nil {
		return ErrNilOp
	}
	err := op(ctx)
	if err == nil {
		return nil
	}
	dispatch(ctx, t.handlers, err)
	return err
}

// dispatch invokes every handler claiming err, in order. All matching
// handlers run, not just the first.
func dispatch(ctx context.Context, handlers []Handler, err error) {
	for _, h := range handlers {
		if h.Supports(err) {
			h.Handle(ctx, err)
		}
	}
}

// claimed reports whether any handler claims err.
func claimed(handlers []Handler, err error) bool {
	for _, h := range handlers {
		if h.Supports(err) {
			return true
		}
	}
	return false
}

// Ensure Try implements Policy
var _ Policy = (*Try)(nil)

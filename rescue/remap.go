package rescue

import (
	"context"

	"github.com/jonwraymond/faultops/fault"
)

// Factory converts an escaping failure into the declared target kind.
// The original must stay retrievable through the returned error's chain,
// and the factory itself must not fail.
type Factory func(err error) error

// To returns a Factory that wraps failures into the given kind, keeping
// the original as the cause.
func To(tag fault.Tag) Factory {
	return func(err error) error {
		return tag.Wrap("", err)
	}
}

// Remap dispatches handlers like Try but converts the failure before
// propagating it.
//
// The two classes diverge on purpose. Fatal-class failures are always
// converted: declaring a factory states the intent to translate them.
// Ambient-class failures are converted only when a handler claims them;
// an unclaimed ambient failure propagates untouched, so a stray runtime
// error is never disguised as a domain failure.
type Remap struct {
	handlers []Handler
	factory  Factory
}

// NewRemap creates a remapping policy over the given handlers. A nil
// factory defaults to the identity, which leaves failures unconverted.
func NewRemap(factory Factory, handlers ...Handler) *Remap {
	if factory == nil {
		factory = func(err error) error { return err }
	}
	return &Remap{
		handlers: append([]Handler(nil), handlers...),
		factory:  factory,
	}
}

// Exec runs op, dispatching and converting any failure per its class.
func (r *Remap) Exec(ctx context.Context, op Op) error {
	if op == nil {
		return ErrNilOp
	}
	err := op(ctx)
	if err == nil {
		return nil
	}
	if fault.ClassOf(err) == fault.ClassAmbient && !claimed(r.handlers, err) {
		return err
	}
	dispatch(ctx, r.handlers, err)
	return r.factory(err)
}

// Ensure Remap implements Policy
var _ Policy = (*Remap)(nil)

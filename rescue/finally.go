package rescue

import "context"

// FinalizeFunc runs after the wrapped policy completes. It is
// best-effort: its error is discarded and a panic inside it is
// recovered, so it can never replace the in-flight outcome.
type FinalizeFunc func(ctx context.Context) error

// Finally wraps a policy so a finalize action runs exactly once per
// execution, on every exit path. Finally is always the outermost
// behavioral layer, so it observes the fully remapped outcome.
type Finally struct {
	inner    Policy
	finalize FinalizeFunc
}

// NewFinally wraps p with a finalize action. A nil p defaults to a bare
// dispatcher with no handlers.
func NewFinally(p Policy, finalize FinalizeFunc) *Finally {
	if p == nil {
		p = NewTry()
	}
	return &Finally{inner: p, finalize: finalize}
}

// Exec delegates to the wrapped policy and runs the finalize action
// before control leaves this layer, whatever the outcome.
func (f *Finally) Exec(ctx context.Context, op Op) error {
	defer f.run(ctx)
	return f.inner.Exec(ctx, op)
}

func (f *Finally) run(ctx context.Context) {
	if f.finalize == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	_ = f.finalize(ctx)
}

// Ensure Finally implements Policy
var _ Policy = (*Finally)(nil)

package rescue

import "context"

// Op is an operation executed under a policy. It runs to completion on
// the caller's goroutine; policies add no timeouts or cancellation of
// their own.
type Op func(ctx context.Context) error

// Policy executes operations under a failure-handling policy.
//
// Contract:
// - Concurrency: implementations hold no per-call mutable state; a
//   policy may be shared across goroutines if the operation and handler
//   actions are themselves safe.
// - Context: ctx is passed through to the operation, handler actions
//   and finalize action unchanged.
// - Errors: the returned error is either the operation's own failure or
//   the remapped failure produced by a Factory, never anything else.
type Policy interface {
	Exec(ctx context.Context, op Op) error
}

// Call executes a value-returning operation under p. On failure the
// zero value of T is returned alongside the policy-processed error.
func Call[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	if fn == nil {
		return out, ErrNilOp
	}
	err := p.Exec(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

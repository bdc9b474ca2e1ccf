// Package rescue provides composable failure-handling policies.
//
// A policy wraps the execution of an operation: handlers claiming the
// escaping failure's kind run their side effects in registration order,
// an optional remap step converts the failure into a declared target
// kind, and an optional finalize step runs on every exit path.
//
// # Policies
//
//   - Try: the base dispatcher. Runs all matching handlers, then
//     propagates the original failure unchanged.
//
//   - Remap: converts failures via a Factory. Fatal-class failures are
//     always converted; ambient-class failures only when a handler
//     claims them, so unrelated runtime errors are never disguised as
//     domain failures.
//
//   - Finally: guarantees a finalize action runs exactly once per
//     execution, whatever the outcome.
//
//   - Unchecked: declaration-surface adapter with no behavior of its
//     own.
//
// # Usage
//
//	var (
//	    ErrServer = fault.Fatal("server")
//	    ErrClient = fault.Fatal("client")
//	    ErrState  = fault.Ambient("illegal_state")
//	)
//
//	policy := rescue.New(
//	    rescue.WithCatch(logAction, ErrServer),
//	    rescue.WithCatch(logAction, ErrClient, ErrState),
//	    rescue.WithRemapTo(fault.Fatal("io")),
//	    rescue.WithFinally(func(ctx context.Context) error {
//	        return conn.Close()
//	    }),
//	)
//
//	err := policy.Exec(ctx, func(ctx context.Context) error {
//	    return doSomething(ctx)
//	})
//
// Policies are immutable once built and are intended to be shared and
// reused across calls. A single Exec keeps all of its state on the call
// stack, so concurrent use is safe whenever the operation and the
// handler actions are.
package rescue

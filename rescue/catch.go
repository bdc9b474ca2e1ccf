package rescue

import (
	"context"

	"github.com/jonwraymond/faultops/fault"
)

// Action is a side-effecting callback run when a handler claims a
// failure. Actions are expected not to fail; an action that panics is
// undefined behavior at this layer.
type Action func(ctx context.Context, err error)

// Handler claims failures of certain kinds and runs a side effect on
// each one that escapes an operation.
//
// Contract:
// - Concurrency: Supports must be pure; Handle may have side effects
//   but must be safe under whatever concurrency the caller applies.
// - Errors: Handle must not fail or panic.
type Handler interface {
	// Supports reports whether this handler claims err.
	Supports(err error) bool

	// Handle runs the side effect. Callers gate on Supports first;
	// Handle does not re-check.
	Handle(ctx context.Context, err error)
}

// Catch is a Handler claiming one or more failure kinds by tag
// membership. Errors carrying no tag are never claimed.
type Catch struct {
	tags   map[fault.Tag]struct{}
	action Action
}

// NewCatch creates a handler claiming the given kinds. At least one tag
// is required; a nil action is treated as a no-op.
func NewCatch(action Action, tag fault.Tag, more ...fault.Tag) *Catch {
	tags := make(map[fault.Tag]struct{}, 1+len(more))
	tags[tag] = struct{}{}
	for _, t := range more {
		tags[t] = struct{}{}
	}
	if action == nil {
		action = func(context.Context, error) {}
	}
	return &Catch{tags: tags, action: action}
}

// Supports reports whether err's kind is in this handler's tag set.
func (c *Catch) Supports(err error) bool {
	tag, ok := fault.TagOf(err)
	if !ok {
		return false
	}
	_, ok = c.tags[tag]
	return ok
}

// Handle runs the action.
func (c *Catch) Handle(ctx context.Context, err error) {
	c.action(ctx, err)
}

// Ensure Catch implements Handler
var _ Handler = (*Catch)(nil)

package rescue

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GroupConfig configures a Group.
type GroupConfig struct {
	// Limit caps the number of operations running at once.
	// Zero or negative means no limit.
	Limit int
}

// Group runs batches of operations under one shared policy. Every
// operation goes through the full policy individually; the first
// policy-processed failure is returned from Exec.
type Group struct {
	policy Policy
	limit  int
}

// NewGroup creates a group over the given policy. A nil policy defaults
// to a bare dispatcher.
func NewGroup(policy Policy, config GroupConfig) *Group {
	if policy == nil {
		policy = NewTry()
	}
	return &Group{policy: policy, limit: config.Limit}
}

// Exec runs all ops concurrently under the shared policy and waits for
// them to finish. The context passed to each op is canceled when any op
// fails, though the policy itself imposes no cancellation of its own.
func (g *Group) Exec(ctx context.Context, ops ...Op) error {
	eg, ctx := errgroup.WithContext(ctx)
	if g.limit > 0 {
		eg.SetLimit(g.limit)
	}
	for _, op := range ops {
		eg.Go(func() error {
			return g.policy.Exec(ctx, op)
		})
	}
	return eg.Wait()
}

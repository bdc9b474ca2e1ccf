package rescue

import "context"

// Unchecked delegates verbatim to the wrapped policy. It changes the
// declared failure surface only: wrapping a policy in Unchecked marks
// its failures as needing no static acknowledgement. It adds no
// runtime behavior.
type Unchecked struct {
	inner Policy
}

// NewUnchecked wraps p. A nil p defaults to a bare dispatcher.
func NewUnchecked(p Policy) *Unchecked {
	if p == nil {
		p = NewTry()
	}
	return &Unchecked{inner: p}
}

// Exec delegates to the wrapped policy unchanged.
func (u *Unchecked) Exec(ctx context.Context, op Op) error {
	return u.inner.Exec(ctx, op)
}

// Ensure Unchecked implements Policy
var _ Policy = (*Unchecked)(nil)

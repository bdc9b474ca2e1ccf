package rescue

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/faultops/fault"
)

var errIO = fault.Fatal("io")

func TestRemap_Success(t *testing.T) {
	var log []string
	p := NewRemap(To(errIO), NewCatch(logAction(&log, "h"), errServer))

	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return nil
	})

	if err != nil {
		t.Errorf("Exec() error = %v", err)
	}
	if len(log) != 0 {
		t.Errorf("handlers ran on success: %v", log)
	}
}

func TestRemap_FatalAlwaysRemapped(t *testing.T) {
	t.Run("matched handler", func(t *testing.T) {
		var log []string
		p := NewRemap(To(errIO), NewCatch(logAction(&log, "h"), errServer))

		original := errServer.New("boom")
		err := p.Exec(context.Background(), func(ctx context.Context) error {
			return original
		})

		if !fault.Has(err, errIO) {
			t.Errorf("Exec() error = %v, want io failure", err)
		}
		if !errors.Is(err, original) {
			t.Error("remapped failure should carry the original as its cause")
		}
		if len(log) != 1 {
			t.Errorf("handler invocations = %d, want 1", len(log))
		}
	})

	t.Run("no matching handler", func(t *testing.T) {
		var log []string
		p := NewRemap(To(errIO), NewCatch(logAction(&log, "h"), errClient))

		original := errServer.New("boom")
		err := p.Exec(context.Background(), func(ctx context.Context) error {
			return original
		})

		// Matching does not gate fatal-class remapping.
		if !fault.Has(err, errIO) {
			t.Errorf("Exec() error = %v, want io failure", err)
		}
		if !errors.Is(err, original) {
			t.Error("remapped failure should carry the original as its cause")
		}
		if len(log) != 0 {
			t.Errorf("non-matching handler ran: %v", log)
		}
	})
}

func TestRemap_AmbientUnmatchedPropagatesUntouched(t *testing.T) {
	var log []string
	p := NewRemap(To(errIO), NewCatch(logAction(&log, "h"), errState))

	original := errNull.New("nil deref")
	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return original
	})

	if err != original {
		t.Errorf("Exec() error = %v, want the identical failure %v", err, original)
	}
	if len(log) != 0 {
		t.Errorf("handler ran for an unclaimed ambient failure: %v", log)
	}
}

func TestRemap_AmbientMatchedIsRemapped(t *testing.T) {
	var log []string
	p := NewRemap(To(errIO), NewCatch(logAction(&log, "h"), errState))

	original := errState.New("bad transition")
	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return original
	})

	if !fault.Has(err, errIO) {
		t.Errorf("Exec() error = %v, want io failure", err)
	}
	if !errors.Is(err, original) {
		t.Error("remapped failure should carry the original as its cause")
	}
	if len(log) != 1 {
		t.Errorf("handler invocations = %d, want 1", len(log))
	}
}

func TestRemap_PlainErrorIsAmbient(t *testing.T) {
	p := NewRemap(To(errIO), NewCatch(nil, errState))

	plain := errors.New("some runtime error")
	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return plain
	})

	if err != plain {
		t.Errorf("Exec() error = %v, want the plain error untouched", err)
	}
}

func TestRemap_AllMatchingHandlersRunInOrder(t *testing.T) {
	var log []string
	p := NewRemap(To(errIO),
		NewCatch(logAction(&log, "first"), errServer),
		NewCatch(logAction(&log, "skip"), errClient),
		NewCatch(logAction(&log, "second"), errServer, errClient),
	)

	_ = p.Exec(context.Background(), func(ctx context.Context) error {
		return errServer.New("boom")
	})

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("handler log = %v, want [first second]", log)
	}
}

func TestRemap_CustomFactory(t *testing.T) {
	wrapped := errors.New("custom wrapper")
	p := NewRemap(func(err error) error {
		return wrapped
	})

	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return errServer.New("boom")
	})

	if err != wrapped {
		t.Errorf("Exec() error = %v, want factory output %v", err, wrapped)
	}
}

func TestRemap_NilFactoryIsIdentity(t *testing.T) {
	p := NewRemap(nil)

	boom := errServer.New("boom")
	err := p.Exec(context.Background(), func(ctx context.Context) error {
		return boom
	})

	if err != boom {
		t.Errorf("Exec() error = %v, want %v", err, boom)
	}
}

func TestRemap_NilOp(t *testing.T) {
	p := NewRemap(To(errIO))

	if err := p.Exec(context.Background(), nil); !errors.Is(err, ErrNilOp) {
		t.Errorf("Exec(nil) error = %v, want ErrNilOp", err)
	}
}

func TestTo_PreservesCause(t *testing.T) {
	original := errServer.New("boom")
	remapped := To(errIO)(original)

	if !fault.Has(remapped, errIO) {
		t.Errorf("factory output = %v, want io failure", remapped)
	}
	if errors.Unwrap(remapped) != original {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(remapped), original)
	}
}

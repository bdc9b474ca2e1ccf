package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestDefine(t *testing.T) {
	tag := Define("server", ClassFatal)

	if tag.Name() != "server" {
		t.Errorf("Name() = %q, want %q", tag.Name(), "server")
	}
	if tag.Class() != ClassFatal {
		t.Errorf("Class() = %v, want ClassFatal", tag.Class())
	}
	if tag.String() != "server" {
		t.Errorf("String() = %q, want %q", tag.String(), "server")
	}
}

func TestFatalAndAmbient(t *testing.T) {
	if got := Fatal("io").Class(); got != ClassFatal {
		t.Errorf("Fatal tag class = %v, want ClassFatal", got)
	}
	if got := Ambient("null_ref").Class(); got != ClassAmbient {
		t.Errorf("Ambient tag class = %v, want ClassAmbient", got)
	}
}

func TestTagIdentity(t *testing.T) {
	a := Define("server", ClassFatal)
	b := Define("server", ClassFatal)
	c := Define("server", ClassAmbient)

	if a != b {
		t.Error("tags with equal name and class should be equal")
	}
	if a == c {
		t.Error("tags differing in class should not be equal")
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassAmbient, "ambient"},
		{ClassFatal, "fatal"},
		{Class(42), "ambient"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestFailure_Error(t *testing.T) {
	tag := Fatal("server")
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *Failure
		want string
	}{
		{"message only", tag.New("boom"), "server: boom"},
		{"empty message with cause", tag.Wrap("", cause), "server: connection reset"},
		{"message and cause", tag.Wrap("request failed", cause), "server: request failed"},
		{"bare", tag.New(""), "server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTag_Errorf(t *testing.T) {
	tag := Ambient("validation")
	err := tag.Errorf("field %q out of range: %d", "age", -1)

	want := `validation: field "age" out of range: -1`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("root")
	tag := Fatal("io")

	if got := tag.Wrap("wrapped", cause).Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if got := tag.New("no cause").Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestFailure_Is(t *testing.T) {
	server := Fatal("server")
	client := Fatal("client")

	err := server.New("boom")

	if !errors.Is(err, server.New("other message")) {
		t.Error("failures sharing a tag should match via errors.Is")
	}
	if errors.Is(err, client.New("boom")) {
		t.Error("failures with different tags should not match")
	}
	if errors.Is(err, errors.New("boom")) {
		t.Error("a plain error should not match a failure")
	}
}

func TestFailure_IsThroughChain(t *testing.T) {
	server := Fatal("server")
	io := Fatal("io")

	original := server.New("boom")
	remapped := io.Wrap("", original)

	if !errors.Is(remapped, original) {
		t.Error("the original failure should be reachable through the remapped chain")
	}

	wrapped := fmt.Errorf("outer: %w", remapped)
	if !errors.Is(wrapped, original) {
		t.Error("fmt.Errorf wrapping should not hide the original")
	}
}

func TestFailure_As(t *testing.T) {
	tag := Ambient("illegal_state")
	err := fmt.Errorf("ctx: %w", tag.New("bad"))

	var f *Failure
	if !errors.As(err, &f) {
		t.Fatal("errors.As should locate the failure")
	}
	if f.Tag() != tag {
		t.Errorf("Tag() = %v, want %v", f.Tag(), tag)
	}
	if f.Class() != ClassAmbient {
		t.Errorf("Class() = %v, want ClassAmbient", f.Class())
	}
}

package fault

import "fmt"

// Class is the propagation category of a failure kind.
type Class int

const (
	// ClassAmbient failures are remapped only when a handler claims them.
	ClassAmbient Class = iota
	// ClassFatal failures are always remapped when a remap policy is present.
	ClassFatal
)

func (c Class) String() string {
	switch c {
	case ClassAmbient:
		return "ambient"
	case ClassFatal:
		return "fatal"
	default:
		return "ambient"
	}
}

// Tag identifies a failure kind. The class is fixed at declaration and is
// a property of the kind, not of individual failures.
//
// Tags are comparable values; two tags are the same kind iff their name
// and class are equal. Declare each kind once, as a package-level variable.
type Tag struct {
	name  string
	class Class
}

// Define declares a failure kind with the given name and class.
func Define(name string, class Class) Tag {
	return Tag{name: name, class: class}
}

// Fatal declares a fatal-class failure kind.
func Fatal(name string) Tag {
	return Define(name, ClassFatal)
}

// Ambient declares an ambient-class failure kind.
func Ambient(name string) Tag {
	return Define(name, ClassAmbient)
}

// Name returns the declared name of the kind.
func (t Tag) Name() string {
	return t.name
}

// Class returns the declared class of the kind.
func (t Tag) Class() Class {
	return t.class
}

func (t Tag) String() string {
	return t.name
}

// New creates a failure of this kind with the given message.
func (t Tag) New(msg string) *Failure {
	return &Failure{tag: t, msg: msg}
}

// Errorf creates a failure of this kind with a formatted message.
func (t Tag) Errorf(format string, args ...any) *Failure {
	return &Failure{tag: t, msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a failure of this kind that carries cause in its chain.
// The cause is retrievable with errors.Unwrap and participates in
// errors.Is and errors.As matching.
func (t Tag) Wrap(msg string, cause error) *Failure {
	return &Failure{tag: t, msg: msg, cause: cause}
}

// Failure is an error carrying a Tag and an optional cause.
// Failures are immutable after construction.
type Failure struct {
	tag   Tag
	msg   string
	cause error
}

// Tag returns the kind of this failure.
func (f *Failure) Tag() Tag {
	return f.tag
}

// Class returns the class declared on this failure's kind.
func (f *Failure) Class() Class {
	return f.tag.class
}

func (f *Failure) Error() string {
	switch {
	case f.msg != "":
		return f.tag.name + ": " + f.msg
	case f.cause != nil:
		return f.tag.name + ": " + f.cause.Error()
	default:
		return f.tag.name
	}
}

// Unwrap returns the wrapped cause, if any.
func (f *Failure) Unwrap() error {
	return f.cause
}

// Is reports whether target is a failure of the same kind. It makes
// errors.Is treat two failures sharing a Tag as equivalent.
func (f *Failure) Is(target error) bool {
	other, ok := target.(*Failure)
	return ok && f.tag == other.tag
}

package fault

import "errors"

// TagOf returns the Tag of the outermost Failure in err's chain.
// The second return is false when no Failure is present.
func TagOf(err error) (Tag, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.tag, true
	}
	return Tag{}, false
}

// ClassOf classifies an error. Errors carrying no Tag are ambient:
// an undeclared failure must never be silently converted into a
// declared one.
func ClassOf(err error) Class {
	if tag, ok := TagOf(err); ok {
		return tag.class
	}
	return ClassAmbient
}

// Has reports whether err's chain contains a failure of the given kind,
// at any depth.
func Has(err error, tag Tag) bool {
	for err != nil {
		if f, ok := err.(*Failure); ok && f.tag == tag {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

package parser

import (
	"errors"
	"fmt"
)

// UnknownElementError reports an element tag with no construction rule.
type UnknownElementError struct {
	Tag string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("no construction rule for element <%s>", e.Tag)
}

// MissingChildError reports a required structural child that is absent.
// Path is the child path (or @attribute) that produced no match.
type MissingChildError struct {
	Tag  string
	Path string
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("element <%s> is missing required child %q", e.Tag, e.Path)
}

// MalformedValueError reports literal text that cannot be interpreted as
// the element's declared kind.
type MalformedValueError struct {
	Tag  string
	Text string
	Err  error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("element <%s> has malformed value %q: %v", e.Tag, e.Text, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// containable reports whether err belongs to the malformed-input taxonomy.
// Anything else reaching the containment boundary is treated as a defect
// and logged even when verbosity is off.
func containable(err error) bool {
	var unknown *UnknownElementError
	var missing *MissingChildError
	var malformed *MalformedValueError
	return errors.As(err, &unknown) || errors.As(err, &missing) || errors.As(err, &malformed)
}

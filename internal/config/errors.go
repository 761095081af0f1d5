package config

import (
	"errors"
	"fmt"
)

// ErrConfig matches every failure to load a configuration directory.
var ErrConfig = errors.New("configuration error")

// SourceKind separates sources that could not be read from sources that were
// read but did not match their schema.
type SourceKind int

const (
	KindUnreadable SourceKind = iota + 1
	KindMalformed
)

func (k SourceKind) String() string {
	switch k {
	case KindUnreadable:
		return "unreadable"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// SourceError reports which source failed to load and why. It matches
// ErrConfig and unwraps to the underlying cause.
type SourceError struct {
	Source string
	Path   string
	Kind   SourceKind
	Err    error
}

func (e *SourceError) Error() string {
	var reason string
	switch e.Kind {
	case KindUnreadable:
		reason = "could not read source"
	case KindMalformed:
		reason = "source does not match the expected schema"
	default:
		reason = "failed"
	}
	return fmt.Sprintf("%s: %s (%s): %s: %v", ErrConfig, e.Source, e.Path, reason, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}

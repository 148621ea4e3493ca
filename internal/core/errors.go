package core

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies why a collection could not be loaded.
type LoadErrorKind int

const (
	// SourceUnavailable means the source does not exist or cannot be reached.
	SourceUnavailable LoadErrorKind = iota + 1
	// SourceUnreadable means the source exists but could not be parsed.
	SourceUnreadable
)

func (k LoadErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case SourceUnreadable:
		return "source unreadable"
	default:
		return "unknown load error"
	}
}

// Sentinels for errors.Is checks against a *LoadError.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSourceUnreadable  = errors.New("source unreadable")
)

// LoadError is returned by Load. It is terminal for the interaction that
// triggered the load.
type LoadError struct {
	Kind   LoadErrorKind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Source)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrSourceUnavailable:
		return e.Kind == SourceUnavailable
	case ErrSourceUnreadable:
		return e.Kind == SourceUnreadable
	}
	return false
}

func unavailable(source string, err error) *LoadError {
	return &LoadError{Kind: SourceUnavailable, Source: source, Err: err}
}

func unreadable(source string, err error) *LoadError {
	return &LoadError{Kind: SourceUnreadable, Source: source, Err: err}
}

// Causes wrapped by LoadError that MapError distinguishes.
var (
	errUnsupportedFormat = errors.New("unsupported format")
	errNoHeader          = errors.New("no header row")
	errSheetNotFound     = errors.New("sheet not found")
)

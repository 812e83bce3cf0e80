package boundary

import (
	stderrors "errors"

	"github.com/plexgraph/graph-bridge/errors"
)

// Category is a host-visible error category.
type Category uint8

const (
	CategoryRuntime Category = iota
	CategoryIO
	CategoryValue
)

var categoryNames = [...]string{
	CategoryRuntime: "runtime error",
	CategoryIO:      "I/O error",
	CategoryValue:   "value error",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Sentinels for errors.Is matching against translated errors.
var (
	ErrRuntime = &HostError{Category: CategoryRuntime}
	ErrIO      = &HostError{Category: CategoryIO}
	ErrValue   = &HostError{Category: CategoryValue}
)

// HostError is what host code sees after translation: a category plus the
// original message, verbatim. The internal kind identity does not leak.
type HostError struct {
	Category Category
	Message  string
	cause    error
}

func (e *HostError) Error() string {
	if e.Message == "" {
		return e.Category.String()
	}
	return e.Category.String() + ": " + e.Message
}

func (e *HostError) Unwrap() error {
	return e.cause
}

// Is matches any HostError of the same category.
func (e *HostError) Is(target error) bool {
	if t, ok := target.(*HostError); ok {
		return e.Category == t.Category
	}
	return false
}

// categories maps every internal error kind to exactly one host category.
// A test asserts the table covers errors.Kinds completely.
var categories = map[errors.Kind]Category{
	errors.KindTypeMismatch:    CategoryValue,
	errors.KindNotSequence:     CategoryValue,
	errors.KindLengthMismatch:  CategoryValue,
	errors.KindInvalidElement:  CategoryValue,
	errors.KindOutOfBounds:     CategoryValue,
	errors.KindOverflow:        CategoryValue,
	errors.KindNoCandidate:     CategoryValue,
	errors.KindValue:           CategoryValue,
	errors.KindIO:              CategoryIO,
	errors.KindSealed:          CategoryRuntime,
	errors.KindDuplicate:       CategoryRuntime,
	errors.KindNotFound:        CategoryRuntime,
	errors.KindViewInvalidated: CategoryRuntime,
	errors.KindReleased:        CategoryRuntime,
	errors.KindInvariant:       CategoryRuntime,
	errors.KindRuntime:         CategoryRuntime,
}

// CategoryOf returns the host category for an internal error kind.
func CategoryOf(kind errors.Kind) Category {
	if c, ok := categories[kind]; ok {
		return c
	}
	return CategoryRuntime
}

// Translate performs the one mandatory rewrite of an internal error into
// its host category. The original message is attached verbatim; nothing is
// lost or truncated. Already-translated errors pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var host *HostError
	if stderrors.As(err, &host) {
		return host
	}

	var internal *errors.Error
	if stderrors.As(err, &internal) {
		return &HostError{
			Category: CategoryOf(internal.Kind),
			Message:  err.Error(),
			cause:    err,
		}
	}

	// Errors from outside the internal taxonomy are generic failures.
	return &HostError{
		Category: CategoryRuntime,
		Message:  err.Error(),
		cause:    err,
	}
}

// Raise produces a generic internal failure carrying msg. It exists for
// the native side (and tests) to signal a runtime failure that will cross
// the boundary through Translate.
func Raise(msg string) error {
	return errors.Runtime(msg)
}

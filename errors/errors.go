package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCheck     Phase = "check"     // convertibility checking
	PhaseConstruct Phase = "construct" // host to native construction
	PhaseToHost    Phase = "tohost"    // native to host conversion
	PhaseView      Phase = "view"      // array view access
	PhaseRegistry  Phase = "registry"  // converter registration/lookup
	PhaseTranslate Phase = "translate" // boundary error translation
	PhaseRuntime   Phase = "runtime"   // native computation
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindNotSequence     Kind = "not_sequence"
	KindLengthMismatch  Kind = "length_mismatch"
	KindInvalidElement  Kind = "invalid_element"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindOverflow        Kind = "overflow"
	KindNoCandidate     Kind = "no_candidate"
	KindSealed          Kind = "sealed"
	KindDuplicate       Kind = "duplicate"
	KindNotFound        Kind = "not_found"
	KindViewInvalidated Kind = "view_invalidated"
	KindReleased        Kind = "released"
	KindInvariant       Kind = "invariant"
	KindIO              Kind = "io"
	KindValue           Kind = "value"
	KindRuntime         Kind = "runtime"
)

// Kinds returns every declared Kind. The boundary translation table is
// checked against this list for completeness.
func Kinds() []Kind {
	return []Kind{
		KindTypeMismatch,
		KindNotSequence,
		KindLengthMismatch,
		KindInvalidElement,
		KindOutOfBounds,
		KindOverflow,
		KindNoCandidate,
		KindSealed,
		KindDuplicate,
		KindNotFound,
		KindViewInvalidated,
		KindReleased,
		KindInvariant,
		KindIO,
		KindValue,
		KindRuntime,
	}
}

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	NativeType string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.NativeType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.NativeType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", native type ")
			b.WriteString(e.NativeType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("native type ")
			b.WriteString(e.NativeType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.NativeType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// NativeType sets the native type name
func (b *Builder) NativeType(t string) *Builder {
	b.err.NativeType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, nativeType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		Path:       path,
		GoType:     goType,
		NativeType: nativeType,
	}
}

// NotSequence reports a host value that is not an ordered finite sequence
func NotSequence(phase Phase, value any, nativeType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindNotSequence,
		NativeType: nativeType,
		GoType:     fmt.Sprintf("%T", value),
		Detail:     "host value is not an ordered sequence",
		Value:      value,
	}
}

// InvalidElement reports a sequence element that fails its scalar check
func InvalidElement(phase Phase, index int, value any, nativeType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindInvalidElement,
		Path:       []string{fmt.Sprintf("elem[%d]", index)},
		GoType:     fmt.Sprintf("%T", value),
		NativeType: nativeType,
		Detail:     fmt.Sprintf("element %d does not coerce to %s", index, nativeType),
		Value:      value,
	}
}

// LengthMismatch reports a sequence of the wrong length
func LengthMismatch(phase Phase, nativeType string, want, got int) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindLengthMismatch,
		NativeType: nativeType,
		Detail:     fmt.Sprintf("expected %d elements, got %d", want, got),
		Value:      got,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindOverflow,
		Path:       path,
		NativeType: targetType,
		Detail:     fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:      value,
	}
}

// NoCandidate reports a host value accepted by no variant candidate
func NoCandidate(value any, variantType string) *Error {
	return &Error{
		Phase:      PhaseCheck,
		Kind:       KindNoCandidate,
		NativeType: variantType,
		GoType:     fmt.Sprintf("%T", value),
		Detail:     "no candidate kind accepts host value",
		Value:      value,
	}
}

// Sealed reports a registration attempted after the registry was sealed
func Sealed(nativeType string) *Error {
	return &Error{
		Phase:      PhaseRegistry,
		Kind:       KindSealed,
		NativeType: nativeType,
		Detail:     "registry is sealed; registration is a boot-phase activity",
	}
}

// Duplicate reports a second registration for the same type identity
func Duplicate(nativeType string) *Error {
	return &Error{
		Phase:      PhaseRegistry,
		Kind:       KindDuplicate,
		NativeType: nativeType,
		Detail:     "converter already registered",
	}
}

// NotFound reports a lookup for an unregistered type identity
func NotFound(nativeType string) *Error {
	return &Error{
		Phase:      PhaseRegistry,
		Kind:       KindNotFound,
		NativeType: nativeType,
		Detail:     "no converter registered",
	}
}

// ViewInvalidated reports access through a stale array view
func ViewInvalidated(nativeType string) *Error {
	return &Error{
		Phase:      PhaseView,
		Kind:       KindViewInvalidated,
		NativeType: nativeType,
		Detail:     "backing vector was modified or released",
	}
}

// Released reports an operation on a released vector
func Released(nativeType string) *Error {
	return &Error{
		Phase:      PhaseRuntime,
		Kind:       KindReleased,
		NativeType: nativeType,
		Detail:     "vector storage was released",
	}
}

// Invariant reports an internal invariant violation, such as an element
// extraction failing after its convertibility check passed
func Invariant(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Runtime creates a generic native computation failure
func Runtime(msg string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindRuntime,
		Detail: msg,
	}
}

// IO creates a native I/O failure
func IO(msg string, cause error) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindIO,
		Detail: msg,
		Cause:  cause,
	}
}

// Value creates a native argument/domain failure
func Value(msg string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindValue,
		Detail: msg,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

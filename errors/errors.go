package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op indicates which engine operation produced the error
type Op string

const (
	OpValidate Op = "validate" // structural check, no output
	OpDecode   Op = "decode"   // bytes to scalar values
	OpEncode   Op = "encode"   // scalar values to bytes
	OpConvert  Op = "convert"  // direct byte-to-byte conversion
)

// Kind categorizes the error; the set mirrors the stable result-code
// contract of the conversion engines. A nil error stands for OK.
type Kind string

const (
	// KindInvalid covers malformed code unit sequences as well as
	// structurally well-formed units carrying an illegal scalar value
	// (overlong encodings, surrogates, values above U+10FFFF).
	KindInvalid Kind = "invalid_sequence"

	// KindTruncated means the input ended in the middle of a code unit
	// sequence. Retrying with more bytes appended resumes cleanly.
	KindTruncated Kind = "truncated"

	// KindParams means the caller passed inconsistent buffer handles.
	// No work was performed and no memory was touched.
	KindParams Kind = "bad_params"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Op       Op
	Kind     Kind
	Encoding string
	Detail   string
	Offset   int // input units successfully processed before the failure
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	if e.Encoding != "" {
		b.WriteByte(' ')
		b.WriteString(e.Encoding)
	}
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind != KindParams {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
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
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Encoding sets the encoding name
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Offset sets the failure offset in input units
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// Invalid creates a malformed-sequence error
func Invalid(op Op, encoding string, offset int, detail string) *Error {
	return &Error{
		Op:       op,
		Kind:     KindInvalid,
		Encoding: encoding,
		Offset:   offset,
		Detail:   detail,
	}
}

// Truncated creates an incomplete-sequence error
func Truncated(op Op, encoding string, offset int) *Error {
	return &Error{
		Op:       op,
		Kind:     KindTruncated,
		Encoding: encoding,
		Offset:   offset,
		Detail:   "input ends inside a code unit sequence",
	}
}

// Params creates a caller-misuse error for inconsistent buffer handles
func Params(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindParams,
		Detail: detail,
	}
}

// NonScalar creates an invalid error for a value outside the scalar range
func NonScalar(op Op, encoding string, offset int, value uint32) *Error {
	return &Error{
		Op:       op,
		Kind:     KindInvalid,
		Encoding: encoding,
		Offset:   offset,
		Detail:   fmt.Sprintf("0x%X is not a Unicode scalar value", value),
	}
}

// IsInvalid reports whether err carries the invalid_sequence result code
func IsInvalid(err error) bool {
	return hasKind(err, KindInvalid)
}

// IsTruncated reports whether err carries the truncated result code
func IsTruncated(err error) bool {
	return hasKind(err, KindTruncated)
}

// IsParams reports whether err carries the bad_params result code
func IsParams(err error) bool {
	return hasKind(err, KindParams)
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Package errors provides structured error types for the utf-conv library.
//
// Errors are categorized by Op (the engine operation that failed) and Kind
// (the stable result-code taxonomy). The Error type includes the encoding
// name, the offset of the failure in input units, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpDecode, errors.KindInvalid).
//		Encoding("UTF-16LE").
//		Offset(4).
//		Detail("unpaired high surrogate").
//		Build()
//
// Or use the convenience constructors for common patterns:
//
//	err := errors.Invalid(errors.OpDecode, "UTF-8", 2, "overlong encoding")
//	err := errors.Truncated(errors.OpValidate, "UTF-32BE", 8)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Kind of any error (wrapped or not) can be tested with the IsInvalid,
// IsTruncated and IsParams predicates.
package errors

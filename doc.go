// Package utfconv converts text between the five dominant Unicode transfer
// encodings and validates their conformance to the scalar-value model.
//
// Supported encodings: UTF-8, UTF-16LE, UTF-16BE, UTF-32LE, UTF-32BE.
//
// # Data Flow
//
//	bytes ── Decode ──> scalar values ── Encode ──> bytes
//	           │                                      ▲
//	           └────────────── Convert ───────────────┘
//
// Every engine is a pure function over its input slice: decoding turns bytes
// into Unicode scalar values, encoding turns scalar values back into bytes,
// Convert composes the two without materializing the intermediate sequence,
// and Validate checks conformance without producing output.
//
// # Key Types
//
//	Encoding  - tag selecting one of the five encodings
//	Sink      - generic appendable output target (one code unit at a time)
//	Buffer    - caller-owned growable output region managed by the engine
//
// # Calling Conventions
//
// Each operation comes in two forms. The sink form streams output units into
// any Sink implementation and never allocates:
//
//	var out utfconv.SliceSink[uint32]
//	consumed, written, err := utfconv.UTF8.Decode(data, &out)
//
// The buffer form appends into a caller-held Buffer whose capacity the
// engine grows as needed; the buffer (and its capacity) survives across
// calls so repeated conversions stop reallocating:
//
//	var buf utfconv.Buffer[byte]
//	consumed, written, err := utfconv.ConvertBuffer(utfconv.UTF8, utfconv.UTF16LE, data, &buf)
//	result := buf.Data[:written]
//
// # Progress and Errors
//
// All operations return consumed (input units fully processed) and written
// (output units emitted). On error these report the last fully valid
// boundary: no output is ever produced for the erroring unit, and consumed
// equals the input length exactly when err is nil. Errors are structured
// values from the errors subpackage; test their result code with
// errors.IsInvalid, errors.IsTruncated and errors.IsParams. A truncated
// input can be resumed by re-invoking with more bytes appended after the
// consumed offset.
//
// # Conformance
//
// Decoders enforce the acceptance rules of each encoding: overlong UTF-8
// encodings are rejected, surrogate pairing is mandatory and ordered, and
// every produced or consumed value must be a legal scalar value (not a
// surrogate, not above U+10FFFF). A decode that returns nil error never
// yields an illegal scalar value.
//
// # Thread Safety
//
// The engines hold no state between calls. Any operation may run
// concurrently from independent goroutines as long as output targets are
// not shared; a Buffer must not be mutated by the caller mid-call.
package utfconv

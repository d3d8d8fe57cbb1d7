package utfconv

import "github.com/flbdx/utf-conv/errors"

// Validate checks that p conforms to the encoding without producing output.
// consumed counts input bytes, scalars counts the scalar values the valid
// prefix encodes; both agree exactly with what Decode would report for the
// same input.
func (e Encoding) Validate(p []byte) (consumed, scalars int, err error) {
	consumed, scalars, st := e.scan(p, nil)
	return consumed, scalars, e.dataErr(errors.OpValidate, st, consumed)
}

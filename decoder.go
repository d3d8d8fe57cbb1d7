package utfconv

import (
	"encoding/binary"

	"github.com/flbdx/utf-conv/errors"
)

// utf8MinByLen[n] is the smallest scalar value a well-formed n-byte UTF-8
// sequence may carry; anything below is an overlong encoding.
var utf8MinByLen = [5]uint32{0, 0, 0x80, 0x800, 0x10000}

// decodeUTF8One decodes the next scalar value from a UTF-8 stream.
// Truncation is only reported when every byte present so far is acceptable;
// a wrong continuation byte is invalid regardless of remaining length.
func decodeUTF8One(p []byte) (uint32, int, status) {
	if len(p) == 0 {
		return 0, 0, statusTruncated
	}
	b0 := p[0]
	var v uint32
	var need int
	switch {
	case b0 < 0x80:
		return uint32(b0), 1, statusOK
	case b0 < 0xC0: // continuation byte in lead position
		return 0, 0, statusInvalid
	case b0 < 0xE0:
		v, need = uint32(b0&0x1F), 2
	case b0 < 0xF0:
		v, need = uint32(b0&0x0F), 3
	case b0 < 0xF8:
		v, need = uint32(b0&0x07), 4
	default: // 11111xxx
		return 0, 0, statusInvalid
	}
	for i := 1; i < need; i++ {
		if i >= len(p) {
			return 0, 0, statusTruncated
		}
		c := p[i]
		if c&0xC0 != 0x80 {
			return 0, 0, statusInvalid
		}
		v = v<<6 | uint32(c&0x3F)
	}
	if v < utf8MinByLen[need] { // overlong
		return 0, 0, statusInvalid
	}
	if !IsScalarValue(v) {
		return 0, 0, statusInvalid
	}
	return v, need, statusOK
}

// decodeUTF16One decodes the next scalar value from a UTF-16 stream in the
// given byte order, pairing surrogates per the standard formula.
func decodeUTF16One(p []byte, order binary.ByteOrder) (uint32, int, status) {
	if len(p) < 2 {
		return 0, 0, statusTruncated
	}
	u := uint32(order.Uint16(p))
	if u < surrogateMin || u > surrogateMax {
		return u, 2, statusOK
	}
	if u >= 0xDC00 { // lone low surrogate
		return 0, 0, statusInvalid
	}
	if len(p) < 4 {
		return 0, 0, statusTruncated
	}
	lo := uint32(order.Uint16(p[2:]))
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, 0, statusInvalid
	}
	return 0x10000 + ((u-surrogateMin)<<10 | (lo - 0xDC00)), 4, statusOK
}

func decodeUTF32One(p []byte, order binary.ByteOrder) (uint32, int, status) {
	if len(p) < 4 {
		return 0, 0, statusTruncated
	}
	v := order.Uint32(p)
	if !IsScalarValue(v) {
		return 0, 0, statusInvalid
	}
	return v, 4, statusOK
}

// scan drives a decode engine over p, calling emit for each scalar value
// (emit may be nil for validation). It stops at the first error, leaving
// consumed at the last fully valid boundary.
func (e Encoding) scan(p []byte, emit func(uint32)) (consumed, count int, st status) {
	decodeOne := e.desc().decodeOne
	for consumed < len(p) {
		v, n, st := decodeOne(p[consumed:])
		if st != statusOK {
			return consumed, count, st
		}
		if emit != nil {
			emit(v)
		}
		consumed += n
		count++
	}
	return consumed, count, statusOK
}

// dataErr maps an engine status to a structured error at the given offset.
func (e Encoding) dataErr(op errors.Op, st status, offset int) error {
	switch st {
	case statusOK:
		return nil
	case statusTruncated:
		return errors.Truncated(op, e.String(), offset)
	default:
		return errors.Invalid(op, e.String(), offset, "malformed or non-scalar code unit sequence")
	}
}

// Decode converts the byte stream p into scalar values appended to sink.
// consumed counts input bytes, written counts scalar values. On error both
// report the successfully processed prefix; the erroring sequence produces
// no output.
func (e Encoding) Decode(p []byte, sink Sink[uint32]) (consumed, written int, err error) {
	consumed, written, st := e.scan(p, sink.Append)
	return consumed, written, e.dataErr(errors.OpDecode, st, consumed)
}

// DecodeBuffer is Decode in the buffer-returning convention: output scalar
// values land in buf.Data[:written] and buf's capacity is grown as needed.
func (e Encoding) DecodeBuffer(p []byte, buf *Buffer[uint32]) (consumed, written int, err error) {
	if err := buf.check(errors.OpDecode); err != nil {
		return 0, 0, err
	}
	return e.Decode(p, &bufferSink[uint32]{buf: buf})
}

// DecodeOne decodes exactly the next scalar value from p, reporting the
// value and its byte span. It uses the same error taxonomy as Decode,
// restricted to the first unit; callers drive their own iteration loop by
// re-slicing past consumed.
func (e Encoding) DecodeOne(p []byte) (v uint32, consumed int, err error) {
	v, consumed, st := e.desc().decodeOne(p)
	if st != statusOK {
		return 0, 0, e.dataErr(errors.OpDecode, st, 0)
	}
	return v, consumed, nil
}

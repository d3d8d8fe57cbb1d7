package utfconv

import (
	"encoding/binary"

	"github.com/flbdx/utf-conv/errors"
)

// encodeUTF8One writes the UTF-8 form of v into dst and returns its length.
// v must be a scalar value.
func encodeUTF8One(v uint32, dst *[4]byte) int {
	switch {
	case v < 0x80:
		dst[0] = byte(v)
		return 1
	case v < 0x800:
		dst[0] = 0xC0 | byte(v>>6)
		dst[1] = 0x80 | byte(v)&0x3F
		return 2
	case v < 0x10000:
		dst[0] = 0xE0 | byte(v>>12)
		dst[1] = 0x80 | byte(v>>6)&0x3F
		dst[2] = 0x80 | byte(v)&0x3F
		return 3
	default:
		dst[0] = 0xF0 | byte(v>>18)
		dst[1] = 0x80 | byte(v>>12)&0x3F
		dst[2] = 0x80 | byte(v>>6)&0x3F
		dst[3] = 0x80 | byte(v)&0x3F
		return 4
	}
}

// encodeUTF16One writes v as one 16-bit unit or a surrogate pair (high
// first) in the given byte order. v must be a scalar value.
func encodeUTF16One(v uint32, dst *[4]byte, order binary.ByteOrder) int {
	if v < 0x10000 {
		order.PutUint16(dst[:2], uint16(v))
		return 2
	}
	v -= 0x10000
	order.PutUint16(dst[:2], uint16(surrogateMin|v>>10))
	order.PutUint16(dst[2:4], uint16(0xDC00|v&0x3FF))
	return 4
}

// Encode converts scalar values into bytes appended to sink. consumed
// counts scalar values, written counts bytes. Each value is validated
// before any of its bytes are emitted: an illegal value fails with
// invalid_sequence at its index and nothing of it reaches the sink.
// Encode never reports truncation.
func (e Encoding) Encode(scalars []uint32, sink Sink[byte]) (consumed, written int, err error) {
	encodeOne := e.desc().encodeOne
	var unit [4]byte
	for _, v := range scalars {
		if !IsScalarValue(v) {
			return consumed, written, errors.NonScalar(errors.OpEncode, e.String(), consumed, v)
		}
		n := encodeOne(v, &unit)
		for _, b := range unit[:n] {
			sink.Append(b)
		}
		consumed++
		written += n
	}
	return consumed, written, nil
}

// EncodeBuffer is Encode in the buffer-returning convention: output bytes
// land in buf.Data[:written] and buf's capacity is grown as needed.
func (e Encoding) EncodeBuffer(scalars []uint32, buf *Buffer[byte]) (consumed, written int, err error) {
	if err := buf.check(errors.OpEncode); err != nil {
		return 0, 0, err
	}
	return e.Encode(scalars, &bufferSink[byte]{buf: buf})
}

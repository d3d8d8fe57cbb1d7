package utfconv

import "github.com/flbdx/utf-conv/errors"

// Convert transcodes p from one encoding directly into another, never
// materializing the intermediate scalar-value sequence: each unit is
// decoded and immediately re-encoded, and both counters advance together.
// consumed counts source bytes, written counts target bytes.
//
// Because the decode side only ever yields legal scalar values, the encode
// side of a composed conversion cannot fail: every error originates from
// malformed source input and carries the decode taxonomy. Converting an
// encoding to itself is a revalidating copy.
func Convert(from, to Encoding, p []byte, sink Sink[byte]) (consumed, written int, err error) {
	decodeOne := from.desc().decodeOne
	encodeOne := to.desc().encodeOne
	var unit [4]byte
	for consumed < len(p) {
		v, n, st := decodeOne(p[consumed:])
		if st != statusOK {
			return consumed, written, from.dataErr(errors.OpConvert, st, consumed)
		}
		m := encodeOne(v, &unit)
		for _, b := range unit[:m] {
			sink.Append(b)
		}
		consumed += n
		written += m
	}
	return consumed, written, nil
}

// ConvertBuffer is Convert in the buffer-returning convention: output bytes
// land in buf.Data[:written] and buf's capacity is grown as needed.
func ConvertBuffer(from, to Encoding, p []byte, buf *Buffer[byte]) (consumed, written int, err error) {
	if err := buf.check(errors.OpConvert); err != nil {
		return 0, 0, err
	}
	return Convert(from, to, p, &bufferSink[byte]{buf: buf})
}

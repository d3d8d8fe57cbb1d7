package utfconv

import "encoding/binary"

// Encoding identifies one of the five supported Unicode transfer encodings.
// It determines the code unit width and the byte order of multi-byte units.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// Unicode scalar value limits
const (
	maxScalar    = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// IsScalarValue reports whether v is a legal Unicode scalar value:
// in 0..U+10FFFF and outside the surrogate range U+D800..U+DFFF.
func IsScalarValue(v uint32) bool {
	return v <= maxScalar && (v < surrogateMin || v > surrogateMax)
}

// String returns the canonical name of the encoding.
func (e Encoding) String() string {
	return e.desc().name
}

// UnitSize returns the width of one code unit in bytes (1, 2 or 4).
func (e Encoding) UnitSize() int {
	return e.desc().unitSize
}

// status is the internal result of a single-unit decode step.
type status uint8

const (
	statusOK status = iota
	statusInvalid
	statusTruncated
)

// descriptor parameterizes the shared engine loops over the encoding
// matrix so decode, encode, validate and convert are each written once.
type descriptor struct {
	name      string
	unitSize  int
	decodeOne func(p []byte) (v uint32, n int, st status)
	encodeOne func(v uint32, dst *[4]byte) int
}

var descriptors = [...]descriptor{
	UTF8: {
		name:      "UTF-8",
		unitSize:  1,
		decodeOne: decodeUTF8One,
		encodeOne: encodeUTF8One,
	},
	UTF16LE: {
		name:     "UTF-16LE",
		unitSize: 2,
		decodeOne: func(p []byte) (uint32, int, status) {
			return decodeUTF16One(p, binary.LittleEndian)
		},
		encodeOne: func(v uint32, dst *[4]byte) int {
			return encodeUTF16One(v, dst, binary.LittleEndian)
		},
	},
	UTF16BE: {
		name:     "UTF-16BE",
		unitSize: 2,
		decodeOne: func(p []byte) (uint32, int, status) {
			return decodeUTF16One(p, binary.BigEndian)
		},
		encodeOne: func(v uint32, dst *[4]byte) int {
			return encodeUTF16One(v, dst, binary.BigEndian)
		},
	},
	UTF32LE: {
		name:     "UTF-32LE",
		unitSize: 4,
		decodeOne: func(p []byte) (uint32, int, status) {
			return decodeUTF32One(p, binary.LittleEndian)
		},
		encodeOne: func(v uint32, dst *[4]byte) int {
			binary.LittleEndian.PutUint32(dst[:], v)
			return 4
		},
	},
	UTF32BE: {
		name:     "UTF-32BE",
		unitSize: 4,
		decodeOne: func(p []byte) (uint32, int, status) {
			return decodeUTF32One(p, binary.BigEndian)
		},
		encodeOne: func(v uint32, dst *[4]byte) int {
			binary.BigEndian.PutUint32(dst[:], v)
			return 4
		},
	},
}

// Encodings lists all supported encodings in declaration order.
func Encodings() []Encoding {
	return []Encoding{UTF8, UTF16LE, UTF16BE, UTF32LE, UTF32BE}
}

func (e Encoding) desc() *descriptor {
	return &descriptors[e]
}

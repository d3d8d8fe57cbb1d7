package utfconv

import (
	"go.uber.org/zap"

	"github.com/flbdx/utf-conv/errors"
)

// minBufferCap is the smallest capacity a growing Buffer allocates.
const minBufferCap = 32

// Buffer is a caller-owned growable output region. It exposes the two
// handles of the buffer-returning calling convention: Data, the backing
// storage, and Size, its capacity in units. The caller owns both across
// calls; the engine allocates Data on first use (when both handles are
// zero), grows it with amortized-constant cost per unit when a write would
// exceed Size, and keeps Size equal to len(Data). Capacity never shrinks.
//
// After a call that reported written units, the output is Data[:written].
// Handing the engine inconsistent handles (Size different from len(Data),
// which includes a nil Data with nonzero Size) fails with a bad_params
// error before any memory is touched.
//
// A zero Buffer is ready to use.
type Buffer[U Unit] struct {
	Data []U
	Size int
}

func (b *Buffer[U]) check(op errors.Op) error {
	if b.Size != len(b.Data) {
		return errors.Params(op, "buffer capacity disagrees with its backing storage")
	}
	return nil
}

// grow reallocates to at least need units, preserving prior contents.
// Doubling with a floor keeps total copy cost linear in units written.
func (b *Buffer[U]) grow(need int) {
	size := b.Size * 2
	if size < minBufferCap {
		size = minBufferCap
	}
	if size < need {
		size = need
	}
	data := make([]U, size)
	copy(data, b.Data)
	Logger().Debug("buffer grow",
		zap.Int("from", b.Size),
		zap.Int("to", size))
	b.Data = data
	b.Size = size
}

// bufferSink adapts a Buffer to the Sink interface for one engine call,
// tracking the write position locally so the Buffer itself stays stateless
// between calls.
type bufferSink[U Unit] struct {
	buf *Buffer[U]
	n   int
}

func (s *bufferSink[U]) Append(u U) {
	if s.n == s.buf.Size {
		s.buf.grow(s.n + 1)
	}
	s.buf.Data[s.n] = u
	s.n++
}

package utfconv

// Unit constrains the code unit types an engine can emit: bytes for encoded
// output, uint32 scalar values for decoded output.
type Unit interface {
	~uint8 | ~uint32
}

// Sink is the generic appendable output target of the engines. Any
// destination exposing an append operation qualifies; the engines impose no
// growth policy and perform no allocation on behalf of a Sink.
type Sink[U Unit] interface {
	Append(u U)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc[U Unit] func(U)

func (f SinkFunc[U]) Append(u U) { f(u) }

// SliceSink collects units into an ordinary slice. The zero value is ready
// to use; Units holds everything appended so far.
type SliceSink[U Unit] struct {
	Units []U
}

func (s *SliceSink[U]) Append(u U) {
	s.Units = append(s.Units, u)
}

// Reset empties the sink, keeping the underlying capacity.
func (s *SliceSink[U]) Reset() {
	s.Units = s.Units[:0]
}

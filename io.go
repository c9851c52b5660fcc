package bitvec

import (
	"io"

	"github.com/oxidecomputer/bitvec/field"
)

// Reader drains a span as a byte stream. Each byte is the LoadBE
// image of the next 8 bits of range; under Descending ordering that
// is the conventional highest bit first bit stream. A trailing run
// shorter than 8 bits is not readable and reports io.EOF.
type Reader[E field.Elem] struct {
	bits *field.Span[E]
}

// NewReader returns a Reader positioned at the start of s.
func NewReader[E field.Elem](s *field.Span[E]) *Reader[E] {
	return &Reader[E]{bits: s}
}

func (r *Reader[E]) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.bits.Len() >= 8 {
		p[n] = field.LoadBE[uint8](r.bits.Slice(0, 8))
		r.bits = r.bits.Slice(8, r.bits.Len())
		n++
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Writer fills a span from a byte stream, each byte stored as the
// StoreBE image of the next 8 bits of range. Writing past the end of
// the range reports io.ErrShortWrite.
type Writer[E field.Elem] struct {
	bits *field.Span[E]
}

// NewWriter returns a Writer positioned at the start of s.
func NewWriter[E field.Elem](s *field.Span[E]) *Writer[E] {
	return &Writer[E]{bits: s}
}

func (w *Writer[E]) Write(p []byte) (int, error) {
	for n, b := range p {
		if w.bits.Len() < 8 {
			return n, io.ErrShortWrite
		}
		field.StoreBE(w.bits.Slice(0, 8), b)
		w.bits = w.bits.Slice(8, w.bits.Len())
	}
	return len(p), nil
}

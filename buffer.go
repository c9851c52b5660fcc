package bitvec

import (
	"fmt"

	"github.com/oxidecomputer/bitvec/field"
)

// Buffer is an exact length bit container. The length never changes;
// the contents may still be written through Bits.
type Buffer[E field.Elem] struct {
	data  []E
	nbits int
	order field.Order
}

// NewBuffer wraps data as a buffer of nbits bits. The storage must be
// exactly the element count nbits needs.
func NewBuffer[E field.Elem](data []E, nbits int, o field.Order) (*Buffer[E], error) {
	w := int(field.Width[E]())
	if nbits < 0 || (nbits+w-1)/w != len(data) {
		return nil, fmt.Errorf("%w: %d bits over %d elements of %d bits",
			ErrLengthMismatch, nbits, len(data), w)
	}
	return &Buffer[E]{data: data, nbits: nbits, order: o}, nil
}

// Len returns the buffer's bit length.
func (b *Buffer[E]) Len() int { return b.nbits }

// Order returns the buffer's ordering policy.
func (b *Buffer[E]) Order() field.Order { return b.order }

// Bits implements field.Field.
func (b *Buffer[E]) Bits() *field.Span[E] {
	return field.View(b.data, b.order).Slice(0, b.nbits)
}

package bitvec

import "github.com/oxidecomputer/bitvec/field"

// Array is a fixed capacity bit container over caller owned storage.
// Every bit of the backing slice is in range, and writes through the
// container are visible to other holders of the slice.
type Array[E field.Elem] struct {
	span *field.Span[E]
}

// NewArray wraps data without copying.
func NewArray[E field.Elem](data []E, o field.Order) *Array[E] {
	return &Array[E]{span: field.View(data, o)}
}

// Len returns the container's bit capacity.
func (a *Array[E]) Len() int { return a.span.Len() }

// Order returns the container's ordering policy.
func (a *Array[E]) Order() field.Order { return a.span.Order() }

// Bits implements field.Field.
func (a *Array[E]) Bits() *field.Span[E] { return a.span }

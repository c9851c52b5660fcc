package bitvec

import "github.com/oxidecomputer/bitvec/field"

// Vector is a growable bit container that owns its storage.
//
// Every bit outside [0, Len()) of the owned storage is zero; Resize
// maintains that on shrink so a later regrowth always exposes zero
// bits.
type Vector[E field.Elem] struct {
	data  []E
	nbits int
	order field.Order
}

// NewVector returns an empty vector under the given ordering.
func NewVector[E field.Elem](o field.Order) *Vector[E] {
	return &Vector[E]{order: o}
}

// Len returns the number of bits in range.
func (v *Vector[E]) Len() int { return v.nbits }

// Order returns the vector's ordering policy.
func (v *Vector[E]) Order() field.Order { return v.order }

// Bits implements field.Field. Growth may move the storage, so the
// span must be re-acquired after Push, Grow or Resize.
func (v *Vector[E]) Bits() *field.Span[E] {
	return field.View(v.data, v.order).Slice(0, v.nbits)
}

// Push appends one bit.
func (v *Vector[E]) Push(b bool) {
	v.Grow(1)
	v.Bits().SetBit(v.nbits-1, b)
}

// Grow extends the range by n zero bits.
func (v *Vector[E]) Grow(n int) {
	if n < 0 {
		panic("bitvec: negative growth")
	}
	v.Resize(v.nbits + n)
}

// Resize sets the bit length to n, growing with zero bits or
// truncating. Truncated bits are zeroed.
func (v *Vector[E]) Resize(n int) {
	if n < 0 {
		panic("bitvec: negative bit length")
	}
	w := int(field.Width[E]())
	if n >= v.nbits {
		if need := (n + w - 1) / w; need > len(v.data) {
			v.data = append(v.data, make([]E, need-len(v.data))...)
		}
		v.nbits = n
		return
	}
	keep := (n + w - 1) / w
	clear(v.data[keep:])
	if keep > 0 && n < keep*w {
		edge := field.View(v.data, v.order).Slice(0, keep*w)
		for i := n; i < keep*w; i++ {
			edge.SetBit(i, false)
		}
	}
	v.nbits = n
}

// Freeze copies the vector into an exact length Buffer.
func (v *Vector[E]) Freeze() *Buffer[E] {
	w := int(field.Width[E]())
	data := make([]E, (v.nbits+w-1)/w)
	copy(data, v.data)
	return &Buffer[E]{data: data, nbits: v.nbits, order: v.order}
}

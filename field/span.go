package field

import "math/bits"

// Span selects the bits [head, head+nbits) of a storage slice under
// an ordering policy. Spans alias their storage: sub-spans and the
// spans held by containers all write through to the same elements.
//
// A span is not safe for concurrent mutation of the same bits. Two
// goroutines may mutate disjoint bits of the same element only
// through aliased views, see Shared.
type Span[E Elem] struct {
	data   []E
	head   uint8
	nbits  int
	order  Order
	shared bool
}

// View returns a span over every bit of data.
func View[E Elem](data []E, o Order) *Span[E] {
	return &Span[E]{data: data, nbits: len(data) * int(Width[E]()), order: o}
}

// Len returns the number of bits in the span.
func (s *Span[E]) Len() int { return s.nbits }

// Order returns the span's ordering policy.
func (s *Span[E]) Order() Order { return s.order }

// Bits implements Field.
func (s *Span[E]) Bits() *Span[E] { return s }

// Slice returns the sub-span [start, end) in span relative bit
// positions. Panics when the interval is inverted or out of range.
func (s *Span[E]) Slice(start, end int) *Span[E] {
	if start < 0 || end < start || end > s.nbits {
		panic("field: bit interval out of range")
	}
	w := int(Width[E]())
	abs := int(s.head) + start
	t := *s
	t.data = s.data[abs/w : (abs+end-start+w-1)/w]
	t.head = uint8(abs % w)
	t.nbits = end - start
	return &t
}

// Shared returns an aliased view of the span: element mutations go
// through single atomic masked operations, so writers to disjoint
// bits of a shared element never lose each other's updates. Panics
// unless E is 32 or 64 bits wide, the widths the platform has atomic
// masked operations for.
func (s *Span[E]) Shared() *Span[E] {
	if w := Width[E](); w != 32 && w != 64 {
		panic("field: atomic masked access needs a 32 or 64 bit element")
	}
	t := *s
	t.shared = true
	return &t
}

// Bit reports the value of span bit i.
func (s *Span[E]) Bit(i int) bool {
	p, mask := s.locate(i)
	return loadElem(p, s.shared)&mask != 0
}

// SetBit sets span bit i to v.
func (s *Span[E]) SetBit(i int, v bool) {
	p, mask := s.locate(i)
	if v {
		setBits(p, mask, s.shared)
	} else {
		clearBits(p, mask, s.shared)
	}
}

// locate resolves span bit i to its element and single bit mask.
func (s *Span[E]) locate(i int) (*E, E) {
	if i < 0 || i >= s.nbits {
		panic("field: bit position out of range")
	}
	w := Width[E]()
	abs := int(s.head) + i
	l := uint8(abs % int(w))
	return &s.data[abs/int(w)], E(s.order.Mask(w, l, l+1))
}

// OnesCount returns the number of set bits in the span.
func (s *Span[E]) OnesCount() int {
	if s.nbits == 0 {
		return 0
	}
	w := Width[E]()
	d := s.Decompose()
	if e := d.Enclave; e != nil {
		m := E(s.order.Mask(w, e.Head, e.Tail))
		return bits.OnesCount64(uint64(loadElem(e.Elem, s.shared) & m))
	}
	r := d.Region
	n := 0
	if h := r.Head; h != nil {
		m := E(s.order.Mask(w, h.Marker, w))
		n += bits.OnesCount64(uint64(loadElem(h.Elem, s.shared) & m))
	}
	for i := range r.Body {
		n += bits.OnesCount64(uint64(loadElem(&r.Body[i], s.shared)))
	}
	if t := r.Tail; t != nil {
		m := E(s.order.Mask(w, 0, t.Marker))
		n += bits.OnesCount64(uint64(loadElem(t.Elem, s.shared) & m))
	}
	return n
}

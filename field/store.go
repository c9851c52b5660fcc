package field

// StoreLE disassembles the low s.Len() bits of value into the span,
// the lowest addressed element receiving the least significant chunk.
// Within each element the span's ordering policy decides which
// physical bits are live; bits of value above s.Len() are ignored and
// bits of the storage outside the span are untouched.
//
// Panics unless 1 <= s.Len() <= width(M).
func StoreLE[M Register, E Elem](s *Span[E], value M) {
	checkWidth[M]("StoreLE", s.nbits)
	w := Width[E]()
	mBits := Width[M]()
	d := s.Decompose()
	if e := d.Enclave; e != nil {
		mask := E(s.order.Mask(w, e.Head, e.Tail))
		set(e.Elem, value, mask, s.order.Shift(w, e.Head, e.Tail), s.shared)
		return
	}
	r := d.Region
	if h := r.Head; h != nil {
		mask := E(s.order.Mask(w, h.Marker, w))
		set(h.Elem, value, mask, s.order.Shift(w, h.Marker, w), s.shared)
		value >>= w - h.Marker
	}
	for i := range r.Body {
		storeElem(&r.Body[i], Resize[E](value), s.shared)
		if mBits > w {
			value >>= w
		}
	}
	if t := r.Tail; t != nil {
		mask := E(s.order.Mask(w, 0, t.Marker))
		set(t.Elem, value, mask, s.order.Shift(w, 0, t.Marker), s.shared)
	}
}

// StoreBE disassembles the low s.Len() bits of value into the span,
// the lowest addressed element receiving the most significant chunk.
// Within each element the span's ordering policy decides which
// physical bits are live; bits of value above s.Len() are ignored and
// bits of the storage outside the span are untouched.
//
// Panics unless 1 <= s.Len() <= width(M).
func StoreBE[M Register, E Elem](s *Span[E], value M) {
	checkWidth[M]("StoreBE", s.nbits)
	w := Width[E]()
	mBits := Width[M]()
	d := s.Decompose()
	if e := d.Enclave; e != nil {
		mask := E(s.order.Mask(w, e.Head, e.Tail))
		set(e.Elem, value, mask, s.order.Shift(w, e.Head, e.Tail), s.shared)
		return
	}
	r := d.Region
	if t := r.Tail; t != nil {
		mask := E(s.order.Mask(w, 0, t.Marker))
		set(t.Elem, value, mask, s.order.Shift(w, 0, t.Marker), s.shared)
		value >>= t.Marker
	}
	for i := len(r.Body) - 1; i >= 0; i-- {
		storeElem(&r.Body[i], Resize[E](value), s.shared)
		if mBits > w {
			value >>= w
		}
	}
	if h := r.Head; h != nil {
		mask := E(s.order.Mask(w, h.Marker, w))
		set(h.Elem, value, mask, s.order.Shift(w, h.Marker, w), s.shared)
	}
}

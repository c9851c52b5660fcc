package field

// LoadLE assembles the span's bits into an M with the lowest
// addressed element as the least significant chunk. Within each
// element the span's ordering policy decides which physical bits are
// live; the chunk significance order is fixed by address, so the
// result does not depend on the host's byte order.
//
// Panics unless 1 <= s.Len() <= width(M). Only the low s.Len() bits
// of the result can be set.
func LoadLE[M Register, E Elem](s *Span[E]) M {
	checkWidth[M]("LoadLE", s.nbits)
	w := Width[E]()
	mBits := Width[M]()
	d := s.Decompose()
	if e := d.Enclave; e != nil {
		mask := E(s.order.Mask(w, e.Head, e.Tail))
		return get[M](e.Elem, mask, s.order.Shift(w, e.Head, e.Tail), s.shared)
	}
	r := d.Region
	var accum M
	if t := r.Tail; t != nil {
		mask := E(s.order.Mask(w, 0, t.Marker))
		accum = get[M](t.Elem, mask, s.order.Shift(w, 0, t.Marker), s.shared)
	}
	for i := len(r.Body) - 1; i >= 0; i-- {
		if mBits > w {
			accum <<= w
		}
		accum |= Resize[M](loadElem(&r.Body[i], s.shared))
	}
	if h := r.Head; h != nil {
		accum <<= w - h.Marker
		mask := E(s.order.Mask(w, h.Marker, w))
		accum |= get[M](h.Elem, mask, s.order.Shift(w, h.Marker, w), s.shared)
	}
	return accum
}

// LoadBE assembles the span's bits into an M with the lowest
// addressed element as the most significant chunk. Within each
// element the span's ordering policy decides which physical bits are
// live; the chunk significance order is fixed by address, so the
// result does not depend on the host's byte order.
//
// Panics unless 1 <= s.Len() <= width(M). Only the low s.Len() bits
// of the result can be set.
func LoadBE[M Register, E Elem](s *Span[E]) M {
	checkWidth[M]("LoadBE", s.nbits)
	w := Width[E]()
	mBits := Width[M]()
	d := s.Decompose()
	if e := d.Enclave; e != nil {
		mask := E(s.order.Mask(w, e.Head, e.Tail))
		return get[M](e.Elem, mask, s.order.Shift(w, e.Head, e.Tail), s.shared)
	}
	r := d.Region
	var accum M
	if h := r.Head; h != nil {
		mask := E(s.order.Mask(w, h.Marker, w))
		accum = get[M](h.Elem, mask, s.order.Shift(w, h.Marker, w), s.shared)
	}
	for i := range r.Body {
		if mBits > w {
			accum <<= w
		}
		accum |= Resize[M](loadElem(&r.Body[i], s.shared))
	}
	if t := r.Tail; t != nil {
		accum <<= t.Marker
		mask := E(s.order.Mask(w, 0, t.Marker))
		accum |= get[M](t.Elem, mask, s.order.Shift(w, 0, t.Marker), s.shared)
	}
	return accum
}

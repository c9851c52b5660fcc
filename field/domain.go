package field

// Enclave is a range confined to a single element, live logical
// window [Head, Tail).
type Enclave[E Elem] struct {
	Head uint8
	Tail uint8
	Elem *E
}

// Partial is one partially covered edge element of a Region. A head
// partial covers the logical window [Marker, width); a tail partial
// covers [0, Marker).
type Partial[E Elem] struct {
	Marker uint8
	Elem   *E
}

// Region is a range spanning two or more elements: an optional head
// partial, the address ordered run of fully covered elements, and an
// optional tail partial.
type Region[E Elem] struct {
	Head *Partial[E]
	Body []E
	Tail *Partial[E]
}

// Decomposition is the element shaped view of a span. Exactly one of
// Enclave and Region is set.
type Decomposition[E Elem] struct {
	Enclave *Enclave[E]
	Region  *Region[E]
}

// Decompose splits the span at element boundaries. A range that lies
// in one element is an Enclave whatever its alignment; any longer
// range is a Region whose head partial exists iff the range starts
// mid element and whose tail partial exists iff it ends mid element.
func (s *Span[E]) Decompose() Decomposition[E] {
	w := int(Width[E]())
	end := int(s.head) + s.nbits
	if end <= w {
		return Decomposition[E]{Enclave: &Enclave[E]{
			Head: s.head,
			Tail: uint8(end),
			Elem: &s.data[0],
		}}
	}
	r := &Region[E]{}
	lo, hi := 0, (end+w-1)/w
	if s.head > 0 {
		r.Head = &Partial[E]{Marker: s.head, Elem: &s.data[0]}
		lo = 1
	}
	if t := end % w; t > 0 {
		hi--
		r.Tail = &Partial[E]{Marker: uint8(t), Elem: &s.data[hi]}
	}
	r.Body = s.data[lo:hi]
	return Decomposition[E]{Region: r}
}

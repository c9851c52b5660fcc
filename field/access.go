package field

import "sync/atomic"

// loadElem reads one storage element, atomically for aliased views.
func loadElem[E Elem](p *E, shared bool) E {
	if !shared {
		return *p
	}
	switch p := any(p).(type) {
	case *uint32:
		return E(atomic.LoadUint32(p))
	case *uint64:
		return E(atomic.LoadUint64(p))
	default:
		panic("field: atomic masked access needs a 32 or 64 bit element")
	}
}

// storeElem writes one storage element whole.
func storeElem[E Elem](p *E, v E, shared bool) {
	if !shared {
		*p = v
		return
	}
	switch p := any(p).(type) {
	case *uint32:
		atomic.StoreUint32(p, uint32(v))
	case *uint64:
		atomic.StoreUint64(p, uint64(v))
	default:
		panic("field: atomic masked access needs a 32 or 64 bit element")
	}
}

// clearBits zeroes the masked bits of the element. The aliased form
// is a single atomic fetch-and, so concurrent writers to the
// element's other bits are preserved.
func clearBits[E Elem](p *E, mask E, shared bool) {
	if !shared {
		*p &^= mask
		return
	}
	switch p := any(p).(type) {
	case *uint32:
		atomic.AndUint32(p, ^uint32(mask))
	case *uint64:
		atomic.AndUint64(p, ^uint64(mask))
	default:
		panic("field: atomic masked access needs a 32 or 64 bit element")
	}
}

// setBits ors the set bits of v into the element. The aliased form is
// a single atomic fetch-or.
func setBits[E Elem](p *E, v E, shared bool) {
	if !shared {
		*p |= v
		return
	}
	switch p := any(p).(type) {
	case *uint32:
		atomic.OrUint32(p, uint32(v))
	case *uint64:
		atomic.OrUint64(p, uint64(v))
	default:
		panic("field: atomic masked access needs a 32 or 64 bit element")
	}
}

// get extracts the live window of one element: load, mask, shift the
// window down to bit 0, resize to the register width.
func get[M Register, E Elem](p *E, mask E, shift uint8, shared bool) M {
	return Resize[M]((loadElem(p, shared) & mask) >> shift)
}

// set inserts the low bits of value into the live window of one
// element: resize to the element width, shift up under the mask, then
// clear and merge as two masked steps.
func set[M Register, E Elem](p *E, value M, mask E, shift uint8, shared bool) {
	v := (Resize[E](value) << shift) & mask
	clearBits(p, mask, shared)
	setBits(p, v, shared)
}

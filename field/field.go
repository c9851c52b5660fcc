package field

import "fmt"

// Field is the contract container types satisfy: expose the span the
// load and store operations work over. Containers forward and add no
// logic of their own.
type Field[E Elem] interface {
	Bits() *Span[E]
}

// Load assembles the span's bits into an M using the host's byte
// order: LoadLE on a little endian host, LoadBE on a big endian one.
// The result for a multi element span therefore differs between
// hosts; serialization should use the qualified forms.
func Load[M Register, E Elem](s *Span[E]) M {
	if bigEndianHost {
		return LoadBE[M](s)
	}
	return LoadLE[M](s)
}

// Store disassembles value into the span using the host's byte order:
// StoreLE on a little endian host, StoreBE on a big endian one. The
// memory layout for a multi element span therefore differs between
// hosts; serialization should use the qualified forms.
func Store[M Register, E Elem](s *Span[E], value M) {
	if bigEndianHost {
		StoreBE(s, value)
		return
	}
	StoreLE(s, value)
}

// checkWidth panics unless 1 <= n <= width(M). A range outside that
// interval has no meaningful transfer into an M and is a caller bug,
// not a runtime condition.
func checkWidth[M Register](op string, n int) {
	if n < 1 || n > int(Width[M]()) {
		panic(fmt.Sprintf("field: %s: range width %d not in 1..%d", op, n, Width[M]()))
	}
}

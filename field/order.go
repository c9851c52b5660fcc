package field

const (
	// OrderCodeAscending identifies Ascending in serialized headers.
	OrderCodeAscending uint8 = 0
	// OrderCodeDescending identifies Descending in serialized headers.
	OrderCodeDescending uint8 = 1
)

// Order maps the logical positions of a bit range onto the physical
// bits of one storage element. Head and tail markers select the live
// logical window [head, tail) of an element; Mask selects the
// window's physical bits and Shift is the right shift that brings the
// window's least significant live bit to physical bit 0.
//
// A leading partial element of a multi element range is the window
// [head, width); a trailing partial is [0, tail); a range confined to
// one element is [head, tail).
type Order interface {
	// Mask returns the element mask for the live window [head, tail)
	// of an element width bits wide.
	Mask(width, head, tail uint8) uint64
	// Shift returns the physical position of the live window's least
	// significant bit.
	Shift(width, head, tail uint8) uint8
	// Code is the stable one byte identifier of the ordering.
	Code() uint8

	String() string
}

// Ascending places logical position 0 at the least significant bit of
// each element; positions increase toward the most significant bit.
var Ascending Order = ascending{}

// Descending places logical position 0 at the most significant bit of
// each element; positions increase toward the least significant bit.
var Descending Order = descending{}

type ascending struct{}

func (ascending) Mask(width, head, tail uint8) uint64 {
	return ((uint64(1) << (tail - head)) - 1) << head
}

func (ascending) Shift(width, head, tail uint8) uint8 { return head }

func (ascending) Code() uint8 { return OrderCodeAscending }

func (ascending) String() string { return "ascending" }

type descending struct{}

func (descending) Mask(width, head, tail uint8) uint64 {
	return ((uint64(1) << (tail - head)) - 1) << (width - tail)
}

func (descending) Shift(width, head, tail uint8) uint8 { return width - tail }

func (descending) Code() uint8 { return OrderCodeDescending }

func (descending) String() string { return "descending" }

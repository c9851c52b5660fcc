package field

import "math/bits"

// Register is the set of unsigned integer types a bit range can be
// loaded into or stored from. uint is the platform word register.
type Register interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// Elem is the set of storage element types a bit region can be built
// over. Aliased views additionally need a 32 or 64 bit element, see
// (*Span).Shared.
type Elem interface {
	uint8 | uint16 | uint32 | uint64
}

// Width returns the bit width of T.
func Width[T Register]() uint8 {
	var z T
	switch any(z).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return bits.UintSize
	}
}

package field

import (
	"encoding/binary"
	"math/bits"
)

// bigEndianHost reports whether the host stores the most significant
// byte of a register at the lowest address.
var bigEndianHost = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x01
}()

// Resize converts value to the register width of U, zero extending
// when U is wider than T and keeping only the low bits when it is
// narrower. The retained bits are never reordered.
//
// The conversion is a byte transplant, not arithmetic: value's bytes
// are laid out in host order, min(bytes(T), bytes(U)) of them are
// copied into a zeroed buffer, and the result is read back in host
// order. The significant low bytes sit at offset 0 on a little endian
// host; on a big endian host they sit at the high end of each
// register's byte run, so the copy offsets shift by the width
// difference.
func Resize[U, T Register](value T) U {
	var src, dst [8]byte
	putRegister(src[:], value)
	ns := int(Width[T]()) / 8
	nd := int(Width[U]()) / 8
	n := min(ns, nd)
	if bigEndianHost {
		copy(dst[nd-n:nd], src[ns-n:ns])
	} else {
		copy(dst[:n], src[:n])
	}
	return getRegister[U](dst[:])
}

// putRegister writes v into the first bytes(T) bytes of b in host
// byte order.
func putRegister[T Register](b []byte, v T) {
	switch v := any(v).(type) {
	case uint8:
		b[0] = v
	case uint16:
		binary.NativeEndian.PutUint16(b, v)
	case uint32:
		binary.NativeEndian.PutUint32(b, v)
	case uint64:
		binary.NativeEndian.PutUint64(b, v)
	case uint:
		if bits.UintSize == 64 {
			binary.NativeEndian.PutUint64(b, uint64(v))
		} else {
			binary.NativeEndian.PutUint32(b, uint32(v))
		}
	}
}

// getRegister reads a T from the first bytes(T) bytes of b in host
// byte order.
func getRegister[T Register](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *uint16:
		*p = binary.NativeEndian.Uint16(b)
	case *uint32:
		*p = binary.NativeEndian.Uint32(b)
	case *uint64:
		*p = binary.NativeEndian.Uint64(b)
	case *uint:
		if bits.UintSize == 64 {
			*p = uint(binary.NativeEndian.Uint64(b))
		} else {
			*p = uint(binary.NativeEndian.Uint32(b))
		}
	}
	return v
}

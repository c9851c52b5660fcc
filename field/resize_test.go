package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeIdentity(t *testing.T) {
	require.Equal(t, uint8(0xA5), Resize[uint8](uint8(0xA5)))
	require.Equal(t, uint16(0xA55A), Resize[uint16](uint16(0xA55A)))
	require.Equal(t, uint32(0xDEADBEEF), Resize[uint32](uint32(0xDEADBEEF)))
	require.Equal(t, uint64(0xFEEDFACECAFEBEEF), Resize[uint64](uint64(0xFEEDFACECAFEBEEF)))
	require.Equal(t, uint(0x1234ABCD), Resize[uint](uint(0x1234ABCD)))
	require.Equal(t, uint8(0), Resize[uint8](uint8(0)))
}

func TestResizeGrowZeroExtends(t *testing.T) {
	// Every narrower to wider pair. The source's high bit is set so a
	// sign extending implementation would be caught.
	require.Equal(t, uint16(0x00AB), Resize[uint16](uint8(0xAB)))
	require.Equal(t, uint32(0x000000AB), Resize[uint32](uint8(0xAB)))
	require.Equal(t, uint64(0x00000000000000AB), Resize[uint64](uint8(0xAB)))
	require.Equal(t, uint32(0x0000ABCD), Resize[uint32](uint16(0xABCD)))
	require.Equal(t, uint64(0x000000000000ABCD), Resize[uint64](uint16(0xABCD)))
	require.Equal(t, uint64(0x00000000DEADBEEF), Resize[uint64](uint32(0xDEADBEEF)))
	require.Equal(t, uint(0xAB), Resize[uint](uint8(0xAB)))
	require.Equal(t, uint(0xABCD), Resize[uint](uint16(0xABCD)))
	require.Equal(t, uint(0xDEADBEEF), Resize[uint](uint32(0xDEADBEEF)))
	require.Equal(t, uint64(0xDEADBEEF), Resize[uint64](uint(0xDEADBEEF)))
}

func TestResizeShrinkTruncates(t *testing.T) {
	// Every wider to narrower pair keeps only the low bits.
	require.Equal(t, uint8(0xCD), Resize[uint8](uint16(0xABCD)))
	require.Equal(t, uint8(0xEF), Resize[uint8](uint32(0xDEADBEEF)))
	require.Equal(t, uint8(0x88), Resize[uint8](uint64(0x1122334455667788)))
	require.Equal(t, uint16(0xBEEF), Resize[uint16](uint32(0xDEADBEEF)))
	require.Equal(t, uint16(0x7788), Resize[uint16](uint64(0x1122334455667788)))
	require.Equal(t, uint32(0x55667788), Resize[uint32](uint64(0x1122334455667788)))
	require.Equal(t, uint8(0xEF), Resize[uint8](uint(0xDEADBEEF)))
	require.Equal(t, uint16(0xBEEF), Resize[uint16](uint(0xDEADBEEF)))
	require.Equal(t, uint32(0xDEADBEEF), Resize[uint32](uint(0xDEADBEEF)))
}

func TestResizeToWordRegister(t *testing.T) {
	// The uint pair tracks the platform word: identity on 64 bit
	// hosts, low word truncation on 32 bit ones.
	require.Equal(t, uint(0xDEADBEEF), Resize[uint](uint64(0xDEADBEEF)))
	wide := uint64(0x1122334455667788)
	require.Equal(t, uint(wide), Resize[uint](wide))
}

func TestResizeComposes(t *testing.T) {
	// Shrinking then growing keeps exactly the surviving low bits.
	require.Equal(t, uint64(0xBEEF), Resize[uint64](Resize[uint16](uint32(0xDEADBEEF))))
	require.Equal(t, uint32(0x00AB), Resize[uint32](Resize[uint8](uint16(0x01AB))))
}

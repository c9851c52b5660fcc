package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderMaskShift(t *testing.T) {
	type args struct {
		width uint8
		head  uint8
		tail  uint8
	}
	tests := []struct {
		name  string
		order Order
		args  args
		mask  uint64
		shift uint8
	}{
		{"ascending interior window", Ascending, args{8, 1, 4}, 0b0000_1110, 1},
		{"ascending head partial", Ascending, args{8, 5, 8}, 0b1110_0000, 5},
		{"ascending tail partial", Ascending, args{8, 0, 3}, 0b0000_0111, 0},
		{"ascending full element", Ascending, args{8, 0, 8}, 0xFF, 0},
		{"ascending last bit", Ascending, args{8, 7, 8}, 0b1000_0000, 7},
		{"ascending first bit", Ascending, args{8, 0, 1}, 0b0000_0001, 0},
		{"descending interior window", Descending, args{8, 1, 4}, 0b0111_0000, 4},
		{"descending head partial", Descending, args{8, 5, 8}, 0b0000_0111, 0},
		{"descending tail partial", Descending, args{8, 0, 3}, 0b1110_0000, 5},
		{"descending full element", Descending, args{8, 0, 8}, 0xFF, 0},
		{"descending last bit", Descending, args{8, 7, 8}, 0b0000_0001, 0},
		{"descending first bit", Descending, args{8, 0, 1}, 0b1000_0000, 7},
		{"ascending full word", Ascending, args{64, 0, 64}, ^uint64(0), 0},
		{"descending full word", Descending, args{64, 0, 64}, ^uint64(0), 0},
		{"ascending symmetric window", Ascending, args{32, 8, 24}, 0x00FFFF00, 8},
		{"descending symmetric window", Descending, args{32, 8, 24}, 0x00FFFF00, 8},
		{"ascending word tail", Ascending, args{64, 0, 20}, 0x000FFFFF, 0},
		{"descending word tail", Descending, args{64, 0, 20}, 0xFFFFF00000000000, 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.mask, tt.order.Mask(tt.args.width, tt.args.head, tt.args.tail))
			require.Equal(t, tt.shift, tt.order.Shift(tt.args.width, tt.args.head, tt.args.tail))
		})
	}
}

// Complementary markers select complementary windows: a head partial
// at h and a tail partial at h tile the element exactly.
func TestOrderMasksTile(t *testing.T) {
	for _, o := range []Order{Ascending, Descending} {
		for _, width := range []uint8{8, 16, 32, 64} {
			for h := uint8(1); h < width; h++ {
				head := o.Mask(width, h, width)
				tail := o.Mask(width, 0, h)
				full := o.Mask(width, 0, width)
				require.Zero(t, head&tail, "%s width=%d h=%d", o, width, h)
				require.Equal(t, full, head|tail, "%s width=%d h=%d", o, width, h)
			}
		}
	}
}

func TestOrderCodes(t *testing.T) {
	require.Equal(t, OrderCodeAscending, Ascending.Code())
	require.Equal(t, OrderCodeDescending, Descending.Code())
	require.Equal(t, "ascending", Ascending.String())
	require.Equal(t, "descending", Descending.String())
}

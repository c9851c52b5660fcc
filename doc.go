package bitvec

/*

# Bit containers

This package provides the thin container types over the field
package's bit spans, plus two small outward surfaces: a deterministic
CBOR envelope for persisting a container, and io.Reader/io.Writer
adapters that move whole bytes between a range and byte streams.

The containers hold no transfer logic of their own. Each implements
field.Field by exposing its span; all loads and stores go through the
field package:

	v := bitvec.NewVector[uint8](field.Ascending)
	v.Grow(12)
	field.StoreLE(v.Bits().Slice(4, 12), uint8(0xAB))
	got := field.LoadLE[uint8](v.Bits().Slice(4, 12))

Three shapes:

  - Array: fixed capacity over caller owned storage, every bit of the
    slice in range.
  - Vector: growable, owns its storage. Bits dropped by Resize are
    zeroed so regrowth is deterministic.
  - Buffer: exact length, produced by Vector.Freeze or NewBuffer.

The envelope (MarshalBits/UnmarshalBits) packs the range as 8 bit
chunks through the LE walk, so the payload bytes are identical
whatever the producer's element width or host byte order. The decoder
validates the format version, ordering code, element width and
payload length against the target container.

*/

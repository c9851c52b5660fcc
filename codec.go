package bitvec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/oxidecomputer/bitvec/field"
)

// envelopeV1 is the serialized container format version. Incompatible
// changes to the envelope layout or the payload packing get a new
// version rather than silently breaking persisted data.
const envelopeV1 uint8 = 1

// envelope is the portable serialized form of a bit container. The
// payload is the range packed as successive 8 bit chunks through the
// LE walk, which makes it identical whatever the producer's element
// width or host byte order; Order and ElemBits record how the
// producer addressed its bits.
type envelope struct {
	Version  uint8  `cbor:"1,keyasint"`
	Order    uint8  `cbor:"2,keyasint"`
	ElemBits uint8  `cbor:"3,keyasint"`
	Bits     uint64 `cbor:"4,keyasint"`
	Payload  []byte `cbor:"5,keyasint"`
}

// Envelope codec modes, built once from explicit option sets.
// Encoding follows the deterministic core profile; decoding rejects
// duplicate map keys and indefinite length items, neither of which
// the encode side produces.
var (
	encMode = func() cbor.EncMode {
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			panic("bitvec: envelope encode mode: " + err.Error())
		}
		return em
	}()
	decMode = func() cbor.DecMode {
		opts := cbor.DecOptions{
			DupMapKey:   cbor.DupMapKeyEnforcedAPF,
			IndefLength: cbor.IndefLengthForbidden,
		}
		dm, err := opts.DecMode()
		if err != nil {
			panic("bitvec: envelope decode mode: " + err.Error())
		}
		return dm
	}()
)

// MarshalBits encodes the span as a deterministic CBOR envelope.
func MarshalBits[E field.Elem](s *field.Span[E]) ([]byte, error) {
	env := envelope{
		Version:  envelopeV1,
		Order:    s.Order().Code(),
		ElemBits: field.Width[E](),
		Bits:     uint64(s.Len()),
		Payload:  packBytes(s),
	}
	enc, err := encMode.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("encode bits: %w", err)
	}
	return enc, nil
}

// UnmarshalBits decodes an envelope produced by MarshalBits into a
// vector under the encoded ordering. The element width of the target
// must match the encoded one.
func UnmarshalBits[E field.Elem](data []byte) (*Vector[E], error) {
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode bits: %w", err)
	}
	if env.Version != envelopeV1 {
		return nil, fmt.Errorf("%w: %d", ErrEnvelopeVersion, env.Version)
	}
	var o field.Order
	switch env.Order {
	case field.OrderCodeAscending:
		o = field.Ascending
	case field.OrderCodeDescending:
		o = field.Descending
	default:
		return nil, fmt.Errorf("%w: %d", ErrOrderUnknown, env.Order)
	}
	if env.ElemBits != field.Width[E]() {
		return nil, fmt.Errorf("%w: encoded %d, container %d",
			ErrElemWidth, env.ElemBits, field.Width[E]())
	}
	nbits := int(env.Bits)
	if nbits < 0 || uint64(nbits) != env.Bits {
		return nil, fmt.Errorf("%w: %d bits", ErrLengthMismatch, env.Bits)
	}
	if len(env.Payload) != (nbits+7)/8 {
		return nil, fmt.Errorf("%w: %d payload bytes for %d bits",
			ErrLengthMismatch, len(env.Payload), nbits)
	}
	v := &Vector[E]{order: o}
	v.Resize(nbits)
	s := v.Bits()
	for i, b := range env.Payload {
		lo := i * 8
		hi := min(lo+8, nbits)
		field.StoreLE(s.Slice(lo, hi), b)
	}
	return v, nil
}

// packBytes extracts the span as 8 bit chunks, in range order, a
// final short chunk occupying the low bits of its byte.
func packBytes[E field.Elem](s *field.Span[E]) []byte {
	n := s.Len()
	out := make([]byte, (n+7)/8)
	for i := range out {
		lo := i * 8
		hi := min(lo+8, n)
		out[i] = field.LoadLE[uint8](s.Slice(lo, hi))
	}
	return out
}

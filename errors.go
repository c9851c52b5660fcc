package bitvec

import "errors"

var (
	ErrEnvelopeVersion = errors.New("bitvec: unsupported envelope version")
	ErrOrderUnknown    = errors.New("bitvec: unknown bit order code")
	ErrElemWidth       = errors.New("bitvec: element width mismatch")
	ErrLengthMismatch  = errors.New("bitvec: bit length and storage disagree")
)

package types

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned when a byte source does not have the length
	// a container requires (exactly N for fixed, at most N for bounded).
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidHex is returned for text that is not 0x-prefixed hexadecimal.
	ErrInvalidHex = errors.New("invalid hex encoding")
	// ErrNumericParse is returned for text that is not an in-range base-10 uint64.
	ErrNumericParse = errors.New("invalid decimal quantity")
	// ErrSequenceLength is returned when a fixed-length sequence, such as the
	// sync committee pubkeys, has the wrong number of elements.
	ErrSequenceLength = errors.New("sequence length invariant violated")
	// ErrBufferSize is returned when an SSZ buffer does not match the size of
	// the type decoded from it. It is fastssz's own size error.
	ErrBufferSize = ssz.ErrSize
	// ErrMissingField is returned when a JSON object lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

func lengthMismatch(have, want int) error {
	return errors.Wrapf(ErrLengthMismatch, "have %d bytes, want %d", have, want)
}

func bufferSize(have, want int) error {
	return errors.Wrapf(ErrBufferSize, "have %d bytes, want %d", have, want)
}

func missingField(name, typ string) error {
	return errors.Wrapf(ErrMissingField, "'%s' for %s", name, typ)
}

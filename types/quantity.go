package types

import (
	"strconv"

	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
)

// U64 is an unsigned 64 bit quantity. In JSON it travels as a quoted decimal
// string so that consumers with 53 bit numbers do not lose precision.
type U64 uint64

// ParseU64 parses a base-10 quantity. Leading zeros are accepted, signs,
// whitespace and digit separators are not.
func ParseU64(input string) (U64, error) {
	if len(input) == 0 {
		return 0, errors.Wrap(ErrNumericParse, "empty string")
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, errors.Wrapf(ErrNumericParse, "invalid digit %q", input[i])
		}
	}
	v, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNumericParse, "%q out of range", input)
	}
	return U64(v), nil
}

func (u U64) Uint64() uint64 { return uint64(u) }

func (u U64) String() string { return strconv.FormatUint(uint64(u), 10) }

func (u U64) IsVariableSize() bool { return false }

// MarshalText implements encoding.TextMarshaler.
func (u U64) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(u), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Bare JSON numbers are rejected.
func (u *U64) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errors.Wrap(ErrNumericParse, "non-string JSON value")
	}
	return u.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *U64) UnmarshalText(input []byte) error {
	v, err := ParseU64(string(input))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the U64 object
func (u U64) SizeSSZ() int { return 8 }

// MarshalSSZ ssz marshals the U64 object
func (u U64) MarshalSSZ() ([]byte, error) {
	return u.MarshalSSZTo(make([]byte, 0, 8))
}

// MarshalSSZTo ssz marshals the U64 object to a target array
func (u U64) MarshalSSZTo(dst []byte) ([]byte, error) {
	return ssz.MarshalUint64(dst, uint64(u)), nil
}

// UnmarshalSSZ ssz unmarshals the U64 object
func (u *U64) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 8 {
		return bufferSize(len(buf), 8)
	}
	*u = U64(ssz.UnmarshallUint64(buf))
	return nil
}

// HashTreeRoot ssz hashes the U64 object
func (u U64) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(u)
}

// HashTreeRootWith ssz hashes the U64 object with a hasher
func (u U64) HashTreeRootWith(hh *ssz.Hasher) error {
	hh.PutUint64(uint64(u))
	return nil
}

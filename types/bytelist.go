package types

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ssz "github.com/ferranbt/fastssz"
)

// ListLimit carries the maximum length of a ByteList at the type level.
// Implementations are empty structs.
type ListLimit interface {
	MaxLength() int
}

// ExtraDataLimit is the execution payload extra_data bound.
type ExtraDataLimit struct{}

func (ExtraDataLimit) MaxLength() int { return 32 }

// ExtraData is a byte list of at most 32 bytes.
type ExtraData = ByteList[ExtraDataLimit]

// ByteList is a byte sequence of at most L.MaxLength() bytes.
type ByteList[L ListLimit] struct {
	data []byte
}

func listLimit[L ListLimit]() int {
	var l L
	return l.MaxLength()
}

// NewByteList copies b into a ByteList, failing if b exceeds the limit.
func NewByteList[L ListLimit](b []byte) (ByteList[L], error) {
	if limit := listLimit[L](); len(b) > limit {
		return ByteList[L]{}, lengthMismatch(len(b), limit)
	}
	return ByteList[L]{data: append([]byte{}, b...)}, nil
}

// Bytes returns the contents. The slice must not be modified.
func (b ByteList[L]) Bytes() []byte { return b.data }

func (b ByteList[L]) Len() int { return len(b.data) }

func (b ByteList[L]) MaxLength() int { return listLimit[L]() }

func (b ByteList[L]) Equal(o ByteList[L]) bool { return bytes.Equal(b.data, o.data) }

func (b ByteList[L]) Compare(o ByteList[L]) int { return bytes.Compare(b.data, o.data) }

func (b ByteList[L]) String() string { return EncodeHex(b.data) }

// IsVariableSize reports true: a list's encoded width depends on its length.
func (b ByteList[L]) IsVariableSize() bool { return true }

// MarshalText implements encoding.TextMarshaler.
func (b ByteList[L]) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b.data).MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteList[L]) UnmarshalJSON(input []byte) error {
	text, err := unquote(input)
	if err != nil {
		return err
	}
	return b.UnmarshalText(text)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteList[L]) UnmarshalText(input []byte) error {
	raw, err := DecodeHex(string(input))
	if err != nil {
		return err
	}
	if limit := listLimit[L](); len(raw) > limit {
		return lengthMismatch(len(raw), limit)
	}
	b.data = raw
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the ByteList object
func (b ByteList[L]) SizeSSZ() int { return len(b.data) }

// MarshalSSZ ssz marshals the ByteList object
func (b ByteList[L]) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, len(b.data)))
}

// MarshalSSZTo ssz marshals the ByteList object to a target array
func (b ByteList[L]) MarshalSSZTo(dst []byte) ([]byte, error) {
	if limit := listLimit[L](); len(b.data) > limit {
		return nil, lengthMismatch(len(b.data), limit)
	}
	return append(dst, b.data...), nil
}

// UnmarshalSSZ ssz unmarshals the ByteList object
func (b *ByteList[L]) UnmarshalSSZ(buf []byte) error {
	if limit := listLimit[L](); len(buf) > limit {
		return lengthMismatch(len(buf), limit)
	}
	b.data = append([]byte{}, buf...)
	return nil
}

// HashTreeRoot ssz hashes the ByteList object
func (b ByteList[L]) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the ByteList object with a hasher
func (b ByteList[L]) HashTreeRootWith(hh *ssz.Hasher) error {
	limit := listLimit[L]()
	if len(b.data) > limit {
		return lengthMismatch(len(b.data), limit)
	}
	indx := hh.Index()
	hh.Append(b.data)
	hh.FillUpTo32()
	hh.MerkleizeWithMixin(indx, uint64(len(b.data)), uint64(limit+31)/32)
	return nil
}

package types

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ssz "github.com/ferranbt/fastssz"
)

// Fixed-length byte containers. Every width has the same method set: SSZ
// encoding without a length prefix, hash tree root over zero-padded 32 byte
// chunks, and 0x-prefixed hex in JSON.
type (
	Root                  = Bytes32
	Domain                = Bytes32
	Version               = Bytes4
	DomainType            = Bytes4
	BLSPubKey             = Bytes48
	BLSPubKeyUncompressed = Bytes96
	SignatureBytes        = Bytes96
)

// Bytes4 is a 4 byte value, used for fork versions.
type Bytes4 [4]byte

// Bytes4FromSlice copies b into a Bytes4. It fails unless len(b) == 4.
func Bytes4FromSlice(b []byte) (Bytes4, error) {
	var v Bytes4
	if err := fixedFromSlice(b, v[:]); err != nil {
		return Bytes4{}, err
	}
	return v, nil
}

func (b Bytes4) Bytes() []byte { return b[:] }
func (b Bytes4) String() string { return EncodeHex(b[:]) }
func (b Bytes4) Compare(o Bytes4) int { return bytes.Compare(b[:], o[:]) }
func (b Bytes4) IsVariableSize() bool { return false }
func (b Bytes4) SizeSSZ() int { return 4 }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes4) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes4) UnmarshalJSON(input []byte) error {
	return unmarshalFixedJSON(input, b[:])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes4) UnmarshalText(input []byte) error {
	return unmarshalFixedText(input, b[:])
}

// MarshalSSZ ssz marshals the Bytes4 object
func (b Bytes4) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, 4))
}

// MarshalSSZTo ssz marshals the Bytes4 object to a target array
func (b Bytes4) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, b[:]...), nil
}

// UnmarshalSSZ ssz unmarshals the Bytes4 object
func (b *Bytes4) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 4 {
		return bufferSize(len(buf), 4)
	}
	copy(b[:], buf)
	return nil
}

// HashTreeRoot ssz hashes the Bytes4 object
func (b Bytes4) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the Bytes4 object with a hasher
func (b Bytes4) HashTreeRootWith(hh *ssz.Hasher) error {
	hh.PutBytes(b[:])
	return nil
}

// Bytes32 is a 32 byte root, hash or domain.
type Bytes32 [32]byte

// Bytes32FromSlice copies b into a Bytes32. It fails unless len(b) == 32.
func Bytes32FromSlice(b []byte) (Bytes32, error) {
	var v Bytes32
	if err := fixedFromSlice(b, v[:]); err != nil {
		return Bytes32{}, err
	}
	return v, nil
}

func (b Bytes32) Bytes() []byte { return b[:] }
func (b Bytes32) String() string { return EncodeHex(b[:]) }
func (b Bytes32) Compare(o Bytes32) int { return bytes.Compare(b[:], o[:]) }
func (b Bytes32) IsVariableSize() bool { return false }
func (b Bytes32) SizeSSZ() int { return 32 }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes32) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes32) UnmarshalJSON(input []byte) error {
	return unmarshalFixedJSON(input, b[:])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes32) UnmarshalText(input []byte) error {
	return unmarshalFixedText(input, b[:])
}

// MarshalSSZ ssz marshals the Bytes32 object
func (b Bytes32) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, 32))
}

// MarshalSSZTo ssz marshals the Bytes32 object to a target array
func (b Bytes32) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, b[:]...), nil
}

// UnmarshalSSZ ssz unmarshals the Bytes32 object
func (b *Bytes32) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 32 {
		return bufferSize(len(buf), 32)
	}
	copy(b[:], buf)
	return nil
}

// HashTreeRoot ssz hashes the Bytes32 object
func (b Bytes32) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the Bytes32 object with a hasher
func (b Bytes32) HashTreeRootWith(hh *ssz.Hasher) error {
	hh.PutBytes(b[:])
	return nil
}

// Hash converts the root into a go-ethereum hash.
func (b Bytes32) Hash() common.Hash { return common.Hash(b) }

// Bytes48 holds a compressed BLS12-381 public key.
type Bytes48 [48]byte

// Bytes48FromSlice copies b into a Bytes48. It fails unless len(b) == 48.
func Bytes48FromSlice(b []byte) (Bytes48, error) {
	var v Bytes48
	if err := fixedFromSlice(b, v[:]); err != nil {
		return Bytes48{}, err
	}
	return v, nil
}

func (b Bytes48) Bytes() []byte { return b[:] }
func (b Bytes48) String() string { return EncodeHex(b[:]) }
func (b Bytes48) Compare(o Bytes48) int { return bytes.Compare(b[:], o[:]) }
func (b Bytes48) IsVariableSize() bool { return false }
func (b Bytes48) SizeSSZ() int { return 48 }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes48) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes48) UnmarshalJSON(input []byte) error {
	return unmarshalFixedJSON(input, b[:])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes48) UnmarshalText(input []byte) error {
	return unmarshalFixedText(input, b[:])
}

// MarshalSSZ ssz marshals the Bytes48 object
func (b Bytes48) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, 48))
}

// MarshalSSZTo ssz marshals the Bytes48 object to a target array
func (b Bytes48) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, b[:]...), nil
}

// UnmarshalSSZ ssz unmarshals the Bytes48 object
func (b *Bytes48) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 48 {
		return bufferSize(len(buf), 48)
	}
	copy(b[:], buf)
	return nil
}

// HashTreeRoot ssz hashes the Bytes48 object
func (b Bytes48) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the Bytes48 object with a hasher
func (b Bytes48) HashTreeRootWith(hh *ssz.Hasher) error {
	hh.PutBytes(b[:])
	return nil
}

// Bytes96 holds a BLS signature or an uncompressed public key.
type Bytes96 [96]byte

// Bytes96FromSlice copies b into a Bytes96. It fails unless len(b) == 96.
func Bytes96FromSlice(b []byte) (Bytes96, error) {
	var v Bytes96
	if err := fixedFromSlice(b, v[:]); err != nil {
		return Bytes96{}, err
	}
	return v, nil
}

func (b Bytes96) Bytes() []byte { return b[:] }
func (b Bytes96) String() string { return EncodeHex(b[:]) }
func (b Bytes96) Compare(o Bytes96) int { return bytes.Compare(b[:], o[:]) }
func (b Bytes96) IsVariableSize() bool { return false }
func (b Bytes96) SizeSSZ() int { return 96 }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes96) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes96) UnmarshalJSON(input []byte) error {
	return unmarshalFixedJSON(input, b[:])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes96) UnmarshalText(input []byte) error {
	return unmarshalFixedText(input, b[:])
}

// MarshalSSZ ssz marshals the Bytes96 object
func (b Bytes96) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, 96))
}

// MarshalSSZTo ssz marshals the Bytes96 object to a target array
func (b Bytes96) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, b[:]...), nil
}

// UnmarshalSSZ ssz unmarshals the Bytes96 object
func (b *Bytes96) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 96 {
		return bufferSize(len(buf), 96)
	}
	copy(b[:], buf)
	return nil
}

// HashTreeRoot ssz hashes the Bytes96 object
func (b Bytes96) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the Bytes96 object with a hasher
func (b Bytes96) HashTreeRootWith(hh *ssz.Hasher) error {
	hh.PutBytes(b[:])
	return nil
}

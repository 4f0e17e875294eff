package types

import ssz "github.com/ferranbt/fastssz"

// SigningData is hashed to produce the message a sync committee member signs.
type SigningData struct {
	ObjectRoot Root   `json:"object_root"`
	Domain     Domain `json:"domain"`
}

func (s *SigningData) fields() []Object {
	return []Object{&s.ObjectRoot, &s.Domain}
}

func (s *SigningData) IsVariableSize() bool { return false }

// SizeSSZ returns the ssz encoded size in bytes for the SigningData object
func (s *SigningData) SizeSSZ() int { return 64 }

// MarshalSSZ ssz marshals the SigningData object
func (s *SigningData) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SigningData object to a target array
func (s *SigningData) MarshalSSZTo(buf []byte) ([]byte, error) {
	return marshalFields(buf, s.fields()...)
}

// UnmarshalSSZ ssz unmarshals the SigningData object
func (s *SigningData) UnmarshalSSZ(buf []byte) error {
	return unmarshalFields(buf, s.fields()...)
}

// HashTreeRoot ssz hashes the SigningData object
func (s *SigningData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SigningData object with a hasher
func (s *SigningData) HashTreeRootWith(hh *ssz.Hasher) error {
	return hashFields(hh, s.fields()...)
}

// ForkData is hashed into the domain separators of signed messages so that
// signatures do not replay across forks or chains.
type ForkData struct {
	CurrentVersion        Version `json:"current_version"`
	GenesisValidatorsRoot Root    `json:"genesis_validator_root"`
}

func (f *ForkData) fields() []Object {
	return []Object{&f.CurrentVersion, &f.GenesisValidatorsRoot}
}

func (f *ForkData) IsVariableSize() bool { return false }

// SizeSSZ returns the ssz encoded size in bytes for the ForkData object
func (f *ForkData) SizeSSZ() int { return 36 }

// MarshalSSZ ssz marshals the ForkData object
func (f *ForkData) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(f)
}

// MarshalSSZTo ssz marshals the ForkData object to a target array
func (f *ForkData) MarshalSSZTo(buf []byte) ([]byte, error) {
	return marshalFields(buf, f.fields()...)
}

// UnmarshalSSZ ssz unmarshals the ForkData object
func (f *ForkData) UnmarshalSSZ(buf []byte) error {
	return unmarshalFields(buf, f.fields()...)
}

// HashTreeRoot ssz hashes the ForkData object
func (f *ForkData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(f)
}

// HashTreeRootWith ssz hashes the ForkData object with a hasher
func (f *ForkData) HashTreeRootWith(hh *ssz.Hasher) error {
	return hashFields(hh, f.fields()...)
}

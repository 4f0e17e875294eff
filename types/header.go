package types

import (
	"encoding/json"

	ssz "github.com/ferranbt/fastssz"
)

// Header is a beacon block header.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/phase0/beacon-chain.md#beaconblockheader
type Header struct {
	Slot          U64     `json:"slot"`
	ProposerIndex U64     `json:"proposer_index"`
	ParentRoot    Bytes32 `json:"parent_root"`
	StateRoot     Bytes32 `json:"state_root"`
	BodyRoot      Bytes32 `json:"body_root"`
}

const headerSize = 8 + 8 + 32 + 32 + 32

func (h *Header) fields() []Object {
	return []Object{&h.Slot, &h.ProposerIndex, &h.ParentRoot, &h.StateRoot, &h.BodyRoot}
}

// UnmarshalJSON decodes a header. Since capella the light client endpoints of
// the beacon API wrap the header as {"beacon": {...}}; both forms are accepted.
func (h *Header) UnmarshalJSON(input []byte) error {
	type Header struct {
		Slot          *U64     `json:"slot"`
		ProposerIndex *U64     `json:"proposer_index"`
		ParentRoot    *Bytes32 `json:"parent_root"`
		StateRoot     *Bytes32 `json:"state_root"`
		BodyRoot      *Bytes32 `json:"body_root"`
	}
	var wrapped struct {
		Beacon *Header `json:"beacon"`
	}
	if err := json.Unmarshal(input, &wrapped); err != nil {
		return err
	}
	dec := wrapped.Beacon
	if dec == nil {
		dec = new(Header)
		if err := json.Unmarshal(input, dec); err != nil {
			return err
		}
	}
	if dec.Slot == nil {
		return missingField("slot", "Header")
	}
	if dec.ProposerIndex == nil {
		return missingField("proposer_index", "Header")
	}
	if dec.ParentRoot == nil {
		return missingField("parent_root", "Header")
	}
	if dec.StateRoot == nil {
		return missingField("state_root", "Header")
	}
	if dec.BodyRoot == nil {
		return missingField("body_root", "Header")
	}
	h.Slot = *dec.Slot
	h.ProposerIndex = *dec.ProposerIndex
	h.ParentRoot = *dec.ParentRoot
	h.StateRoot = *dec.StateRoot
	h.BodyRoot = *dec.BodyRoot
	return nil
}

func (h *Header) IsVariableSize() bool { return false }

// SizeSSZ returns the ssz encoded size in bytes for the Header object
func (h *Header) SizeSSZ() int { return headerSize }

// MarshalSSZ ssz marshals the Header object
func (h *Header) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(h)
}

// MarshalSSZTo ssz marshals the Header object to a target array
func (h *Header) MarshalSSZTo(buf []byte) ([]byte, error) {
	return marshalFields(buf, h.fields()...)
}

// UnmarshalSSZ ssz unmarshals the Header object
func (h *Header) UnmarshalSSZ(buf []byte) error {
	return unmarshalFields(buf, h.fields()...)
}

// HashTreeRoot ssz hashes the Header object
func (h *Header) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(h)
}

// HashTreeRootWith ssz hashes the Header object with a hasher
func (h *Header) HashTreeRootWith(hh *ssz.Hasher) error {
	return hashFields(hh, h.fields()...)
}

package types

import (
	"encoding/json"

	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// SyncCommitteeSize is the number of validators in a sync committee.
const SyncCommitteeSize = 512

const (
	syncCommitteeSize = SyncCommitteeSize*48 + 48
	syncBitsSize      = SyncCommitteeSize / 8
	syncAggregateSize = syncBitsSize + 96
)

// SyncCommittee is the set of validators signing headers during one sync
// committee period. The position of a key is the member's committee index.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/beacon-chain.md#synccommittee
type SyncCommittee struct {
	Pubkeys         [SyncCommitteeSize]BLSPubKey `json:"pubkeys"`
	AggregatePubkey BLSPubKey                    `json:"aggregate_pubkey"`
}

// NewSyncCommittee builds a committee from exactly SyncCommitteeSize keys.
func NewSyncCommittee(pubkeys []BLSPubKey, aggregate BLSPubKey) (*SyncCommittee, error) {
	if len(pubkeys) != SyncCommitteeSize {
		return nil, errors.Wrapf(ErrSequenceLength, "sync committee has %d pubkeys, want %d", len(pubkeys), SyncCommitteeSize)
	}
	c := &SyncCommittee{AggregatePubkey: aggregate}
	copy(c.Pubkeys[:], pubkeys)
	return c, nil
}

// UnmarshalJSON decodes a committee, rejecting any pubkey count other than
// SyncCommitteeSize instead of truncating or zero-filling.
func (s *SyncCommittee) UnmarshalJSON(input []byte) error {
	var dec struct {
		Pubkeys         []BLSPubKey `json:"pubkeys"`
		AggregatePubkey *BLSPubKey  `json:"aggregate_pubkey"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Pubkeys == nil {
		return missingField("pubkeys", "SyncCommittee")
	}
	if dec.AggregatePubkey == nil {
		return missingField("aggregate_pubkey", "SyncCommittee")
	}
	c, err := NewSyncCommittee(dec.Pubkeys, *dec.AggregatePubkey)
	if err != nil {
		return err
	}
	*s = *c
	return nil
}

func (s *SyncCommittee) IsVariableSize() bool { return false }

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommittee object
func (s *SyncCommittee) SizeSSZ() int { return syncCommitteeSize }

// MarshalSSZ ssz marshals the SyncCommittee object
func (s *SyncCommittee) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncCommittee object to a target array
func (s *SyncCommittee) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	for i := range s.Pubkeys {
		if dst, err = s.Pubkeys[i].MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return s.AggregatePubkey.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the SyncCommittee object
func (s *SyncCommittee) UnmarshalSSZ(buf []byte) error {
	if len(buf) != syncCommitteeSize {
		return bufferSize(len(buf), syncCommitteeSize)
	}
	for i := range s.Pubkeys {
		if err := s.Pubkeys[i].UnmarshalSSZ(buf[i*48 : (i+1)*48]); err != nil {
			return err
		}
	}
	return s.AggregatePubkey.UnmarshalSSZ(buf[SyncCommitteeSize*48:])
}

// HashTreeRoot ssz hashes the SyncCommittee object
func (s *SyncCommittee) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncCommittee object with a hasher
func (s *SyncCommittee) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	// Field (0) 'Pubkeys'
	{
		subIndx := hh.Index()
		for i := range s.Pubkeys {
			if err := s.Pubkeys[i].HashTreeRootWith(hh); err != nil {
				return err
			}
		}
		hh.Merkleize(subIndx)
	}

	// Field (1) 'AggregatePubkey'
	if err := s.AggregatePubkey.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// SyncAggregate is the aggregate signature of the participating members of a
// sync committee. Bit i of SyncCommitteeBits is set if member i signed.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/beacon-chain.md#syncaggregate
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512
	SyncCommitteeSignature SignatureBytes
}

// NewSyncAggregate returns an aggregate with no participants and a zero signature.
func NewSyncAggregate() SyncAggregate {
	return SyncAggregate{SyncCommitteeBits: bitfield.NewBitvector512()}
}

// ParticipantCount returns the number of set bits.
func (s *SyncAggregate) ParticipantCount() uint64 {
	if len(s.SyncCommitteeBits) != syncBitsSize {
		return 0
	}
	return s.SyncCommitteeBits.Count()
}

// bits returns the encoded bit vector. A nil vector is the zero value and
// encodes as no participants; any other length is rejected.
func (s SyncAggregate) bits() ([]byte, error) {
	if s.SyncCommitteeBits == nil {
		return make([]byte, syncBitsSize), nil
	}
	if len(s.SyncCommitteeBits) != syncBitsSize {
		return nil, lengthMismatch(len(s.SyncCommitteeBits), syncBitsSize)
	}
	return s.SyncCommitteeBits, nil
}

type syncAggregateJSON struct {
	SyncCommitteeBits      *string         `json:"sync_committee_bits"`
	SyncCommitteeSignature *SignatureBytes `json:"sync_committee_signature"`
}

// MarshalJSON encodes the bits as 0x-prefixed hex, not base64.
func (s SyncAggregate) MarshalJSON() ([]byte, error) {
	raw, err := s.bits()
	if err != nil {
		return nil, err
	}
	bits := EncodeHex(raw)
	return json.Marshal(&syncAggregateJSON{
		SyncCommitteeBits:      &bits,
		SyncCommitteeSignature: &s.SyncCommitteeSignature,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SyncAggregate) UnmarshalJSON(input []byte) error {
	var dec syncAggregateJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.SyncCommitteeBits == nil {
		return missingField("sync_committee_bits", "SyncAggregate")
	}
	if dec.SyncCommitteeSignature == nil {
		return missingField("sync_committee_signature", "SyncAggregate")
	}
	bits := bitfield.NewBitvector512()
	if err := unmarshalFixedText([]byte(*dec.SyncCommitteeBits), bits); err != nil {
		return err
	}
	s.SyncCommitteeBits = bits
	s.SyncCommitteeSignature = *dec.SyncCommitteeSignature
	return nil
}

func (s *SyncAggregate) IsVariableSize() bool { return false }

// SizeSSZ returns the ssz encoded size in bytes for the SyncAggregate object
func (s *SyncAggregate) SizeSSZ() int { return syncAggregateSize }

// MarshalSSZ ssz marshals the SyncAggregate object
func (s *SyncAggregate) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncAggregate object to a target array
func (s *SyncAggregate) MarshalSSZTo(buf []byte) ([]byte, error) {
	// Field (0) 'SyncCommitteeBits'
	bits, err := s.bits()
	if err != nil {
		return nil, err
	}
	dst := append(buf, bits...)

	// Field (1) 'SyncCommitteeSignature'
	return s.SyncCommitteeSignature.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the SyncAggregate object
func (s *SyncAggregate) UnmarshalSSZ(buf []byte) error {
	if len(buf) != syncAggregateSize {
		return bufferSize(len(buf), syncAggregateSize)
	}
	s.SyncCommitteeBits = append(bitfield.Bitvector512{}, buf[:syncBitsSize]...)
	return s.SyncCommitteeSignature.UnmarshalSSZ(buf[syncBitsSize:])
}

// HashTreeRoot ssz hashes the SyncAggregate object
func (s *SyncAggregate) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncAggregate object with a hasher
func (s *SyncAggregate) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	// Field (0) 'SyncCommitteeBits'
	bits, err := s.bits()
	if err != nil {
		return err
	}
	hh.PutBytes(bits)

	// Field (1) 'SyncCommitteeSignature'
	if err := s.SyncCommitteeSignature.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

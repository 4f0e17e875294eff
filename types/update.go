package types

import (
	"encoding/json"

	"github.com/prysmaticlabs/go-bitfield"
)

// Update proves a sync committee transition together with a finality proof.
// Branch lengths are carried as received; proof depth is checked by the
// consumer.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/light-client/sync-protocol.md#lightclientupdate
type Update struct {
	AttestedHeader          Header        `json:"attested_header"`
	NextSyncCommittee       SyncCommittee `json:"next_sync_committee"`
	NextSyncCommitteeBranch []Root        `json:"next_sync_committee_branch"`
	FinalizedHeader         Header        `json:"finalized_header"`
	FinalityBranch          []Root        `json:"finality_branch"`
	SyncAggregate           SyncAggregate `json:"sync_aggregate"`
	SignatureSlot           U64           `json:"signature_slot"`
}

// UnmarshalJSON implements json.Unmarshaler. All fields are required.
func (u *Update) UnmarshalJSON(input []byte) error {
	var dec struct {
		AttestedHeader          *Header         `json:"attested_header"`
		NextSyncCommittee       *SyncCommittee  `json:"next_sync_committee"`
		NextSyncCommitteeBranch json.RawMessage `json:"next_sync_committee_branch"`
		FinalizedHeader         *Header         `json:"finalized_header"`
		FinalityBranch          json.RawMessage `json:"finality_branch"`
		SyncAggregate           *SyncAggregate  `json:"sync_aggregate"`
		SignatureSlot           *U64            `json:"signature_slot"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.AttestedHeader == nil {
		return missingField("attested_header", "Update")
	}
	if dec.NextSyncCommittee == nil {
		return missingField("next_sync_committee", "Update")
	}
	nextBranch, err := decodeBranch(dec.NextSyncCommitteeBranch, "next_sync_committee_branch", "Update")
	if err != nil {
		return err
	}
	if dec.FinalizedHeader == nil {
		return missingField("finalized_header", "Update")
	}
	finalityBranch, err := decodeBranch(dec.FinalityBranch, "finality_branch", "Update")
	if err != nil {
		return err
	}
	if dec.SyncAggregate == nil {
		return missingField("sync_aggregate", "Update")
	}
	if dec.SignatureSlot == nil {
		return missingField("signature_slot", "Update")
	}
	u.AttestedHeader = *dec.AttestedHeader
	u.NextSyncCommittee = *dec.NextSyncCommittee
	u.NextSyncCommitteeBranch = nextBranch
	u.FinalizedHeader = *dec.FinalizedHeader
	u.FinalityBranch = finalityBranch
	u.SyncAggregate = *dec.SyncAggregate
	u.SignatureSlot = *dec.SignatureSlot
	return nil
}

// FinalityUpdate is the finality-only variant of Update.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/light-client/sync-protocol.md#lightclientfinalityupdate
type FinalityUpdate struct {
	AttestedHeader  Header        `json:"attested_header"`
	FinalizedHeader Header        `json:"finalized_header"`
	FinalityBranch  []Root        `json:"finality_branch"`
	SyncAggregate   SyncAggregate `json:"sync_aggregate"`
	SignatureSlot   U64           `json:"signature_slot"`
}

// UnmarshalJSON implements json.Unmarshaler. All fields are required.
func (u *FinalityUpdate) UnmarshalJSON(input []byte) error {
	var dec struct {
		AttestedHeader  *Header         `json:"attested_header"`
		FinalizedHeader *Header         `json:"finalized_header"`
		FinalityBranch  json.RawMessage `json:"finality_branch"`
		SyncAggregate   *SyncAggregate  `json:"sync_aggregate"`
		SignatureSlot   *U64            `json:"signature_slot"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.AttestedHeader == nil {
		return missingField("attested_header", "FinalityUpdate")
	}
	if dec.FinalizedHeader == nil {
		return missingField("finalized_header", "FinalityUpdate")
	}
	finalityBranch, err := decodeBranch(dec.FinalityBranch, "finality_branch", "FinalityUpdate")
	if err != nil {
		return err
	}
	if dec.SyncAggregate == nil {
		return missingField("sync_aggregate", "FinalityUpdate")
	}
	if dec.SignatureSlot == nil {
		return missingField("signature_slot", "FinalityUpdate")
	}
	u.AttestedHeader = *dec.AttestedHeader
	u.FinalizedHeader = *dec.FinalizedHeader
	u.FinalityBranch = finalityBranch
	u.SyncAggregate = *dec.SyncAggregate
	u.SignatureSlot = *dec.SignatureSlot
	return nil
}

// OptimisticUpdate carries only a signed attested header.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/light-client/sync-protocol.md#lightclientoptimisticupdate
type OptimisticUpdate struct {
	AttestedHeader Header        `json:"attested_header"`
	SyncAggregate  SyncAggregate `json:"sync_aggregate"`
	SignatureSlot  U64           `json:"signature_slot"`
}

// UnmarshalJSON implements json.Unmarshaler. All fields are required.
func (u *OptimisticUpdate) UnmarshalJSON(input []byte) error {
	var dec struct {
		AttestedHeader *Header        `json:"attested_header"`
		SyncAggregate  *SyncAggregate `json:"sync_aggregate"`
		SignatureSlot  *U64           `json:"signature_slot"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.AttestedHeader == nil {
		return missingField("attested_header", "OptimisticUpdate")
	}
	if dec.SyncAggregate == nil {
		return missingField("sync_aggregate", "OptimisticUpdate")
	}
	if dec.SignatureSlot == nil {
		return missingField("signature_slot", "OptimisticUpdate")
	}
	u.AttestedHeader = *dec.AttestedHeader
	u.SyncAggregate = *dec.SyncAggregate
	u.SignatureSlot = *dec.SignatureSlot
	return nil
}

// Bootstrap is the trusted starting point of a light client: a header and the
// sync committee of its period, proven against the header's state root.
//
// See https://github.com/ethereum/consensus-specs/blob/dev/specs/altair/light-client/sync-protocol.md#lightclientbootstrap
type Bootstrap struct {
	Header                     Header        `json:"header"`
	CurrentSyncCommittee       SyncCommittee `json:"current_sync_committee"`
	CurrentSyncCommitteeBranch []Root        `json:"current_sync_committee_branch"`
}

// UnmarshalJSON implements json.Unmarshaler. All fields are required.
func (b *Bootstrap) UnmarshalJSON(input []byte) error {
	var dec struct {
		Header                     *Header         `json:"header"`
		CurrentSyncCommittee       *SyncCommittee  `json:"current_sync_committee"`
		CurrentSyncCommitteeBranch json.RawMessage `json:"current_sync_committee_branch"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Header == nil {
		return missingField("header", "Bootstrap")
	}
	if dec.CurrentSyncCommittee == nil {
		return missingField("current_sync_committee", "Bootstrap")
	}
	branch, err := decodeBranch(dec.CurrentSyncCommitteeBranch, "current_sync_committee_branch", "Bootstrap")
	if err != nil {
		return err
	}
	b.Header = *dec.Header
	b.CurrentSyncCommittee = *dec.CurrentSyncCommittee
	b.CurrentSyncCommitteeBranch = branch
	return nil
}

// GenericUpdate represents Update, FinalityUpdate and OptimisticUpdate in one
// shape. The fields a message does not carry are absent. It exists in memory
// only and has no wire encoding.
type GenericUpdate struct {
	AttestedHeader          Header
	SyncAggregate           SyncAggregate
	SignatureSlot           uint64
	NextSyncCommittee       Optional[SyncCommittee]
	NextSyncCommitteeBranch Optional[[]Root]
	FinalizedHeader         Optional[Header]
	FinalityBranch          Optional[[]Root]
}

// NewGenericUpdate promotes a full update. Every optional field is present and
// the result shares no memory with u.
func NewGenericUpdate(u *Update) GenericUpdate {
	return GenericUpdate{
		AttestedHeader:          u.AttestedHeader,
		SyncAggregate:           copySyncAggregate(u.SyncAggregate),
		SignatureSlot:           u.SignatureSlot.Uint64(),
		NextSyncCommittee:       Some(u.NextSyncCommittee),
		NextSyncCommitteeBranch: Some(copyRoots(u.NextSyncCommitteeBranch)),
		FinalizedHeader:         Some(u.FinalizedHeader),
		FinalityBranch:          Some(copyRoots(u.FinalityBranch)),
	}
}

// NewGenericFinalityUpdate promotes a finality update; the committee fields
// are absent.
func NewGenericFinalityUpdate(u *FinalityUpdate) GenericUpdate {
	return GenericUpdate{
		AttestedHeader:          u.AttestedHeader,
		SyncAggregate:           copySyncAggregate(u.SyncAggregate),
		SignatureSlot:           u.SignatureSlot.Uint64(),
		NextSyncCommittee:       None[SyncCommittee](),
		NextSyncCommitteeBranch: None[[]Root](),
		FinalizedHeader:         Some(u.FinalizedHeader),
		FinalityBranch:          Some(copyRoots(u.FinalityBranch)),
	}
}

// NewGenericOptimisticUpdate promotes an optimistic update; only the attested
// header, aggregate and signature slot are present.
func NewGenericOptimisticUpdate(u *OptimisticUpdate) GenericUpdate {
	return GenericUpdate{
		AttestedHeader:          u.AttestedHeader,
		SyncAggregate:           copySyncAggregate(u.SyncAggregate),
		SignatureSlot:           u.SignatureSlot.Uint64(),
		NextSyncCommittee:       None[SyncCommittee](),
		NextSyncCommitteeBranch: None[[]Root](),
		FinalizedHeader:         None[Header](),
		FinalityBranch:          None[[]Root](),
	}
}

// decodeBranch decodes a required proof branch. An explicit null is a nil
// branch, only an absent key is a missing field.
func decodeBranch(raw json.RawMessage, name, typ string) ([]Root, error) {
	if raw == nil {
		return nil, missingField(name, typ)
	}
	var branch []Root
	if err := json.Unmarshal(raw, &branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func copyRoots(roots []Root) []Root {
	if roots == nil {
		return nil
	}
	return append(make([]Root, 0, len(roots)), roots...)
}

func copySyncAggregate(s SyncAggregate) SyncAggregate {
	if s.SyncCommitteeBits != nil {
		s.SyncCommitteeBits = append(bitfield.Bitvector512{}, s.SyncCommitteeBits...)
	}
	return s
}

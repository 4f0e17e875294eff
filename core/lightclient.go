package core

import (
	"math/bits"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/config"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm/shared/hashutil"
)

// getSubtreeIndex returns the position of a generalized index within its
// layer of the tree.
func getSubtreeIndex(index uint64) uint64 {
	return index - 1<<(bits.Len64(index)-1)
}

// IsValidMerkleBranch checks that leaf sits at index in the tree of the given
// depth whose root is root. A branch of the wrong length never verifies.
func IsValidMerkleBranch(leaf types.Root, branch []types.Root, depth int, index uint64, root types.Root) bool {
	if len(branch) != depth {
		return false
	}
	var buf [64]byte
	value := leaf
	for i := 0; i < depth; i++ {
		if (index>>uint(i))&1 == 1 {
			copy(buf[:32], branch[i][:])
			copy(buf[32:], value[:])
		} else {
			copy(buf[:32], value[:])
			copy(buf[32:], branch[i][:])
		}
		value = hashutil.Hash(buf[:])
	}
	return value == root
}

// IsFinalityProofValid checks the finalized header against the attested
// header's state root.
func IsFinalityProofValid(attested, finalized *types.Header, branch []types.Root) bool {
	leaf, err := finalized.HashTreeRoot()
	if err != nil {
		return false
	}
	return IsValidMerkleBranch(leaf, branch, config.FINALIZED_ROOT_DEPTH, getSubtreeIndex(config.FINALIZED_ROOT_INDEX), attested.StateRoot)
}

// IsNextCommitteeProofValid checks the next sync committee against the
// attested header's state root.
func IsNextCommitteeProofValid(attested *types.Header, committee *types.SyncCommittee, branch []types.Root) bool {
	leaf, err := committee.HashTreeRoot()
	if err != nil {
		return false
	}
	return IsValidMerkleBranch(leaf, branch, config.NEXT_SYNC_COMMITTEE_DEPTH, getSubtreeIndex(config.NEXT_SYNC_COMMITTEE_INDEX), attested.StateRoot)
}

// IsCurrentCommitteeProofValid checks a bootstrap committee against the
// header's state root.
func IsCurrentCommitteeProofValid(header *types.Header, committee *types.SyncCommittee, branch []types.Root) bool {
	leaf, err := committee.HashTreeRoot()
	if err != nil {
		return false
	}
	return IsValidMerkleBranch(leaf, branch, config.CURRENT_SYNC_COMMITTEE_DEPTH, getSubtreeIndex(config.CURRENT_SYNC_COMMITTEE_INDEX), header.StateRoot)
}

// ParticipatingKeys returns the keys of the members whose bit is set, in
// committee order. A bitvector of the wrong length selects nothing.
func ParticipatingKeys(committee *types.SyncCommittee, participation bitfield.Bitvector512) []types.BLSPubKey {
	if len(participation) != types.SyncCommitteeSize/8 {
		return nil
	}
	keys := make([]types.BLSPubKey, 0, participation.Count())
	for i := uint64(0); i < types.SyncCommitteeSize; i++ {
		if participation.BitAt(i) {
			keys = append(keys, committee.Pubkeys[i])
		}
	}
	return keys
}

package core

import (
	"crypto/sha256"
	"testing"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/config"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchRoot folds leaf with branch up to the root, the reference for what a
// valid proof commits to.
func branchRoot(leaf types.Root, branch []types.Root, index uint64) types.Root {
	value := leaf
	for i, sibling := range branch {
		if (index>>uint(i))&1 == 1 {
			value = sha256.Sum256(append(sibling[:], value[:]...))
		} else {
			value = sha256.Sum256(append(value[:], sibling[:]...))
		}
	}
	return value
}

func testBranch(depth int, seed byte) []types.Root {
	branch := make([]types.Root, depth)
	for i := range branch {
		branch[i] = types.Root{seed, byte(i)}
	}
	return branch
}

func TestGetSubtreeIndex(t *testing.T) {
	assert.Equal(t, uint64(41), getSubtreeIndex(config.FINALIZED_ROOT_INDEX))
	assert.Equal(t, uint64(22), getSubtreeIndex(config.CURRENT_SYNC_COMMITTEE_INDEX))
	assert.Equal(t, uint64(23), getSubtreeIndex(config.NEXT_SYNC_COMMITTEE_INDEX))
	assert.Equal(t, uint64(0), getSubtreeIndex(1))
}

func TestIsValidMerkleBranch(t *testing.T) {
	// Eight leaves, proof for leaf 5.
	leaves := make([]types.Root, 8)
	for i := range leaves {
		leaves[i] = types.Root{byte(i + 1)}
	}
	h := func(a, b types.Root) types.Root { return sha256.Sum256(append(a[:], b[:]...)) }
	n01, n23, n45, n67 := h(leaves[0], leaves[1]), h(leaves[2], leaves[3]), h(leaves[4], leaves[5]), h(leaves[6], leaves[7])
	n0123, n4567 := h(n01, n23), h(n45, n67)
	root := h(n0123, n4567)

	branch := []types.Root{leaves[4], n67, n0123}
	assert.True(t, IsValidMerkleBranch(leaves[5], branch, 3, 5, root))
	assert.False(t, IsValidMerkleBranch(leaves[5], branch, 3, 4, root))
	assert.False(t, IsValidMerkleBranch(leaves[4], branch, 3, 5, root))
	assert.False(t, IsValidMerkleBranch(leaves[5], branch[:2], 3, 5, root))
	assert.False(t, IsValidMerkleBranch(leaves[5], branch, 2, 5, root))

	tampered := append([]types.Root{}, branch...)
	tampered[1][0] ^= 0xff
	assert.False(t, IsValidMerkleBranch(leaves[5], tampered, 3, 5, root))

	// Depth zero: the leaf is the root.
	assert.True(t, IsValidMerkleBranch(root, nil, 0, 0, root))
}

func TestIsFinalityProofValid(t *testing.T) {
	finalized := &types.Header{Slot: 5999936, BodyRoot: types.Root{0x0b}}
	leaf, err := finalized.HashTreeRoot()
	require.NoError(t, err)
	branch := testBranch(config.FINALIZED_ROOT_DEPTH, 0x69)

	attested := &types.Header{Slot: 6000032}
	attested.StateRoot = branchRoot(leaf, branch, getSubtreeIndex(config.FINALIZED_ROOT_INDEX))
	assert.True(t, IsFinalityProofValid(attested, finalized, branch))

	assert.False(t, IsFinalityProofValid(attested, finalized, branch[:5]))
	assert.False(t, IsFinalityProofValid(attested, finalized, append(branch, types.Root{})))
	finalized.Slot++
	assert.False(t, IsFinalityProofValid(attested, finalized, branch))
}

func testCommittee() *types.SyncCommittee {
	c := &types.SyncCommittee{AggregatePubkey: types.BLSPubKey{0xaa}}
	for i := range c.Pubkeys {
		c.Pubkeys[i][0] = byte(i)
		c.Pubkeys[i][1] = byte(i >> 8)
	}
	return c
}

func TestCommitteeProofs(t *testing.T) {
	committee := testCommittee()
	leaf, err := committee.HashTreeRoot()
	require.NoError(t, err)

	branch := testBranch(config.NEXT_SYNC_COMMITTEE_DEPTH, 0x55)
	attested := &types.Header{StateRoot: branchRoot(leaf, branch, getSubtreeIndex(config.NEXT_SYNC_COMMITTEE_INDEX))}
	assert.True(t, IsNextCommitteeProofValid(attested, committee, branch))
	// Same branch, sibling position: current and next committee must not be confused.
	assert.False(t, IsCurrentCommitteeProofValid(attested, committee, branch))

	branch = testBranch(config.CURRENT_SYNC_COMMITTEE_DEPTH, 0x36)
	header := &types.Header{StateRoot: branchRoot(leaf, branch, getSubtreeIndex(config.CURRENT_SYNC_COMMITTEE_INDEX))}
	assert.True(t, IsCurrentCommitteeProofValid(header, committee, branch))

	committee.Pubkeys[7] = types.BLSPubKey{}
	assert.False(t, IsCurrentCommitteeProofValid(header, committee, branch))
}

func TestParticipatingKeys(t *testing.T) {
	committee := testCommittee()
	bits := bitfield.NewBitvector512()
	for _, i := range []uint64{0, 7, 300, 511} {
		bits.SetBitAt(i, true)
	}
	keys := ParticipatingKeys(committee, bits)
	require.Len(t, keys, 4)
	assert.Equal(t, committee.Pubkeys[0], keys[0])
	assert.Equal(t, committee.Pubkeys[7], keys[1])
	assert.Equal(t, committee.Pubkeys[300], keys[2])
	assert.Equal(t, committee.Pubkeys[511], keys[3])

	assert.Empty(t, ParticipatingKeys(committee, bitfield.NewBitvector512()))
	assert.Nil(t, ParticipatingKeys(committee, bitfield.Bitvector512{0xff}))
}

func TestEpochHelpers(t *testing.T) {
	assert.Equal(t, uint64(0), uint64(ComputeEpochAtSlot(31)))
	assert.Equal(t, uint64(1), uint64(ComputeEpochAtSlot(32)))
	assert.Equal(t, uint64(0), ComputeSyncCommitteePeriodAtSlot(8191))
	assert.Equal(t, uint64(1), ComputeSyncCommitteePeriodAtSlot(8192))
	assert.Equal(t, uint64(732), ComputeSyncCommitteePeriodAtSlot(6000032))
	assert.Equal(t, uint64(64), uint64(ComputeStartSlotAtEpoch(2)))
}

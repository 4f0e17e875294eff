package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoots(n int, seed byte) []Root {
	roots := make([]Root, n)
	for i := range roots {
		roots[i] = Root{seed, byte(i)}
	}
	return roots
}

func testUpdate() *Update {
	agg := NewSyncAggregate()
	for i := uint64(0); i < SyncCommitteeSize; i += 3 {
		agg.SyncCommitteeBits.SetBitAt(i, true)
	}
	agg.SyncCommitteeSignature[0] = 0xb0
	return &Update{
		AttestedHeader:          testHeader(6000032),
		NextSyncCommittee:       *testCommittee(),
		NextSyncCommitteeBranch: testRoots(5, 0x55),
		FinalizedHeader:         testHeader(5999936),
		FinalityBranch:          testRoots(6, 0x69),
		SyncAggregate:           agg,
		SignatureSlot:           6000033,
	}
}

// toMap round-trips v through JSON into a generic map so fields can be dropped.
func toMap(t *testing.T, v interface{}) map[string]interface{} {
	enc, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(enc, &m))
	return m
}

func TestUpdateJSON(t *testing.T) {
	u := testUpdate()
	enc, err := json.Marshal(u)
	require.NoError(t, err)

	var dec Update
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.Equal(t, *u, dec)
	for i := range dec.NextSyncCommittee.Pubkeys {
		require.Equal(t, testPubkey(i), dec.NextSyncCommittee.Pubkeys[i], "pubkey %d out of order", i)
	}
	assert.Equal(t, uint64(171), dec.SyncAggregate.ParticipantCount())
}

func TestUpdateJSONNilBranches(t *testing.T) {
	u := testUpdate()
	u.FinalityBranch = nil
	u.NextSyncCommitteeBranch = []Root{}
	enc, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(enc), `"finality_branch":null`)

	var dec Update
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.Equal(t, *u, dec)
	assert.Nil(t, dec.FinalityBranch)
	assert.NotNil(t, dec.NextSyncCommitteeBranch)

	fu := &FinalityUpdate{AttestedHeader: u.AttestedHeader, SyncAggregate: u.SyncAggregate}
	enc, err = json.Marshal(fu)
	require.NoError(t, err)
	var fdec FinalityUpdate
	require.NoError(t, json.Unmarshal(enc, &fdec))
	assert.Equal(t, *fu, fdec)

	b := &Bootstrap{CurrentSyncCommittee: *testCommittee()}
	enc, err = json.Marshal(b)
	require.NoError(t, err)
	var bdec Bootstrap
	require.NoError(t, json.Unmarshal(enc, &bdec))
	assert.Equal(t, *b, bdec)

	var bad Update
	m := toMap(t, testUpdate())
	m["finality_branch"] = []string{"0x01"}
	enc, err = json.Marshal(m)
	require.NoError(t, err)
	assert.ErrorIs(t, json.Unmarshal(enc, &bad), ErrLengthMismatch)
}

func TestUpdateZeroValue(t *testing.T) {
	var u Update
	enc, err := json.Marshal(&u)
	require.NoError(t, err)

	var dec Update
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.Equal(t, u.AttestedHeader, dec.AttestedHeader)
	assert.Nil(t, dec.FinalityBranch)
	assert.Equal(t, NewSyncAggregate(), dec.SyncAggregate)

	_, err = u.SyncAggregate.HashTreeRoot()
	require.NoError(t, err)
	g := NewGenericUpdate(&u)
	_, err = g.SyncAggregate.HashTreeRoot()
	require.NoError(t, err)
	for _, v := range []interface{}{&FinalityUpdate{}, &OptimisticUpdate{}} {
		_, err := json.Marshal(v)
		assert.NoError(t, err)
	}
}

func TestUpdateJSONMissingField(t *testing.T) {
	for _, field := range []string{
		"attested_header",
		"next_sync_committee",
		"next_sync_committee_branch",
		"finalized_header",
		"finality_branch",
		"sync_aggregate",
		"signature_slot",
	} {
		t.Run(field, func(t *testing.T) {
			m := toMap(t, testUpdate())
			delete(m, field)
			enc, err := json.Marshal(m)
			require.NoError(t, err)

			var dec Update
			err = json.Unmarshal(enc, &dec)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestUpdateJSONBadNesting(t *testing.T) {
	m := toMap(t, testUpdate())
	m["signature_slot"] = 6000033
	enc, err := json.Marshal(m)
	require.NoError(t, err)
	var dec Update
	assert.ErrorIs(t, json.Unmarshal(enc, &dec), ErrNumericParse)

	m = toMap(t, testUpdate())
	committee := m["next_sync_committee"].(map[string]interface{})
	committee["pubkeys"] = committee["pubkeys"].([]interface{})[1:]
	enc, err = json.Marshal(m)
	require.NoError(t, err)
	assert.ErrorIs(t, json.Unmarshal(enc, &dec), ErrSequenceLength)
}

func TestFinalityAndOptimisticUpdateJSON(t *testing.T) {
	u := testUpdate()
	fu := &FinalityUpdate{
		AttestedHeader:  u.AttestedHeader,
		FinalizedHeader: u.FinalizedHeader,
		FinalityBranch:  u.FinalityBranch,
		SyncAggregate:   u.SyncAggregate,
		SignatureSlot:   u.SignatureSlot,
	}
	enc, err := json.Marshal(fu)
	require.NoError(t, err)
	var fdec FinalityUpdate
	require.NoError(t, json.Unmarshal(enc, &fdec))
	assert.Equal(t, *fu, fdec)

	ou := &OptimisticUpdate{
		AttestedHeader: u.AttestedHeader,
		SyncAggregate:  u.SyncAggregate,
		SignatureSlot:  u.SignatureSlot,
	}
	enc, err = json.Marshal(ou)
	require.NoError(t, err)
	var odec OptimisticUpdate
	require.NoError(t, json.Unmarshal(enc, &odec))
	assert.Equal(t, *ou, odec)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{}`), &odec), ErrMissingField)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{}`), &fdec), ErrMissingField)
}

func TestBootstrapJSON(t *testing.T) {
	b := &Bootstrap{
		Header:                     testHeader(4000000),
		CurrentSyncCommittee:       *testCommittee(),
		CurrentSyncCommitteeBranch: testRoots(5, 0x36),
	}
	enc, err := json.Marshal(b)
	require.NoError(t, err)
	var dec Bootstrap
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.Equal(t, *b, dec)

	m := toMap(t, b)
	delete(m, "current_sync_committee_branch")
	enc, err = json.Marshal(m)
	require.NoError(t, err)
	assert.ErrorIs(t, json.Unmarshal(enc, &dec), ErrMissingField)
}

func TestNewGenericUpdate(t *testing.T) {
	u := testUpdate()
	g := NewGenericUpdate(u)

	assert.Equal(t, u.AttestedHeader, g.AttestedHeader)
	assert.Equal(t, uint64(6000033), g.SignatureSlot)
	committee, ok := g.NextSyncCommittee.Get()
	require.True(t, ok)
	assert.Equal(t, u.NextSyncCommittee, committee)
	finalized, ok := g.FinalizedHeader.Get()
	require.True(t, ok)
	assert.Equal(t, u.FinalizedHeader, finalized)
	assert.True(t, g.NextSyncCommitteeBranch.IsPresent())
	assert.True(t, g.FinalityBranch.IsPresent())

	// Mutating the source leaves the promoted update untouched.
	u.FinalityBranch[0] = Root{}
	u.NextSyncCommitteeBranch[0] = Root{}
	u.SyncAggregate.SyncCommitteeBits.SetBitAt(1, true)
	u.NextSyncCommittee.Pubkeys[0] = BLSPubKey{}

	branch, _ := g.FinalityBranch.Get()
	assert.Equal(t, Root{0x69, 0}, branch[0])
	branch, _ = g.NextSyncCommitteeBranch.Get()
	assert.Equal(t, Root{0x55, 0}, branch[0])
	assert.False(t, g.SyncAggregate.SyncCommitteeBits.BitAt(1))
	committee, _ = g.NextSyncCommittee.Get()
	assert.Equal(t, testPubkey(0), committee.Pubkeys[0])
}

func TestNewGenericFinalityUpdate(t *testing.T) {
	u := testUpdate()
	g := NewGenericFinalityUpdate(&FinalityUpdate{
		AttestedHeader:  u.AttestedHeader,
		FinalizedHeader: u.FinalizedHeader,
		FinalityBranch:  u.FinalityBranch,
		SyncAggregate:   u.SyncAggregate,
		SignatureSlot:   u.SignatureSlot,
	})
	assert.False(t, g.NextSyncCommittee.IsPresent())
	assert.False(t, g.NextSyncCommitteeBranch.IsPresent())
	assert.True(t, g.FinalizedHeader.IsPresent())
	assert.Equal(t, u.FinalityBranch, g.FinalityBranch.OrElse(nil))
}

func TestNewGenericOptimisticUpdate(t *testing.T) {
	u := testUpdate()
	g := NewGenericOptimisticUpdate(&OptimisticUpdate{
		AttestedHeader: u.AttestedHeader,
		SyncAggregate:  u.SyncAggregate,
		SignatureSlot:  u.SignatureSlot,
	})
	assert.Equal(t, u.AttestedHeader, g.AttestedHeader)
	assert.Equal(t, u.SyncAggregate, g.SyncAggregate)
	assert.False(t, g.NextSyncCommittee.IsPresent())
	assert.False(t, g.NextSyncCommitteeBranch.IsPresent())
	assert.False(t, g.FinalizedHeader.IsPresent())
	assert.False(t, g.FinalityBranch.IsPresent())
	assert.Equal(t, Header{}, g.FinalizedHeader.OrElse(Header{}))
}

func TestOptional(t *testing.T) {
	some := Some(U64(5))
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, U64(5), v)
	assert.Equal(t, U64(5), some.OrElse(9))

	none := None[U64]()
	v, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, U64(0), v)
	assert.Equal(t, U64(9), none.OrElse(9))

	var zero Optional[Header]
	assert.False(t, zero.IsPresent())
}

func TestNewLightClientStore(t *testing.T) {
	s := NewLightClientStore()
	assert.Equal(t, Header{}, s.FinalizedHeader)
	assert.Equal(t, Header{}, s.OptimisticHeader)
	assert.Equal(t, SyncCommittee{}, s.CurrentSyncCommittee)
	assert.False(t, s.NextSyncCommittee.IsPresent())
	assert.Zero(t, s.PreviousMaxActiveParticipants)
	assert.Zero(t, s.CurrentMaxActiveParticipants)
}

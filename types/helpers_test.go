package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// merkleRoot hashes leaves pairwise, padding with zero chunks up to the next
// power of two.
func merkleRoot(leaves [][32]byte) [32]byte {
	n := 1
	for n < len(leaves) {
		n *= 2
	}
	layer := make([][32]byte, n)
	copy(layer, leaves)
	for len(layer) > 1 {
		next := make([][32]byte, len(layer)/2)
		for i := range next {
			next[i] = hashPair(layer[2*i], layer[2*i+1])
		}
		layer = next
	}
	return layer[0]
}

func hashPair(a, b [32]byte) [32]byte {
	return sha256.Sum256(append(a[:], b[:]...))
}

func chunk(b []byte) [32]byte {
	var c [32]byte
	copy(c[:], b)
	return c
}

// chunks splits b into zero-padded 32 byte chunks.
func chunks(b []byte) [][32]byte {
	var res [][32]byte
	for len(b) > 0 {
		n := 32
		if len(b) < n {
			n = len(b)
		}
		res = append(res, chunk(b[:n]))
		b = b[n:]
	}
	return res
}

func uint64Chunk(v uint64) [32]byte {
	var c [32]byte
	binary.LittleEndian.PutUint64(c[:], v)
	return c
}

func filled(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func testPubkey(i int) BLSPubKey {
	var pk BLSPubKey
	pk[0] = byte(i)
	pk[1] = byte(i >> 8)
	pk[47] = 0xaa
	return pk
}

func testCommittee() *SyncCommittee {
	c := &SyncCommittee{AggregatePubkey: testPubkey(0xffff)}
	for i := range c.Pubkeys {
		c.Pubkeys[i] = testPubkey(i)
	}
	return c
}

func testHeader(slot uint64) Header {
	return Header{
		Slot:          U64(slot),
		ProposerIndex: U64(slot * 3),
		ParentRoot:    Bytes32{0x01, byte(slot)},
		StateRoot:     Bytes32{0x02, byte(slot)},
		BodyRoot:      Bytes32{0x03, byte(slot)},
	}
}

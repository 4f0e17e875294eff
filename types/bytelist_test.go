package types

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tinyLimit struct{}

func (tinyLimit) MaxLength() int { return 4 }

func TestNewByteList(t *testing.T) {
	l, err := NewByteList[ExtraDataLimit](filled(32, 0))
	require.NoError(t, err)
	assert.Equal(t, 32, l.Len())
	assert.Equal(t, 32, l.MaxLength())

	_, err = NewByteList[ExtraDataLimit](filled(33, 0))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	src := []byte{1, 2, 3}
	l, err = NewByteList[ExtraDataLimit](src)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, l.Bytes())

	empty, err := NewByteList[tinyLimit](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.IsVariableSize())
}

func TestByteListJSON(t *testing.T) {
	l, err := NewByteList[tinyLimit]([]byte{0xca, 0xfe})
	require.NoError(t, err)
	enc, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, `"0xcafe"`, string(enc))

	var dec ByteList[tinyLimit]
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.True(t, l.Equal(dec))
	assert.Equal(t, 0, l.Compare(dec))

	require.NoError(t, json.Unmarshal([]byte(`"0x"`), &dec))
	assert.Equal(t, 0, dec.Len())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"0x0102030405"`), &dec), ErrLengthMismatch)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"cafe"`), &dec), ErrInvalidHex)
}

func TestByteListSSZ(t *testing.T) {
	l, err := NewByteList[tinyLimit]([]byte{1, 2, 3})
	require.NoError(t, err)
	enc, err := l.MarshalSSZ()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, enc)
	assert.Equal(t, 3, l.SizeSSZ())

	var dec ByteList[tinyLimit]
	require.NoError(t, dec.UnmarshalSSZ(enc))
	assert.True(t, l.Equal(dec))
	assert.ErrorIs(t, dec.UnmarshalSSZ([]byte{1, 2, 3, 4, 5}), ErrLengthMismatch)
}

func TestByteListHashTreeRoot(t *testing.T) {
	lengthChunk := func(n int) [32]byte {
		var c [32]byte
		binary.LittleEndian.PutUint64(c[:], uint64(n))
		return c
	}
	for _, data := range [][]byte{nil, {0x01}, filled(31, 1), filled(32, 1)} {
		l, err := NewByteList[ExtraDataLimit](data)
		require.NoError(t, err)
		root, err := l.HashTreeRoot()
		require.NoError(t, err)
		// A 32 byte limit is a single chunk, mixed in with the length.
		assert.Equal(t, hashPair(chunk(data), lengthChunk(len(data))), root, "len %d", len(data))
	}

	// Two chunk limit: the data root is the pair of chunks.
	l, err := NewByteList[doubleLimit](filled(40, 1))
	require.NoError(t, err)
	root, err := l.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, hashPair(merkleRoot(chunks(filled(40, 1))), lengthChunk(40)), root)
}

type doubleLimit struct{}

func (doubleLimit) MaxLength() int { return 64 }

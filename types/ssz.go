package types

import ssz "github.com/ferranbt/fastssz"

// Object is the capability every SSZ value in this package has: binary
// encoding, size classification and hash tree root. Composite types implement
// it by delegating to their fields in declared order.
type Object interface {
	ssz.Marshaler
	ssz.Unmarshaler
	ssz.HashRoot

	IsVariableSize() bool
}

var (
	_ Object = (*Bytes4)(nil)
	_ Object = (*Bytes32)(nil)
	_ Object = (*Bytes48)(nil)
	_ Object = (*Bytes96)(nil)
	_ Object = (*ExtraData)(nil)
	_ Object = (*U64)(nil)
	_ Object = (*Header)(nil)
	_ Object = (*SyncCommittee)(nil)
	_ Object = (*SyncAggregate)(nil)
	_ Object = (*SigningData)(nil)
	_ Object = (*ForkData)(nil)
)

// unmarshalFields decodes consecutive fixed-size fields out of buf, which must
// be exactly as long as the fields together.
func unmarshalFields(buf []byte, fields ...Object) error {
	size := 0
	for _, f := range fields {
		size += f.SizeSSZ()
	}
	if len(buf) != size {
		return bufferSize(len(buf), size)
	}
	offset := 0
	for _, f := range fields {
		n := f.SizeSSZ()
		if err := f.UnmarshalSSZ(buf[offset : offset+n]); err != nil {
			return err
		}
		offset += n
	}
	return nil
}

// marshalFields appends the encoding of each field in order.
func marshalFields(dst []byte, fields ...Object) ([]byte, error) {
	var err error
	for _, f := range fields {
		if dst, err = f.MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// hashFields merkleizes the roots of fields as a container.
func hashFields(hh *ssz.Hasher, fields ...Object) error {
	indx := hh.Index()
	for _, f := range fields {
		if err := f.HashTreeRootWith(hh); err != nil {
			return err
		}
	}
	hh.Merkleize(indx)
	return nil
}

package types

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm/shared/bls"
)

// PublicKey decodes the compressed key into a BLS12-381 point for the
// signature verification done by the caller.
func (b Bytes48) PublicKey() (bls.PublicKey, error) {
	pk, err := bls.PublicKeyFromBytes(b[:])
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode public key %s", b)
	}
	return pk, nil
}

// Signature decodes the bytes into a BLS12-381 signature point.
func (b Bytes96) Signature() (bls.Signature, error) {
	sig, err := bls.SignatureFromBytes(b[:])
	if err != nil {
		return nil, errors.Wrap(err, "could not decode signature")
	}
	return sig, nil
}

// PublicKeys decodes every committee member key, in committee order.
func (s *SyncCommittee) PublicKeys() ([]bls.PublicKey, error) {
	keys := make([]bls.PublicKey, len(s.Pubkeys))
	for i, pk := range s.Pubkeys {
		key, err := pk.PublicKey()
		if err != nil {
			return nil, errors.Wrapf(err, "committee member %d", i)
		}
		keys[i] = key
	}
	return keys, nil
}

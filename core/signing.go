package core

import (
	"github.com/MariusVanDerWijden/eth2-lc-primitives/config"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// ComputeForkDataRoot returns the hash tree root of the fork data for version.
func ComputeForkDataRoot(version types.Version, genesisValidatorsRoot types.Root) (types.Root, error) {
	data := &types.ForkData{
		CurrentVersion:        version,
		GenesisValidatorsRoot: genesisValidatorsRoot,
	}
	root, err := data.HashTreeRoot()
	if err != nil {
		return types.Root{}, errors.Wrap(err, "could not hash fork data")
	}
	return root, nil
}

// ComputeDomain returns the domain separator for domainType under the given
// fork: the domain type followed by the first 28 bytes of the fork data root.
func ComputeDomain(domainType types.DomainType, version types.Version, genesisValidatorsRoot types.Root) (types.Domain, error) {
	forkDataRoot, err := ComputeForkDataRoot(version, genesisValidatorsRoot)
	if err != nil {
		return types.Domain{}, err
	}
	var domain types.Domain
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}

// ComputeSigningRoot returns the root that is signed for objectRoot in domain.
func ComputeSigningRoot(objectRoot types.Root, domain types.Domain) (types.Root, error) {
	data := &types.SigningData{
		ObjectRoot: objectRoot,
		Domain:     domain,
	}
	root, err := data.HashTreeRoot()
	if err != nil {
		return types.Root{}, errors.Wrap(err, "could not hash signing data")
	}
	return root, nil
}

// ComputeSyncCommitteeDomain returns the sync committee domain for a signature
// made at signatureSlot. The fork version is the one of the slot before it.
func ComputeSyncCommitteeDomain(network *config.Network, signatureSlot uint64) (types.Domain, error) {
	gvr, err := network.Chain.GenesisValidatorsRoot()
	if err != nil {
		return types.Domain{}, errors.Wrap(err, "invalid genesis validators root")
	}
	if signatureSlot > 0 {
		signatureSlot--
	}
	epoch := ComputeEpochAtSlot(eth2types.Slot(signatureSlot))
	return ComputeDomain(config.DOMAIN_SYNC_COMMITTEE, network.Forks.VersionAt(epoch), gvr)
}

// HeaderSigningRoot returns the root a sync committee signs for header.
func HeaderSigningRoot(header *types.Header, domain types.Domain) (types.Root, error) {
	root, err := header.HashTreeRoot()
	if err != nil {
		return types.Root{}, errors.Wrap(err, "could not hash header")
	}
	return ComputeSigningRoot(root, domain)
}

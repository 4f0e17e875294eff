// Package config holds the beacon chain constants, chain configuration and
// network presets used by the light client.
package config

import "github.com/MariusVanDerWijden/eth2-lc-primitives/types"

// Time parameters
const (
	SECONDS_PER_SLOT                 = 12
	SLOTS_PER_EPOCH                  = 32
	EPOCHS_PER_SYNC_COMMITTEE_PERIOD = 256
	GENESIS_EPOCH                    = 0
)

// Sync committee
const (
	SYNC_COMMITTEE_SIZE             = types.SyncCommitteeSize
	MIN_SYNC_COMMITTEE_PARTICIPANTS = 1
)

// Domain types
var (
	DOMAIN_SYNC_COMMITTEE = types.DomainType{0x07, 0x00, 0x00, 0x00}
)

// Generalized indices of the light client proofs in the altair beacon state,
// and the proof depth floor(log2(index)) for each.
const (
	FINALIZED_ROOT_INDEX         = 105
	FINALIZED_ROOT_DEPTH         = 6
	CURRENT_SYNC_COMMITTEE_INDEX = 54
	CURRENT_SYNC_COMMITTEE_DEPTH = 5
	NEXT_SYNC_COMMITTEE_INDEX    = 55
	NEXT_SYNC_COMMITTEE_DEPTH    = 5
)

package core

import (
	"github.com/MariusVanDerWijden/eth2-lc-primitives/config"
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// ComputeEpochAtSlot returns the epoch of slot.
func ComputeEpochAtSlot(slot eth2types.Slot) eth2types.Epoch {
	return eth2types.Epoch(uint64(slot) / config.SLOTS_PER_EPOCH)
}

// ComputeSyncCommitteePeriodAtSlot returns the sync committee period of slot.
func ComputeSyncCommitteePeriodAtSlot(slot eth2types.Slot) uint64 {
	return uint64(ComputeEpochAtSlot(slot)) / config.EPOCHS_PER_SYNC_COMMITTEE_PERIOD
}

// ComputeStartSlotAtEpoch returns the first slot of epoch.
func ComputeStartSlotAtEpoch(epoch eth2types.Epoch) eth2types.Slot {
	return eth2types.Slot(uint64(epoch) * config.SLOTS_PER_EPOCH)
}

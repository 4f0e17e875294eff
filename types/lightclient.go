package types

// LightClientStore is the trusted state a light client keeps between updates.
// This package only defines its shape; the sync protocol that advances it
// owns all mutation and must replace it as a whole.
type LightClientStore struct {
	FinalizedHeader               Header
	CurrentSyncCommittee          SyncCommittee
	NextSyncCommittee             Optional[SyncCommittee]
	OptimisticHeader              Header
	PreviousMaxActiveParticipants uint64
	CurrentMaxActiveParticipants  uint64
}

// NewLightClientStore returns the all-zero store: zero headers, a committee of
// zero keys, no next committee and no recorded participation.
func NewLightClientStore() *LightClientStore {
	return &LightClientStore{
		NextSyncCommittee: None[SyncCommittee](),
	}
}

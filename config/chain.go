package config

import (
	"encoding/json"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
)

// ChainConfig identifies the chain a light client follows. GenesisRoot is the
// genesis validators root.
type ChainConfig struct {
	ChainID     uint64 `json:"chain_id"`
	GenesisTime uint64 `json:"genesis_time"`
	GenesisRoot []byte `json:"genesis_root"`
}

type chainConfigJSON struct {
	ChainID     *uint64 `json:"chain_id"`
	GenesisTime *uint64 `json:"genesis_time"`
	GenesisRoot *string `json:"genesis_root"`
}

// MarshalJSON writes the integers as JSON numbers and the root as 0x hex.
func (c ChainConfig) MarshalJSON() ([]byte, error) {
	root := types.EncodeHex(c.GenesisRoot)
	return json.Marshal(&chainConfigJSON{
		ChainID:     &c.ChainID,
		GenesisTime: &c.GenesisTime,
		GenesisRoot: &root,
	})
}

// UnmarshalJSON implements json.Unmarshaler. All fields are required.
func (c *ChainConfig) UnmarshalJSON(input []byte) error {
	var dec chainConfigJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.ChainID == nil {
		return errors.Wrap(types.ErrMissingField, "'chain_id' for ChainConfig")
	}
	if dec.GenesisTime == nil {
		return errors.Wrap(types.ErrMissingField, "'genesis_time' for ChainConfig")
	}
	if dec.GenesisRoot == nil {
		return errors.Wrap(types.ErrMissingField, "'genesis_root' for ChainConfig")
	}
	root, err := types.DecodeHex(*dec.GenesisRoot)
	if err != nil {
		return errors.Wrap(err, "genesis_root")
	}
	c.ChainID = *dec.ChainID
	c.GenesisTime = *dec.GenesisTime
	c.GenesisRoot = root
	return nil
}

// GenesisValidatorsRoot returns GenesisRoot as a 32 byte root.
func (c *ChainConfig) GenesisValidatorsRoot() (types.Root, error) {
	return types.Bytes32FromSlice(c.GenesisRoot)
}

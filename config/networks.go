package config

import (
	"strings"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// Fork is a scheduled protocol upgrade.
type Fork struct {
	Epoch   eth2types.Epoch
	Version types.Version
}

// Forks is the fork schedule of a network, in activation order.
type Forks struct {
	Genesis   Fork
	Altair    Fork
	Bellatrix Fork
	Capella   Fork
	Deneb     Fork
}

// VersionAt returns the fork version active at epoch.
func (f *Forks) VersionAt(epoch eth2types.Epoch) types.Version {
	switch {
	case epoch >= f.Deneb.Epoch:
		return f.Deneb.Version
	case epoch >= f.Capella.Epoch:
		return f.Capella.Version
	case epoch >= f.Bellatrix.Epoch:
		return f.Bellatrix.Version
	case epoch >= f.Altair.Epoch:
		return f.Altair.Version
	default:
		return f.Genesis.Version
	}
}

// Network bundles everything a light client needs to follow a chain.
type Network struct {
	Name              string
	Chain             ChainConfig
	Forks             Forks
	ConsensusRPC      string
	DefaultCheckpoint types.Root
	MaxCheckpointAge  uint64
}

func version(v uint32) types.Version {
	return types.Version{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func mustRoot(s string) types.Root {
	root, err := types.Bytes32FromSlice(hexutil.MustDecode(s))
	if err != nil {
		panic(err)
	}
	return root
}

// Mainnet returns the ethereum mainnet preset.
func Mainnet() *Network {
	return &Network{
		Name: "mainnet",
		Chain: ChainConfig{
			ChainID:     1,
			GenesisTime: 1606824023,
			GenesisRoot: hexutil.MustDecode("0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"),
		},
		Forks: Forks{
			Genesis:   Fork{Epoch: 0, Version: version(0x00000000)},
			Altair:    Fork{Epoch: 74240, Version: version(0x01000000)},
			Bellatrix: Fork{Epoch: 144896, Version: version(0x02000000)},
			Capella:   Fork{Epoch: 194048, Version: version(0x03000000)},
			Deneb:     Fork{Epoch: 269568, Version: version(0x04000000)},
		},
		ConsensusRPC:      "https://www.lightclientdata.org",
		DefaultCheckpoint: mustRoot("0x766647f3c4e1fc91c0db9a9374032ae038778411fbff222974e11f2e3ce7dadf"),
		MaxCheckpointAge:  1_209_600,
	}
}

// Goerli returns the goerli (prater) testnet preset.
func Goerli() *Network {
	return &Network{
		Name: "goerli",
		Chain: ChainConfig{
			ChainID:     5,
			GenesisTime: 1616508000,
			GenesisRoot: hexutil.MustDecode("0x043db0d9a83813551ee2f33450d23797757d430911a9320530ad8a0eabc43efb"),
		},
		Forks: Forks{
			Genesis:   Fork{Epoch: 0, Version: version(0x00001020)},
			Altair:    Fork{Epoch: 36660, Version: version(0x01001020)},
			Bellatrix: Fork{Epoch: 112260, Version: version(0x02001020)},
			Capella:   Fork{Epoch: 162304, Version: version(0x03001020)},
			Deneb:     Fork{Epoch: 231680, Version: version(0x04001020)},
		},
		MaxCheckpointAge: 1_209_600,
	}
}

// Sepolia returns the sepolia testnet preset.
func Sepolia() *Network {
	return &Network{
		Name: "sepolia",
		Chain: ChainConfig{
			ChainID:     11155111,
			GenesisTime: 1655733600,
			GenesisRoot: hexutil.MustDecode("0xd8ea171f3c94aea21ebc42a1ed61052acf3f9209c00e4efbaaddac09ed9b8078"),
		},
		Forks: Forks{
			Genesis:   Fork{Epoch: 0, Version: version(0x90000069)},
			Altair:    Fork{Epoch: 50, Version: version(0x90000070)},
			Bellatrix: Fork{Epoch: 100, Version: version(0x90000071)},
			Capella:   Fork{Epoch: 56832, Version: version(0x90000072)},
			Deneb:     Fork{Epoch: 132608, Version: version(0x90000073)},
		},
		MaxCheckpointAge: 1_209_600,
	}
}

// NetworkByName returns the preset with the given (case-insensitive) name.
func NetworkByName(name string) (*Network, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return Mainnet(), nil
	case "goerli", "prater":
		return Goerli(), nil
	case "sepolia":
		return Sepolia(), nil
	default:
		return nil, errors.Errorf("unknown network %q", name)
	}
}

// Package rpc fetches light client messages from a consensus data source.
package rpc

import (
	"context"
	"encoding/json"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "rpc")

// MaxRequestUpdates is the largest number of updates a single request may ask for.
const MaxRequestUpdates = 128

// ErrNotFound is returned when the source has no data for the request.
var ErrNotFound = errors.New("not found")

// ConsensusAPI is a source of light client data. The sync protocol consuming
// the messages verifies them; implementations only transport and decode.
type ConsensusAPI interface {
	Bootstrap(ctx context.Context, blockRoot types.Root) (*types.Bootstrap, error)
	Updates(ctx context.Context, period, count uint64) ([]*types.Update, error)
	FinalityUpdate(ctx context.Context) (*types.FinalityUpdate, error)
	OptimisticUpdate(ctx context.Context) (*types.OptimisticUpdate, error)
	ChainID(ctx context.Context) (uint64, error)
	Name() string
}

// The beacon API wraps every payload in a {"data": ...} envelope.

func decodeBootstrap(body []byte) (*types.Bootstrap, error) {
	var res struct {
		Data *types.Bootstrap `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode bootstrap")
	}
	if res.Data == nil {
		return nil, errors.Wrap(ErrNotFound, "empty bootstrap response")
	}
	return res.Data, nil
}

func decodeUpdates(body []byte) ([]*types.Update, error) {
	var res []struct {
		Data *types.Update `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode updates")
	}
	updates := make([]*types.Update, 0, len(res))
	for i, r := range res {
		if r.Data == nil {
			return nil, errors.Errorf("update %d has no data", i)
		}
		updates = append(updates, r.Data)
	}
	return updates, nil
}

func decodeFinalityUpdate(body []byte) (*types.FinalityUpdate, error) {
	var res struct {
		Data *types.FinalityUpdate `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode finality update")
	}
	if res.Data == nil {
		return nil, errors.Wrap(ErrNotFound, "empty finality update response")
	}
	return res.Data, nil
}

func decodeOptimisticUpdate(body []byte) (*types.OptimisticUpdate, error) {
	var res struct {
		Data *types.OptimisticUpdate `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode optimistic update")
	}
	if res.Data == nil {
		return nil, errors.Wrap(ErrNotFound, "empty optimistic update response")
	}
	return res.Data, nil
}

func decodeChainID(body []byte) (uint64, error) {
	var res struct {
		Data struct {
			DepositNetworkID *types.U64 `json:"DEPOSIT_NETWORK_ID"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return 0, errors.Wrap(err, "could not decode config response")
	}
	if res.Data.DepositNetworkID == nil {
		return 0, errors.Wrap(types.ErrMissingField, "'DEPOSIT_NETWORK_ID' for config response")
	}
	return res.Data.DepositNetworkID.Uint64(), nil
}

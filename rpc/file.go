package rpc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/core"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// FileAPI serves light client data recorded from a beacon API. The directory
// holds the raw response bodies as bootstrap.json, updates.json,
// finality.json and optimistic.json.
type FileAPI struct {
	dir     string
	chainID uint64
}

// NewFileAPI returns a source reading from dir that reports chainID.
func NewFileAPI(dir string, chainID uint64) *FileAPI {
	return &FileAPI{dir: dir, chainID: chainID}
}

func (f *FileAPI) Name() string { return "file" }

func (f *FileAPI) read(name string) ([]byte, error) {
	path := filepath.Join(f.dir, name)
	body, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "file %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	log.WithField("file", path).Debug("Read light client data")
	return body, nil
}

// Bootstrap returns the recorded bootstrap. The block root is not checked.
func (f *FileAPI) Bootstrap(_ context.Context, _ types.Root) (*types.Bootstrap, error) {
	body, err := f.read("bootstrap.json")
	if err != nil {
		return nil, err
	}
	return decodeBootstrap(body)
}

// Updates returns the recorded updates of sync committee periods
// [period, period+count).
func (f *FileAPI) Updates(_ context.Context, period, count uint64) ([]*types.Update, error) {
	body, err := f.read("updates.json")
	if err != nil {
		return nil, err
	}
	updates, err := decodeUpdates(body)
	if err != nil {
		return nil, err
	}
	if count > MaxRequestUpdates {
		count = MaxRequestUpdates
	}
	var res []*types.Update
	for _, u := range updates {
		p := core.ComputeSyncCommitteePeriodAtSlot(eth2types.Slot(u.AttestedHeader.Slot))
		if p >= period && p-period < count {
			res = append(res, u)
		}
	}
	return res, nil
}

// FinalityUpdate returns the recorded finality update.
func (f *FileAPI) FinalityUpdate(_ context.Context) (*types.FinalityUpdate, error) {
	body, err := f.read("finality.json")
	if err != nil {
		return nil, err
	}
	return decodeFinalityUpdate(body)
}

// OptimisticUpdate returns the recorded optimistic update.
func (f *FileAPI) OptimisticUpdate(_ context.Context) (*types.OptimisticUpdate, error) {
	body, err := f.read("optimistic.json")
	if err != nil {
		return nil, err
	}
	return decodeOptimisticUpdate(body)
}

func (f *FileAPI) ChainID(_ context.Context) (uint64, error) {
	return f.chainID, nil
}

package rpc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BeaconAPI requests light client data from a beacon node REST API.
type BeaconAPI struct {
	url           string
	client        *http.Client
	customHeaders map[string]string
}

// NewBeaconAPI returns a client for the beacon node at url. The custom headers
// are sent with every request.
func NewBeaconAPI(url string, customHeaders map[string]string) *BeaconAPI {
	return &BeaconAPI{
		url: strings.TrimRight(url, "/"),
		client: &http.Client{
			Timeout: time.Second * 10,
		},
		customHeaders: customHeaders,
	}
}

func (api *BeaconAPI) Name() string { return "beacon" }

func (api *BeaconAPI) httpGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.url+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range api.customHeaders {
		req.Header.Set(k, v)
	}
	start := time.Now()
	resp, err := api.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not request %s", path)
	}
	defer resp.Body.Close()
	log.WithFields(logrus.Fields{
		"path":    path,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("Beacon API request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound, "endpoint %q", path)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("error from API endpoint %q: status code %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read response of %s", path)
	}
	return body, nil
}

// Bootstrap fetches the bootstrap for the block with the given root.
func (api *BeaconAPI) Bootstrap(ctx context.Context, blockRoot types.Root) (*types.Bootstrap, error) {
	body, err := api.httpGet(ctx, "/eth/v1/beacon/light_client/bootstrap/"+blockRoot.String())
	if err != nil {
		return nil, err
	}
	return decodeBootstrap(body)
}

// Updates fetches up to count updates starting at period. Requests for more
// than MaxRequestUpdates are capped.
func (api *BeaconAPI) Updates(ctx context.Context, period, count uint64) ([]*types.Update, error) {
	if count > MaxRequestUpdates {
		count = MaxRequestUpdates
	}
	path := fmt.Sprintf("/eth/v1/beacon/light_client/updates?start_period=%d&count=%d", period, count)
	body, err := api.httpGet(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeUpdates(body)
}

// FinalityUpdate fetches the latest finality update.
func (api *BeaconAPI) FinalityUpdate(ctx context.Context) (*types.FinalityUpdate, error) {
	body, err := api.httpGet(ctx, "/eth/v1/beacon/light_client/finality_update")
	if err != nil {
		return nil, err
	}
	return decodeFinalityUpdate(body)
}

// OptimisticUpdate fetches the latest optimistic update.
func (api *BeaconAPI) OptimisticUpdate(ctx context.Context) (*types.OptimisticUpdate, error) {
	body, err := api.httpGet(ctx, "/eth/v1/beacon/light_client/optimistic_update")
	if err != nil {
		return nil, err
	}
	return decodeOptimisticUpdate(body)
}

// ChainID returns DEPOSIT_NETWORK_ID from the node's /eth/v1/config/spec.
func (api *BeaconAPI) ChainID(ctx context.Context) (uint64, error) {
	body, err := api.httpGet(ctx, "/eth/v1/config/spec")
	if err != nil {
		return 0, err
	}
	return decodeChainID(body)
}

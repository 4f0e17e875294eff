// lcinspect fetches light client messages from a beacon node or a directory of
// recorded responses and reports their roots and proof validity.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MariusVanDerWijden/eth2-lc-primitives/config"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/core"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/rpc"
	"github.com/MariusVanDerWijden/eth2-lc-primitives/types"
	"github.com/pkg/errors"
	eth2types "github.com/prysmaticlabs/eth2-types"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	networkFlag = &cli.StringFlag{
		Name:  "network",
		Usage: "Network preset (mainnet, goerli, sepolia)",
		Value: "mainnet",
	}
	rpcFlag = &cli.StringFlag{
		Name:  "rpc",
		Usage: "Beacon node REST endpoint, defaults to the preset's endpoint",
	}
	datadirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Read recorded responses from this directory instead of a beacon node",
	}
	checkpointFlag = &cli.StringFlag{
		Name:  "checkpoint",
		Usage: "Block root to bootstrap from, defaults to the preset's checkpoint",
	}
	periodFlag = &cli.Uint64Flag{
		Name:  "period",
		Usage: "First sync committee period to request updates for",
	}
	countFlag = &cli.Uint64Flag{
		Name:  "count",
		Usage: "Number of sync committee periods to request",
		Value: 1,
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info, warn, error)",
		Value: "info",
	}
)

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	app := cli.App{}
	app.Name = "lcinspect"
	app.Usage = "Inspect eth2 light client messages"
	app.Flags = []cli.Flag{networkFlag, rpcFlag, datadirFlag, verbosityFlag}
	app.Before = func(c *cli.Context) error {
		level, err := log.ParseLevel(c.String(verbosityFlag.Name))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "bootstrap",
			Usage:  "Fetch a bootstrap and check its committee proof",
			Flags:  []cli.Flag{checkpointFlag},
			Action: bootstrap,
		},
		{
			Name:   "updates",
			Usage:  "Fetch sync committee updates and check their proofs",
			Flags:  []cli.Flag{periodFlag, countFlag},
			Action: updates,
		},
		{
			Name:   "finality",
			Usage:  "Fetch the latest finality update",
			Action: finality,
		},
		{
			Name:   "optimistic",
			Usage:  "Fetch the latest optimistic update",
			Action: optimistic,
		},
		{
			Name:   "domain",
			Usage:  "Print the sync committee domain for a signature slot",
			Flags:  []cli.Flag{&cli.Uint64Flag{Name: "slot", Required: true}},
			Action: domain,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (*config.Network, rpc.ConsensusAPI, error) {
	network, err := config.NetworkByName(c.String(networkFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	if dir := c.String(datadirFlag.Name); dir != "" {
		return network, rpc.NewFileAPI(dir, network.Chain.ChainID), nil
	}
	url := c.String(rpcFlag.Name)
	if url == "" {
		url = network.ConsensusRPC
	}
	if url == "" {
		return nil, nil, errors.Errorf("network %s has no default endpoint, set --%s", network.Name, rpcFlag.Name)
	}
	return network, rpc.NewBeaconAPI(url, nil), nil
}

func context30s(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, 30*time.Second)
}

func bootstrap(c *cli.Context) error {
	network, api, err := setup(c)
	if err != nil {
		return err
	}
	checkpoint := network.DefaultCheckpoint
	if s := c.String(checkpointFlag.Name); s != "" {
		if err := checkpoint.UnmarshalText([]byte(s)); err != nil {
			return err
		}
	}
	ctx, cancel := context30s(c)
	defer cancel()
	b, err := api.Bootstrap(ctx, checkpoint)
	if err != nil {
		return err
	}
	headerRoot, err := b.Header.HashTreeRoot()
	if err != nil {
		return err
	}
	committeeRoot, err := b.CurrentSyncCommittee.HashTreeRoot()
	if err != nil {
		return err
	}
	_, keyErr := b.CurrentSyncCommittee.PublicKeys()
	log.WithFields(log.Fields{
		"source":        api.Name(),
		"keysDecode":    keyErr == nil,
		"slot":          b.Header.Slot,
		"headerRoot":    types.Root(headerRoot),
		"checkpoint":    checkpoint,
		"committeeRoot": types.Root(committeeRoot),
		"proofValid":    core.IsCurrentCommitteeProofValid(&b.Header, &b.CurrentSyncCommittee, b.CurrentSyncCommitteeBranch),
	}).Info("Bootstrap")
	return nil
}

func updates(c *cli.Context) error {
	network, api, err := setup(c)
	if err != nil {
		return err
	}
	ctx, cancel := context30s(c)
	defer cancel()
	list, err := api.Updates(ctx, c.Uint64(periodFlag.Name), c.Uint64(countFlag.Name))
	if err != nil {
		return err
	}
	for _, u := range list {
		logGeneric(network, types.NewGenericUpdate(u)).Info("Update")
	}
	return nil
}

func finality(c *cli.Context) error {
	network, api, err := setup(c)
	if err != nil {
		return err
	}
	ctx, cancel := context30s(c)
	defer cancel()
	u, err := api.FinalityUpdate(ctx)
	if err != nil {
		return err
	}
	logGeneric(network, types.NewGenericFinalityUpdate(u)).Info("Finality update")
	return nil
}

func optimistic(c *cli.Context) error {
	network, api, err := setup(c)
	if err != nil {
		return err
	}
	ctx, cancel := context30s(c)
	defer cancel()
	u, err := api.OptimisticUpdate(ctx)
	if err != nil {
		return err
	}
	logGeneric(network, types.NewGenericOptimisticUpdate(u)).Info("Optimistic update")
	return nil
}

func domain(c *cli.Context) error {
	network, err := config.NetworkByName(c.String(networkFlag.Name))
	if err != nil {
		return err
	}
	d, err := core.ComputeSyncCommitteeDomain(network, c.Uint64("slot"))
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

// logGeneric describes any update kind; fields a message lacks are skipped.
func logGeneric(network *config.Network, u types.GenericUpdate) *log.Entry {
	fields := log.Fields{
		"attestedSlot":  u.AttestedHeader.Slot,
		"signatureSlot": u.SignatureSlot,
		"period":        core.ComputeSyncCommitteePeriodAtSlot(eth2types.Slot(u.AttestedHeader.Slot)),
		"participation": fmt.Sprintf("%d/%d", u.SyncAggregate.ParticipantCount(), types.SyncCommitteeSize),
	}
	if _, err := u.SyncAggregate.SyncCommitteeSignature.Signature(); err != nil {
		log.WithError(err).Debug("Aggregate signature does not decode")
		fields["signatureDecodes"] = false
	} else {
		fields["signatureDecodes"] = true
	}
	if root, err := u.AttestedHeader.HashTreeRoot(); err == nil {
		fields["attestedRoot"] = types.Root(root)
	}
	if d, err := core.ComputeSyncCommitteeDomain(network, u.SignatureSlot); err == nil {
		if sr, err := core.HeaderSigningRoot(&u.AttestedHeader, d); err == nil {
			fields["signingRoot"] = sr
		}
	}
	if finalized, ok := u.FinalizedHeader.Get(); ok {
		branch := u.FinalityBranch.OrElse(nil)
		fields["finalizedSlot"] = finalized.Slot
		fields["finalityValid"] = core.IsFinalityProofValid(&u.AttestedHeader, &finalized, branch)
	}
	if committee, ok := u.NextSyncCommittee.Get(); ok {
		branch := u.NextSyncCommitteeBranch.OrElse(nil)
		fields["nextCommitteeValid"] = core.IsNextCommitteeProofValid(&u.AttestedHeader, &committee, branch)
		_, err := committee.PublicKeys()
		fields["nextKeysDecode"] = err == nil
	}
	return log.WithFields(fields)
}

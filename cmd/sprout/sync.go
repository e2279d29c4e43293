package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/sproutwallet/sproutd/config"
	"github.com/sproutwallet/sproutd/pkg/poller"
)

var sync = cli.Command{
	Name:  "sync",
	Usage: "inspect the wallet backend's sync state",
	Subcommands: []*cli.Command{
		{
			Name:   "status",
			Usage:  "show the current sync status and balance",
			Action: syncStatusAction,
		},
		{
			Name:   "peers",
			Usage:  "list the connected full node peers",
			Action: peersAction,
		},
		{
			Name:   "watch",
			Usage:  "periodically refresh sync status and peers until interrupted",
			Action: watchAction,
		},
	},
}

func syncStatusAction(ctx *cli.Context) error {
	status, err := getSyncService().SyncStatus(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(status)
	return nil
}

func peersAction(ctx *cli.Context) error {
	peers, err := getSyncService().Peers(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(peers)
	return nil
}

func watchAction(ctx *cli.Context) error {
	svc := getSyncService()

	watcher := poller.NewService(poller.Opts{
		IntervalInMilliseconds: config.GetInt(config.SyncIntervalKey),
		RequestsPerSecond:      2,
	})
	watcher.AddTarget(svc.SyncStatusTarget())
	watcher.AddTarget(svc.PeersTarget())
	watcher.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		watcher.Stop()
	}()

	for event := range watcher.EventChannel() {
		if event.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", event.Key, event.Err)
			continue
		}
		printRespJSON(map[string]interface{}{event.Key: event.Payload})
	}

	return nil
}

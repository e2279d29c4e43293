package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sproutwallet/sproutd/config"
	"github.com/sproutwallet/sproutd/internal/core/application"
	"github.com/sproutwallet/sproutd/internal/core/domain"
	"github.com/sproutwallet/sproutd/internal/infrastructure/walletrpc"
	"github.com/sproutwallet/sproutd/pkg/marketplace/dexie"
	"github.com/sproutwallet/sproutd/pkg/marketplace/mintgarden"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	config.Validate()

	app := cli.NewApp()
	app.Name = "sprout CLI"
	app.Usage = "Command line interface for the sprout wallet client"
	app.Version = "0.1.0"
	app.Commands = append(
		app.Commands,
		&offer,
		&coins,
		&sync,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func getWalletService() application.WalletService {
	return walletrpc.NewService(config.GetString(config.WalletRpcEndpointKey))
}

func getOfferService() *application.OfferService {
	testnet := config.IsTestnet()
	return application.NewOfferService(
		getWalletService(),
		dexie.NewService(config.DexieApiUrl(), testnet),
		mintgarden.NewService(config.MintGardenApiUrl(), testnet),
		domain.NewOfferBuilder(
			uint32(config.GetInt(config.NativePrecisionKey)),
			uint32(config.GetInt(config.CatPrecisionKey)),
		),
		config.GetBool(config.OfferSplitModeKey),
	)
}

func getCoinService() *application.CoinService {
	return application.NewCoinService(getWalletService())
}

func getSyncService() *application.SyncService {
	return application.NewSyncService(getWalletService())
}

func printRespJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Println(resp)
		return
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[sprout] %v\n", err)
	os.Exit(1)
}

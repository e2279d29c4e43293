package config

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sproutwallet/sproutd/pkg/marketplace/dexie"
	"github.com/sproutwallet/sproutd/pkg/marketplace/mintgarden"
)

const (
	// NetworkKey is the network to use. Either "mainnet" or "testnet11"
	NetworkKey = "NETWORK"
	// NativePrecisionKey is the number of decimal places of the native currency
	NativePrecisionKey = "NATIVE_PRECISION"
	// CatPrecisionKey is the number of decimal places of CAT amounts
	CatPrecisionKey = "CAT_PRECISION"
	// WalletRpcEndpointKey is the endpoint of the wallet backend's command interface
	WalletRpcEndpointKey = "WALLET_RPC_ENDPOINT"
	// DexieApiUrlKey overrides the Dexie API base URL derived from the network
	DexieApiUrlKey = "DEXIE_API_URL"
	// MintGardenApiUrlKey overrides the MintGarden API base URL derived from the network
	MintGardenApiUrlKey = "MINTGARDEN_API_URL"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// SyncIntervalKey is the interval in milliseconds between sync-status refreshes
	SyncIntervalKey = "SYNC_INTERVAL"
	// OfferSplitModeKey relaxes the MintGarden gating to at least one offered NFT
	OfferSplitModeKey = "OFFER_SPLIT_MODE"
	// DatadirKey is the local data directory of the client
	DatadirKey = "DATA_DIR_PATH"

	MainnetNetwork = "mainnet"
	TestnetNetwork = "testnet11"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("sprout", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("SPROUT")
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, MainnetNetwork)
	vip.SetDefault(NativePrecisionKey, 12)
	vip.SetDefault(CatPrecisionKey, 3)
	vip.SetDefault(WalletRpcEndpointKey, "http://localhost:9256")
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(SyncIntervalKey, 5000)
	vip.SetDefault(OfferSplitModeKey, false)
	vip.SetDefault(DatadirKey, defaultDatadir)
}

// Set a key value pair in the internal store, mostly useful for tests.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetString returns the value of the key as string
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt returns the value of the key as int
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetBool returns the value of the key as bool
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDuration returns the value of the key in milliseconds as time.Duration
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Millisecond
}

// IsTestnet returns whether the configured network is a test network.
func IsTestnet() bool {
	return GetString(NetworkKey) == TestnetNetwork
}

// DexieApiUrl returns the configured Dexie API base URL, falling back to the
// network's default.
func DexieApiUrl() string {
	if url := GetString(DexieApiUrlKey); url != "" {
		return url
	}
	if IsTestnet() {
		return dexie.TestnetAPIURL
	}
	return dexie.MainnetAPIURL
}

// MintGardenApiUrl returns the configured MintGarden API base URL, falling
// back to the network's default.
func MintGardenApiUrl() string {
	if url := GetString(MintGardenApiUrlKey); url != "" {
		return url
	}
	if IsTestnet() {
		return mintgarden.TestnetAPIURL
	}
	return mintgarden.MainnetAPIURL
}

// Validate checks the consistency of the configuration and panics on the
// first violation.
func Validate() {
	if err := validate(); err != nil {
		log.WithError(err).Panic("invalid config")
	}
}

func validate() error {
	network := GetString(NetworkKey)
	if network != MainnetNetwork && network != TestnetNetwork {
		return fmt.Errorf("network must be %s or %s", MainnetNetwork, TestnetNetwork)
	}

	precision := GetInt(NativePrecisionKey)
	if precision < 0 || precision > 18 {
		return fmt.Errorf("native precision must be between 0 and 18")
	}

	catPrecision := GetInt(CatPrecisionKey)
	if catPrecision < 0 || catPrecision > precision {
		return fmt.Errorf("cat precision must be between 0 and the native precision")
	}

	if GetString(WalletRpcEndpointKey) == "" {
		return fmt.Errorf("wallet rpc endpoint must not be empty")
	}

	if GetInt(SyncIntervalKey) <= 0 {
		return fmt.Errorf("sync interval must be positive")
	}

	return nil
}

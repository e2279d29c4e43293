package application

import (
	"context"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

// WalletService is the remote-command interface of the wallet backend. The
// transport is opaque to the application layer.
type WalletService interface {
	// CreateOffer submits a validated offer request and returns the offer's
	// serialized text.
	CreateOffer(ctx context.Context, request domain.OfferRequest) (string, error)
	// ViewOffer parses and validates an offer text without submitting it.
	ViewOffer(ctx context.Context, offerText string) (*domain.OfferSummary, error)
	// ImportOffer persists an offer locally.
	ImportOffer(ctx context.Context, offerText string) error
	// TakeOffer accepts someone else's offer, paying the given fee expressed
	// either in base units or as a decimal string.
	TakeOffer(ctx context.Context, offerText, fee string) (string, error)
	// ListCoins returns the coin records of the synced wallet.
	ListCoins(ctx context.Context) ([]domain.CoinRecord, error)
	// SyncStatus returns the wallet's chain-sync progress.
	SyncStatus(ctx context.Context) (*SyncStatus, error)
	// ListPeers returns the peers the backend is connected to.
	ListPeers(ctx context.Context) ([]Peer, error)
}

// SyncStatus is the backend's report of its chain-sync progress.
type SyncStatus struct {
	Synced       bool
	SyncedHeight uint32
	PeerHeight   uint32
	Balance      uint64
}

// Peer is one peer connection of the wallet backend.
type Peer struct {
	Host       string
	Port       uint16
	PeakHeight uint32
}

// OfferDraft is the single active offer being composed. The draft has
// exactly one owner for its lifetime, the offer service, and is reset to
// empty once a request built from it is successfully submitted.
type OfferDraft struct {
	Id         string
	Offered    domain.AssetBundle
	Requested  domain.AssetBundle
	Fee        string
	Expiration *domain.OfferExpiration
}

// MakeOfferResult is the outcome of a successful offer creation, including
// which marketplaces the new offer may be uploaded to.
type MakeOfferResult struct {
	OfferText          string
	DexieEligible      bool
	MintGardenEligible bool
}

// OfferView pairs a parsed offer summary with its marketplace eligibility.
type OfferView struct {
	Summary            domain.OfferSummary
	OneSided           bool
	DexieEligible      bool
	MintGardenEligible bool
}

// CoinView is one row of a coin listing.
type CoinView struct {
	domain.CoinRecord
	State              domain.CoinLifecycleState
	ConfirmationWeight int64
	SpendWeight        int64
}

// CoinListing is a page of classified coin records.
type CoinListing struct {
	Coins []CoinView
	Total int
}

// ListCoinsRequest selects the axis, direction, filtering and page of a coin
// listing.
type ListCoinsRequest struct {
	Axis        domain.SortAxis
	Descending  bool
	UnspentOnly bool
	Page        domain.Page
}

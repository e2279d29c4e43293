package domain

// AssetKind is the closed set of asset kinds that can appear in an offer.
type AssetKind string

const (
	AssetKindCurrency AssetKind = "currency"
	AssetKindToken    AssetKind = "token"
	AssetKindNft      AssetKind = "nft"
)

// Validate returns ErrUnknownAssetKind for any kind outside the closed set.
func (k AssetKind) Validate() error {
	switch k {
	case AssetKindCurrency, AssetKindToken, AssetKindNft:
		return nil
	default:
		return ErrUnknownAssetKind
	}
}

// OfferAsset is one asset entry on either side of a parsed offer. Amount is
// in base units and is meaningless for NFTs. AssetId is the CAT asset id or
// the NFT launcher id, empty for the native currency.
type OfferAsset struct {
	Kind    AssetKind
	AssetId string
	Amount  uint64
}

// OfferSummary is the backend's read-only breakdown of a serialized offer
// into maker-side and taker-side assets.
type OfferSummary struct {
	Maker []OfferAsset
	Taker []OfferAsset
	Fee   uint64
}

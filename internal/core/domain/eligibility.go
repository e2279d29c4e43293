package domain

// IsOneSided returns whether an offer draft with the given requested bundle
// asks for nothing in return, making it a gift rather than a trade.
func IsOneSided(requested AssetBundle) bool {
	return requested.IsEmpty()
}

// IsSummaryOneSided is the summary-side variant of IsOneSided: the taker
// side carries no currency or token amount greater than zero and no NFTs.
func IsSummaryOneSided(summary OfferSummary) bool {
	for _, asset := range summary.Taker {
		switch asset.Kind {
		case AssetKindCurrency, AssetKindToken:
			if asset.Amount > 0 {
				return false
			}
		case AssetKindNft:
			return false
		}
	}
	return true
}

// MintGardenEligible returns whether a drafted offer qualifies for a
// MintGarden upload: nothing but NFTs on the offered side and a non-empty
// requested side. Outside of split mode exactly one NFT must be offered,
// in split mode one or more.
func MintGardenEligible(offered, requested AssetBundle, split bool) bool {
	if !isZeroAmount(offered.Native) || len(offered.NonZeroCats()) > 0 {
		return false
	}

	nfts := len(offered.SelectedNfts())
	if split {
		if nfts == 0 {
			return false
		}
	} else if nfts != 1 {
		return false
	}

	return !IsOneSided(requested)
}

// MintGardenEligibleSummary returns whether a parsed offer qualifies for a
// MintGarden upload: the maker side is a single NFT and the offer is not
// one-sided.
func MintGardenEligibleSummary(summary OfferSummary) bool {
	return len(summary.Maker) == 1 &&
		summary.Maker[0].Kind == AssetKindNft &&
		!IsSummaryOneSided(summary)
}

// DexieEligible returns whether a drafted offer qualifies for a Dexie
// upload. Dexie accepts any asset composition as long as the offer is not
// one-sided.
func DexieEligible(requested AssetBundle) bool {
	return !IsOneSided(requested)
}

// DexieEligibleSummary is the summary-side variant of DexieEligible.
func DexieEligibleSummary(summary OfferSummary) bool {
	return !IsSummaryOneSided(summary)
}

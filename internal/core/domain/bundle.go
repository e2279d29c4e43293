package domain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// CatAmount is a fungible token entry of an asset bundle. Amount is a
// human-readable decimal string, empty means not included.
type CatAmount struct {
	AssetId string
	Amount  string
}

// AssetBundle is the value object describing one side of an offer draft:
// an optional native currency amount in whole-coin units, a list of CAT
// amounts keyed by asset id and a list of NFT launcher ids. Bundles are
// immutable values, every edit produces a new bundle.
type AssetBundle struct {
	Native string
	Cats   []CatAmount
	Nfts   []string
}

// ValidatedCat is a fungible token entry converted to integer base units.
type ValidatedCat struct {
	AssetId string
	Amount  uint64
}

// ValidatedBundle is the outcome of validating an AssetBundle, with every
// amount converted to integer base units.
type ValidatedBundle struct {
	Native uint64
	Cats   []ValidatedCat
	Nfts   []string
}

// ToBaseUnits converts a human-readable decimal amount to integer base units
// by shifting it by precision digits. The conversion is exact: amounts with
// more fractional digits than the precision allows are rejected rather than
// rounded. An empty string counts as zero.
func ToBaseUnits(amount string, precision uint32) (uint64, error) {
	if amount == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrAmountFormat, amount)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrAmountFormat, amount)
	}

	shifted := decimal.NewFromBigInt(d.Coefficient(), d.Exponent()+int32(precision))
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf(
			"%w: %s has more than %d decimal places", ErrAmountFormat, amount, precision,
		)
	}

	units := shifted.BigInt()
	if units.Cmp(new(big.Int).SetUint64(math.MaxUint64)) > 0 {
		return 0, fmt.Errorf("%w: %s is too large", ErrAmountFormat, amount)
	}
	return units.Uint64(), nil
}

// FromBaseUnits converts an integer base-unit amount back to its
// human-readable decimal representation.
func FromBaseUnits(amount uint64, precision uint32) string {
	return decimal.NewFromBigInt(
		new(big.Int).SetUint64(amount), -int32(precision),
	).String()
}

func isZeroAmount(amount string) bool {
	if amount == "" {
		return true
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return d.IsZero()
}

// NonZeroCats returns the CAT entries that carry a non-zero amount.
func (b AssetBundle) NonZeroCats() []CatAmount {
	cats := make([]CatAmount, 0, len(b.Cats))
	for _, cat := range b.Cats {
		if !isZeroAmount(cat.Amount) {
			cats = append(cats, cat)
		}
	}
	return cats
}

// SelectedNfts returns the NFT ids that have been filled in, skipping
// placeholder rows still awaiting user selection.
func (b AssetBundle) SelectedNfts() []string {
	nfts := make([]string, 0, len(b.Nfts))
	for _, nft := range b.Nfts {
		if nft != "" {
			nfts = append(nfts, nft)
		}
	}
	return nfts
}

// IsEmpty returns whether the bundle carries no value at all: zero or absent
// native amount, no CAT entry with a non-zero amount and no selected NFTs.
func (b AssetBundle) IsEmpty() bool {
	return isZeroAmount(b.Native) &&
		len(b.NonZeroCats()) == 0 &&
		len(b.SelectedNfts()) == 0
}

// Validate checks the bundle with submission semantics and converts all
// amounts to base units. The native amount is converted at nativePrecision,
// CAT amounts at catPrecision. Duplicate asset or NFT ids fail with
// ErrDuplicateAsset, NFT rows still awaiting selection fail with
// ErrIncompleteSelection.
func (b AssetBundle) Validate(nativePrecision, catPrecision uint32) (*ValidatedBundle, error) {
	native, err := ToBaseUnits(b.Native, nativePrecision)
	if err != nil {
		return nil, err
	}

	cats := make([]ValidatedCat, 0, len(b.Cats))
	catIds := make(map[string]struct{})
	for _, cat := range b.Cats {
		if _, ok := catIds[cat.AssetId]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAsset, cat.AssetId)
		}
		catIds[cat.AssetId] = struct{}{}

		amount, err := ToBaseUnits(cat.Amount, catPrecision)
		if err != nil {
			return nil, err
		}
		cats = append(cats, ValidatedCat{AssetId: cat.AssetId, Amount: amount})
	}

	nfts := make([]string, 0, len(b.Nfts))
	nftIds := make(map[string]struct{})
	for _, nft := range b.Nfts {
		if nft == "" {
			return nil, ErrIncompleteSelection
		}
		if _, ok := nftIds[nft]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAsset, nft)
		}
		nftIds[nft] = struct{}{}
		nfts = append(nfts, nft)
	}

	return &ValidatedBundle{Native: native, Cats: cats, Nfts: nfts}, nil
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

func TestIsOneSided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested domain.AssetBundle
		expected  bool
	}{
		{
			name:      "empty_requested",
			requested: domain.AssetBundle{},
			expected:  true,
		},
		{
			name:      "explicit_zero_native",
			requested: domain.AssetBundle{Native: "0"},
			expected:  true,
		},
		{
			name: "zero_amount_cats",
			requested: domain.AssetBundle{
				Native: "0",
				Cats:   []domain.CatAmount{{AssetId: "cat1", Amount: ""}},
			},
			expected: true,
		},
		{
			name:      "native_requested",
			requested: domain.AssetBundle{Native: "5"},
			expected:  false,
		},
		{
			name: "cat_requested",
			requested: domain.AssetBundle{
				Cats: []domain.CatAmount{{AssetId: "cat1", Amount: "1"}},
			},
			expected: false,
		},
		{
			name:      "nft_requested",
			requested: domain.AssetBundle{Nfts: []string{"nft1"}},
			expected:  false,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, domain.IsOneSided(tt.requested))
		})
	}
}

func TestIsSummaryOneSided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		summary  domain.OfferSummary
		expected bool
	}{
		{
			name:     "no_taker_assets",
			summary:  domain.OfferSummary{Maker: []domain.OfferAsset{{Kind: domain.AssetKindNft, AssetId: "nft1"}}},
			expected: true,
		},
		{
			name: "zero_amount_taker_currency",
			summary: domain.OfferSummary{
				Taker: []domain.OfferAsset{{Kind: domain.AssetKindCurrency}},
			},
			expected: true,
		},
		{
			name: "taker_currency",
			summary: domain.OfferSummary{
				Taker: []domain.OfferAsset{{Kind: domain.AssetKindCurrency, Amount: 1}},
			},
			expected: false,
		},
		{
			name: "taker_nft",
			summary: domain.OfferSummary{
				Taker: []domain.OfferAsset{{Kind: domain.AssetKindNft, AssetId: "nft1"}},
			},
			expected: false,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, domain.IsSummaryOneSided(tt.summary))
		})
	}
}

func TestMintGardenEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		offered   domain.AssetBundle
		requested domain.AssetBundle
		split     bool
		expected  bool
	}{
		{
			name:      "single_nft_for_native",
			offered:   domain.AssetBundle{Nfts: []string{"nft1"}},
			requested: domain.AssetBundle{Native: "5"},
			expected:  true,
		},
		{
			name:      "native_on_offered_side",
			offered:   domain.AssetBundle{Native: "1", Nfts: []string{"nft1"}},
			requested: domain.AssetBundle{Native: "5"},
			expected:  false,
		},
		{
			name: "cat_on_offered_side",
			offered: domain.AssetBundle{
				Cats: []domain.CatAmount{{AssetId: "cat1", Amount: "1"}},
				Nfts: []string{"nft1"},
			},
			requested: domain.AssetBundle{Native: "5"},
			expected:  false,
		},
		{
			name:      "two_nfts_without_split",
			offered:   domain.AssetBundle{Nfts: []string{"nft1", "nft2"}},
			requested: domain.AssetBundle{Native: "5"},
			expected:  false,
		},
		{
			name:      "two_nfts_with_split",
			offered:   domain.AssetBundle{Nfts: []string{"nft1", "nft2"}},
			requested: domain.AssetBundle{Native: "5"},
			split:     true,
			expected:  true,
		},
		{
			name:      "no_nfts_with_split",
			offered:   domain.AssetBundle{},
			requested: domain.AssetBundle{Native: "5"},
			split:     true,
			expected:  false,
		},
		{
			name:      "one_sided",
			offered:   domain.AssetBundle{Nfts: []string{"nft1"}},
			requested: domain.AssetBundle{Native: "0"},
			expected:  false,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(
				t, tt.expected,
				domain.MintGardenEligible(tt.offered, tt.requested, tt.split),
			)
		})
	}
}

func TestMintGardenEligibleSummary(t *testing.T) {
	t.Parallel()

	taker := []domain.OfferAsset{{Kind: domain.AssetKindCurrency, Amount: 5_000_000_000_000}}

	tests := []struct {
		name     string
		summary  domain.OfferSummary
		expected bool
	}{
		{
			name: "single_maker_nft",
			summary: domain.OfferSummary{
				Maker: []domain.OfferAsset{{Kind: domain.AssetKindNft, AssetId: "nft1"}},
				Taker: taker,
			},
			expected: true,
		},
		{
			name: "maker_currency",
			summary: domain.OfferSummary{
				Maker: []domain.OfferAsset{{Kind: domain.AssetKindCurrency, Amount: 1}},
				Taker: taker,
			},
			expected: false,
		},
		{
			name: "two_maker_assets",
			summary: domain.OfferSummary{
				Maker: []domain.OfferAsset{
					{Kind: domain.AssetKindNft, AssetId: "nft1"},
					{Kind: domain.AssetKindNft, AssetId: "nft2"},
				},
				Taker: taker,
			},
			expected: false,
		},
		{
			name: "one_sided",
			summary: domain.OfferSummary{
				Maker: []domain.OfferAsset{{Kind: domain.AssetKindNft, AssetId: "nft1"}},
			},
			expected: false,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, domain.MintGardenEligibleSummary(tt.summary))
		})
	}
}

func TestDexieEligible(t *testing.T) {
	t.Parallel()

	// Offering one NFT for 5 native coins is eligible everywhere.
	offered := domain.AssetBundle{Nfts: []string{"nft1"}}
	requested := domain.AssetBundle{Native: "5"}

	require.False(t, domain.IsOneSided(requested))
	require.True(t, domain.DexieEligible(requested))
	require.True(t, domain.MintGardenEligible(offered, requested, false))

	// A gift offer is not eligible for Dexie.
	require.False(t, domain.DexieEligible(domain.AssetBundle{Native: "0"}))
}

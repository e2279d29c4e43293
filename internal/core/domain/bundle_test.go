package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

func TestToBaseUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        string
		precision     uint32
		expected      uint64
		expectedError error
	}{
		{
			name:      "empty_is_zero",
			amount:    "",
			precision: 12,
			expected:  0,
		},
		{
			name:      "whole_coin",
			amount:    "1",
			precision: 12,
			expected:  1_000_000_000_000,
		},
		{
			name:      "max_precision",
			amount:    "0.000000000001",
			precision: 12,
			expected:  1,
		},
		{
			name:      "trailing_zeros",
			amount:    "1.1000",
			precision: 3,
			expected:  1100,
		},
		{
			name:      "cat_precision",
			amount:    "12.345",
			precision: 3,
			expected:  12345,
		},
		{
			name:          "too_many_decimals",
			amount:        "0.0001",
			precision:     3,
			expectedError: domain.ErrAmountFormat,
		},
		{
			name:          "negative",
			amount:        "-1",
			precision:     12,
			expectedError: domain.ErrAmountFormat,
		},
		{
			name:          "not_a_number",
			amount:        "abc",
			precision:     12,
			expectedError: domain.ErrAmountFormat,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			units, err := domain.ToBaseUnits(tt.amount, tt.precision)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, units)
		})
	}
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []string{"0.001", "1", "42.125", "0.000000000001", "1000000"}
	for _, amount := range amounts {
		units, err := domain.ToBaseUnits(amount, 12)
		require.NoError(t, err)

		back, err := domain.ToBaseUnits(domain.FromBaseUnits(units, 12), 12)
		require.NoError(t, err)
		require.Equal(t, units, back, "amount %s", amount)
	}
}

func TestValidateBundle(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{
			Native: "1.5",
			Cats: []domain.CatAmount{
				{AssetId: "cat1", Amount: "10"},
				{AssetId: "cat2", Amount: "0.5"},
			},
			Nfts: []string{"nft1", "nft2"},
		}

		validated, err := bundle.Validate(12, 3)
		require.NoError(t, err)
		require.Equal(t, uint64(1_500_000_000_000), validated.Native)
		require.Equal(t, []domain.ValidatedCat{
			{AssetId: "cat1", Amount: 10_000},
			{AssetId: "cat2", Amount: 500},
		}, validated.Cats)
		require.Equal(t, []string{"nft1", "nft2"}, validated.Nfts)
	})

	t.Run("duplicate_cat", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{
			Cats: []domain.CatAmount{
				{AssetId: "cat1", Amount: "1"},
				{AssetId: "cat1", Amount: "2"},
			},
		}
		_, err := bundle.Validate(12, 3)
		require.ErrorIs(t, err, domain.ErrDuplicateAsset)
	})

	t.Run("duplicate_cat_regardless_of_amounts", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{
			Cats: []domain.CatAmount{
				{AssetId: "cat1", Amount: ""},
				{AssetId: "cat1", Amount: ""},
			},
		}
		_, err := bundle.Validate(12, 3)
		require.ErrorIs(t, err, domain.ErrDuplicateAsset)
	})

	t.Run("duplicate_nft", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{Nfts: []string{"nft1", "nft1"}}
		_, err := bundle.Validate(12, 3)
		require.ErrorIs(t, err, domain.ErrDuplicateAsset)
	})

	t.Run("unselected_nft", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{Nfts: []string{""}}
		_, err := bundle.Validate(12, 3)
		require.ErrorIs(t, err, domain.ErrIncompleteSelection)
	})

	t.Run("bad_cat_amount", func(t *testing.T) {
		t.Parallel()

		bundle := domain.AssetBundle{
			Cats: []domain.CatAmount{{AssetId: "cat1", Amount: "0.0001"}},
		}
		_, err := bundle.Validate(12, 3)
		require.ErrorIs(t, err, domain.ErrAmountFormat)
	})
}

func TestBundleIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bundle   domain.AssetBundle
		expected bool
	}{
		{
			name:     "zero_value",
			bundle:   domain.AssetBundle{},
			expected: true,
		},
		{
			name:     "explicit_zero_native",
			bundle:   domain.AssetBundle{Native: "0"},
			expected: true,
		},
		{
			name: "zero_amount_cat_and_placeholder_nft",
			bundle: domain.AssetBundle{
				Cats: []domain.CatAmount{{AssetId: "cat1", Amount: "0"}},
				Nfts: []string{""},
			},
			expected: true,
		},
		{
			name:     "native_amount",
			bundle:   domain.AssetBundle{Native: "0.1"},
			expected: false,
		},
		{
			name: "cat_amount",
			bundle: domain.AssetBundle{
				Cats: []domain.CatAmount{{AssetId: "cat1", Amount: "1"}},
			},
			expected: false,
		},
		{
			name:     "selected_nft",
			bundle:   domain.AssetBundle{Nfts: []string{"nft1"}},
			expected: false,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.bundle.IsEmpty())
		})
	}
}

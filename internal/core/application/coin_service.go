package application

import (
	"context"
	"sort"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

// CoinService lists the wallet's coin records classified by lifecycle state
// and ordered on one of the two sort axes.
type CoinService struct {
	wallet WalletService
}

func NewCoinService(wallet WalletService) *CoinService {
	return &CoinService{wallet: wallet}
}

// ListCoins fetches the wallet's coin records and returns the requested
// page. The sort is stable: coins with equal weights keep their relative
// backend order.
func (s *CoinService) ListCoins(
	ctx context.Context, request ListCoinsRequest,
) (*CoinListing, error) {
	records, err := s.wallet.ListCoins(ctx)
	if err != nil {
		return nil, err
	}

	coins := make([]domain.CoinRecord, 0, len(records))
	for _, record := range records {
		if request.UnspentOnly && !record.IsUnspent() {
			continue
		}
		coins = append(coins, record)
	}

	sort.SliceStable(coins, func(i, j int) bool {
		cmp := domain.CompareCoins(coins[i], coins[j], request.Axis)
		if request.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	total := len(coins)
	start, end := request.Page.Bounds(total)

	views := make([]CoinView, 0, end-start)
	for _, coin := range coins[start:end] {
		views = append(views, CoinView{
			CoinRecord:         coin,
			State:              coin.State(),
			ConfirmationWeight: coin.ConfirmationWeight(),
			SpendWeight:        coin.SpendWeight(),
		})
	}

	return &CoinListing{Coins: views, Total: total}, nil
}

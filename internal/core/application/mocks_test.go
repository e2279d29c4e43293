package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sproutwallet/sproutd/internal/core/application"
	"github.com/sproutwallet/sproutd/internal/core/domain"
)

// **** WalletService ****

type mockWalletService struct {
	mock.Mock
}

func (m *mockWalletService) CreateOffer(
	ctx context.Context, request domain.OfferRequest,
) (string, error) {
	args := m.Called(ctx, request)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) ViewOffer(
	ctx context.Context, offerText string,
) (*domain.OfferSummary, error) {
	args := m.Called(ctx, offerText)

	var res *domain.OfferSummary
	if a := args.Get(0); a != nil {
		res = a.(*domain.OfferSummary)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) ImportOffer(ctx context.Context, offerText string) error {
	args := m.Called(ctx, offerText)
	return args.Error(0)
}

func (m *mockWalletService) TakeOffer(
	ctx context.Context, offerText, fee string,
) (string, error) {
	args := m.Called(ctx, offerText, fee)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) ListCoins(ctx context.Context) ([]domain.CoinRecord, error) {
	args := m.Called(ctx)

	var res []domain.CoinRecord
	if a := args.Get(0); a != nil {
		res = a.([]domain.CoinRecord)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) SyncStatus(ctx context.Context) (*application.SyncStatus, error) {
	args := m.Called(ctx)

	var res *application.SyncStatus
	if a := args.Get(0); a != nil {
		res = a.(*application.SyncStatus)
	}
	return res, args.Error(1)
}

func (m *mockWalletService) ListPeers(ctx context.Context) ([]application.Peer, error) {
	args := m.Called(ctx)

	var res []application.Peer
	if a := args.Get(0); a != nil {
		res = a.([]application.Peer)
	}
	return res, args.Error(1)
}

// **** Marketplace ****

type mockMarketplace struct {
	mock.Mock
}

func (m *mockMarketplace) UploadOffer(ctx context.Context, offerText string) (string, error) {
	args := m.Called(ctx, offerText)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockMarketplace) OfferExists(ctx context.Context, ref string) bool {
	args := m.Called(ctx, ref)
	return args.Bool(0)
}

func (m *mockMarketplace) OfferLink(id string) string {
	args := m.Called(id)
	return args.String(0)
}

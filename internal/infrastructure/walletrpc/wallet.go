package walletrpc

import (
	"context"

	"github.com/sproutwallet/sproutd/internal/core/application"
	"github.com/sproutwallet/sproutd/internal/core/domain"
)

type coinRecordPayload struct {
	CoinId              string  `json:"coin_id"`
	Amount              uint64  `json:"amount"`
	CreatedHeight       *uint32 `json:"created_height"`
	CreateTransactionId string  `json:"create_transaction_id"`
	SpentHeight         *uint32 `json:"spent_height"`
	SpendTransactionId  string  `json:"spend_transaction_id"`
	OfferId             string  `json:"offer_id"`
}

type listCoinsResult struct {
	Coins []coinRecordPayload `json:"coins"`
}

func (s *service) ListCoins(ctx context.Context) ([]domain.CoinRecord, error) {
	result := listCoinsResult{}
	if err := s.call(ctx, "get_coins", nil, &result); err != nil {
		return nil, err
	}

	records := make([]domain.CoinRecord, 0, len(result.Coins))
	for _, coin := range result.Coins {
		records = append(records, domain.CoinRecord{
			CoinId:              coin.CoinId,
			Amount:              coin.Amount,
			CreatedHeight:       coin.CreatedHeight,
			CreateTransactionId: coin.CreateTransactionId,
			SpentHeight:         coin.SpentHeight,
			SpendTransactionId:  coin.SpendTransactionId,
			OfferId:             coin.OfferId,
		})
	}
	return records, nil
}

type syncStatusResult struct {
	Synced       bool   `json:"synced"`
	SyncedHeight uint32 `json:"synced_height"`
	PeerHeight   uint32 `json:"peer_height"`
	Balance      uint64 `json:"balance"`
}

func (s *service) SyncStatus(ctx context.Context) (*application.SyncStatus, error) {
	result := syncStatusResult{}
	if err := s.call(ctx, "get_sync_status", nil, &result); err != nil {
		return nil, err
	}
	return &application.SyncStatus{
		Synced:       result.Synced,
		SyncedHeight: result.SyncedHeight,
		PeerHeight:   result.PeerHeight,
		Balance:      result.Balance,
	}, nil
}

type peerPayload struct {
	Host       string `json:"host"`
	Port       uint16 `json:"port"`
	PeakHeight uint32 `json:"peak_height"`
}

type listPeersResult struct {
	Peers []peerPayload `json:"peers"`
}

func (s *service) ListPeers(ctx context.Context) ([]application.Peer, error) {
	result := listPeersResult{}
	if err := s.call(ctx, "get_peers", nil, &result); err != nil {
		return nil, err
	}

	peers := make([]application.Peer, 0, len(result.Peers))
	for _, peer := range result.Peers {
		peers = append(peers, application.Peer{
			Host:       peer.Host,
			Port:       peer.Port,
			PeakHeight: peer.PeakHeight,
		})
	}
	return peers, nil
}

package application

import (
	"context"

	"github.com/sproutwallet/sproutd/pkg/poller"
)

// SyncService exposes the wallet backend's sync progress and peer list, and
// adapts them to polling targets for periodic refresh.
type SyncService struct {
	wallet WalletService
}

func NewSyncService(wallet WalletService) *SyncService {
	return &SyncService{wallet: wallet}
}

func (s *SyncService) SyncStatus(ctx context.Context) (*SyncStatus, error) {
	return s.wallet.SyncStatus(ctx)
}

func (s *SyncService) Peers(ctx context.Context) ([]Peer, error) {
	return s.wallet.ListPeers(ctx)
}

// SyncStatusTarget returns a polling target refreshing the sync status.
func (s *SyncService) SyncStatusTarget() poller.Target {
	return &syncStatusTarget{wallet: s.wallet}
}

// PeersTarget returns a polling target refreshing the peer list.
func (s *SyncService) PeersTarget() poller.Target {
	return &peersTarget{wallet: s.wallet}
}

type syncStatusTarget struct {
	wallet WalletService
}

func (t *syncStatusTarget) Key() string {
	return "sync_status"
}

func (t *syncStatusTarget) Poll(ctx context.Context) (interface{}, error) {
	return t.wallet.SyncStatus(ctx)
}

type peersTarget struct {
	wallet WalletService
}

func (t *peersTarget) Key() string {
	return "peers"
}

func (t *peersTarget) Poll(ctx context.Context) (interface{}, error) {
	return t.wallet.ListPeers(ctx)
}

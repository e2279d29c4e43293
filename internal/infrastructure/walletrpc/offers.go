package walletrpc

import (
	"context"
	"fmt"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

type catPayload struct {
	AssetId string `json:"asset_id"`
	Amount  uint64 `json:"amount"`
}

type assetsPayload struct {
	Xch  uint64       `json:"xch"`
	Cats []catPayload `json:"cats"`
	Nfts []string     `json:"nfts"`
}

type makeOfferParams struct {
	OfferedAssets   assetsPayload `json:"offered_assets"`
	RequestedAssets assetsPayload `json:"requested_assets"`
	Fee             uint64        `json:"fee"`
	ExpiresAtSecond *int64        `json:"expires_at_second"`
}

type makeOfferResult struct {
	Offer string `json:"offer"`
}

func toAssetsPayload(bundle domain.ValidatedBundle) assetsPayload {
	cats := make([]catPayload, 0, len(bundle.Cats))
	for _, cat := range bundle.Cats {
		cats = append(cats, catPayload{AssetId: cat.AssetId, Amount: cat.Amount})
	}
	nfts := bundle.Nfts
	if nfts == nil {
		nfts = []string{}
	}
	return assetsPayload{Xch: bundle.Native, Cats: cats, Nfts: nfts}
}

func (s *service) CreateOffer(
	ctx context.Context, request domain.OfferRequest,
) (string, error) {
	params := makeOfferParams{
		OfferedAssets:   toAssetsPayload(request.Offered),
		RequestedAssets: toAssetsPayload(request.Requested),
		Fee:             request.Fee,
		ExpiresAtSecond: request.ExpiresAtSecond,
	}

	result := makeOfferResult{}
	if err := s.call(ctx, "make_offer", params, &result); err != nil {
		return "", err
	}
	return result.Offer, nil
}

type offerTextParams struct {
	Offer string `json:"offer"`
}

type offerAssetPayload struct {
	Kind    string `json:"kind"`
	AssetId string `json:"asset_id"`
	Amount  uint64 `json:"amount"`
}

type offerSummaryResult struct {
	Maker []offerAssetPayload `json:"maker"`
	Taker []offerAssetPayload `json:"taker"`
	Fee   uint64              `json:"fee"`
}

func toOfferAssets(payloads []offerAssetPayload) ([]domain.OfferAsset, error) {
	assets := make([]domain.OfferAsset, 0, len(payloads))
	for _, payload := range payloads {
		kind := domain.AssetKind(payload.Kind)
		if err := kind.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", err, payload.Kind)
		}
		assets = append(assets, domain.OfferAsset{
			Kind:    kind,
			AssetId: payload.AssetId,
			Amount:  payload.Amount,
		})
	}
	return assets, nil
}

func (s *service) ViewOffer(
	ctx context.Context, offerText string,
) (*domain.OfferSummary, error) {
	result := offerSummaryResult{}
	if err := s.call(
		ctx, "view_offer", offerTextParams{Offer: offerText}, &result,
	); err != nil {
		return nil, err
	}

	maker, err := toOfferAssets(result.Maker)
	if err != nil {
		return nil, err
	}
	taker, err := toOfferAssets(result.Taker)
	if err != nil {
		return nil, err
	}

	return &domain.OfferSummary{Maker: maker, Taker: taker, Fee: result.Fee}, nil
}

func (s *service) ImportOffer(ctx context.Context, offerText string) error {
	return s.call(ctx, "import_offer", offerTextParams{Offer: offerText}, nil)
}

type takeOfferParams struct {
	Offer string `json:"offer"`
	Fee   string `json:"fee"`
}

type takeOfferResult struct {
	TransactionId string `json:"transaction_id"`
}

func (s *service) TakeOffer(
	ctx context.Context, offerText, fee string,
) (string, error) {
	result := takeOfferResult{}
	if err := s.call(
		ctx, "take_offer", takeOfferParams{Offer: offerText, Fee: fee}, &result,
	); err != nil {
		return "", err
	}
	return result.TransactionId, nil
}

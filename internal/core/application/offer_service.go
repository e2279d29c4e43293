package application

import (
	"context"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sproutwallet/sproutd/internal/core/domain"
	"github.com/sproutwallet/sproutd/pkg/marketplace"
)

// OfferService owns the active offer draft and orchestrates the offer
// workflows: composing and submitting a new offer, inspecting and importing
// received offers and publishing created offers to the marketplaces.
type OfferService struct {
	wallet     WalletService
	dexie      marketplace.Service
	mintGarden marketplace.Service
	builder    domain.OfferBuilder
	splitMode  bool

	mutex sync.Mutex
	draft OfferDraft
}

// NewOfferService returns an offer service with an empty draft. splitMode
// relaxes the MintGarden gating from exactly one offered NFT to at least
// one.
func NewOfferService(
	wallet WalletService,
	dexieSvc, mintGardenSvc marketplace.Service,
	builder domain.OfferBuilder,
	splitMode bool,
) *OfferService {
	return &OfferService{
		wallet:     wallet,
		dexie:      dexieSvc,
		mintGarden: mintGardenSvc,
		builder:    builder,
		splitMode:  splitMode,
		draft:      newDraft(),
	}
}

func newDraft() OfferDraft {
	return OfferDraft{Id: uuid.New().String()}
}

// Draft returns a snapshot of the active draft.
func (s *OfferService) Draft() OfferDraft {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.draft
}

// UpdateOffered replaces the offered bundle with a new value.
func (s *OfferService) UpdateOffered(bundle domain.AssetBundle) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.draft.Offered = bundle
}

// UpdateRequested replaces the requested bundle with a new value.
func (s *OfferService) UpdateRequested(bundle domain.AssetBundle) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.draft.Requested = bundle
}

// SetFee sets the draft's network fee as a decimal string.
func (s *OfferService) SetFee(fee string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.draft.Fee = fee
}

// SetExpiration sets or clears the draft's relative expiration.
func (s *OfferService) SetExpiration(expiration *domain.OfferExpiration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.draft.Expiration = expiration
}

// ClearDraft discards the draft and starts a fresh one.
func (s *OfferService) ClearDraft() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.draft = newDraft()
}

// MakeOffer validates the draft, submits it to the wallet backend and, on
// success, clears the draft so a second submission cannot reuse stale
// amounts. Marketplace eligibility is captured from the draft before it is
// cleared. On any failure the draft is left untouched.
func (s *OfferService) MakeOffer(ctx context.Context) (*MakeOfferResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	request, err := s.builder.Build(
		s.draft.Offered, s.draft.Requested, s.draft.Fee, s.draft.Expiration,
	)
	if err != nil {
		return nil, err
	}

	dexieEligible := domain.DexieEligible(s.draft.Requested)
	mintGardenEligible := domain.MintGardenEligible(
		s.draft.Offered, s.draft.Requested, s.splitMode,
	)

	offerText, err := s.wallet.CreateOffer(ctx, *request)
	if err != nil {
		log.WithError(err).Warn("offer creation failed")
		return nil, err
	}

	log.WithField("draft", s.draft.Id).Debug("offer created, clearing draft")
	s.draft = newDraft()

	return &MakeOfferResult{
		OfferText:          offerText,
		DexieEligible:      dexieEligible,
		MintGardenEligible: mintGardenEligible,
	}, nil
}

// ViewOffer parses an offer text through the wallet backend and evaluates
// its marketplace eligibility.
func (s *OfferService) ViewOffer(ctx context.Context, offerText string) (*OfferView, error) {
	if err := validation.Validate(offerText, validation.Required); err != nil {
		return nil, err
	}

	summary, err := s.wallet.ViewOffer(ctx, offerText)
	if err != nil {
		return nil, err
	}

	return &OfferView{
		Summary:            *summary,
		OneSided:           domain.IsSummaryOneSided(*summary),
		DexieEligible:      domain.DexieEligibleSummary(*summary),
		MintGardenEligible: domain.MintGardenEligibleSummary(*summary),
	}, nil
}

// ImportOffer persists an offer locally through the wallet backend.
func (s *OfferService) ImportOffer(ctx context.Context, offerText string) error {
	if err := validation.Validate(offerText, validation.Required); err != nil {
		return err
	}
	return s.wallet.ImportOffer(ctx, offerText)
}

// TakeOffer accepts someone else's offer.
func (s *OfferService) TakeOffer(ctx context.Context, offerText, fee string) (string, error) {
	if err := validation.Validate(offerText, validation.Required); err != nil {
		return "", err
	}
	return s.wallet.TakeOffer(ctx, offerText, fee)
}

// UploadToDexie publishes a created offer to Dexie and returns its public
// link. An upload failure does not invalidate the offer.
func (s *OfferService) UploadToDexie(ctx context.Context, offerText string) (string, error) {
	return s.dexie.UploadOffer(ctx, offerText)
}

// UploadToMintGarden publishes a created offer to MintGarden and returns its
// public link.
func (s *OfferService) UploadToMintGarden(ctx context.Context, offerText string) (string, error) {
	return s.mintGarden.UploadOffer(ctx, offerText)
}

// OfferOnDexie reports whether the offer with the given Dexie id is already
// listed. Lookup failures degrade to false.
func (s *OfferService) OfferOnDexie(ctx context.Context, offerId string) bool {
	return s.dexie.OfferExists(ctx, offerId)
}

// OfferOnMintGarden reports whether the given offer text is already listed
// on MintGarden, keyed by the offer's content hash.
func (s *OfferService) OfferOnMintGarden(ctx context.Context, offerText string) bool {
	return s.mintGarden.OfferExists(ctx, offerText)
}

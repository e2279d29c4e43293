// Package mintgarden implements the marketplace client for MintGarden's
// offer upload API. Existence checks are keyed by the offer's content hash.
package mintgarden

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/sproutwallet/sproutd/pkg/httputil"
	"github.com/sproutwallet/sproutd/pkg/marketplace"
	"github.com/sproutwallet/sproutd/pkg/offerhash"
)

const (
	MainnetAPIURL = "https://api.mintgarden.io"
	TestnetAPIURL = "https://api.testnet.mintgarden.io"
)

type mintGarden struct {
	apiURL  string
	testnet bool
	cb      *gobreaker.CircuitBreaker
}

// NewService returns a MintGarden client for the given API base URL.
func NewService(apiURL string, testnet bool) marketplace.Service {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "mintgarden"})
	return &mintGarden{apiURL: apiURL, testnet: testnet, cb: cb}
}

type uploadRequest struct {
	Offer string `json:"offer"`
}

type uploadResponse struct {
	Offer  *uploadedOffer `json:"offer"`
	Detail string         `json:"detail"`
}

type uploadedOffer struct {
	Id string `json:"id"`
}

func (m *mintGarden) UploadOffer(ctx context.Context, offerText string) (string, error) {
	payload, _ := json.Marshal(uploadRequest{Offer: offerText})
	url := fmt.Sprintf("%s/offer", m.apiURL)

	body, err := m.cb.Execute(func() (interface{}, error) {
		_, resp, err := httputil.NewHTTPRequest(
			ctx, http.MethodPost, url, string(payload),
			map[string]string{"Content-Type": "application/json"},
		)
		return resp, err
	})
	if err != nil {
		return "", &marketplace.UploadError{Marketplace: "MintGarden", Reason: err.Error()}
	}

	res := uploadResponse{}
	if err := json.Unmarshal([]byte(body.(string)), &res); err != nil {
		return "", &marketplace.UploadError{Marketplace: "MintGarden", Reason: err.Error()}
	}
	if res.Offer == nil || res.Offer.Id == "" {
		return "", &marketplace.UploadError{Marketplace: "MintGarden", Reason: res.Detail}
	}

	return m.OfferLink(res.Offer.Id), nil
}

type existsResponse struct {
	Id string `json:"id"`
}

// OfferExists checks whether the offer with the given serialized text is
// already listed. The lookup key is the offer's content hash, existence is
// confirmed only when the returned id matches the locally computed hash.
func (m *mintGarden) OfferExists(ctx context.Context, offerText string) bool {
	if offerText == "" {
		return false
	}

	hash := offerhash.Hash(offerText)
	url := fmt.Sprintf("%s/offers/%s", m.apiURL, hash)
	_, body, err := httputil.NewHTTPRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		log.WithError(err).Debug("mintgarden existence check failed")
		return false
	}

	res := existsResponse{}
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return false
	}
	return res.Id == hash
}

func (m *mintGarden) OfferLink(id string) string {
	if m.testnet {
		return fmt.Sprintf("https://testnet.mintgarden.io/offers/%s", id)
	}
	return fmt.Sprintf("https://mintgarden.io/offers/%s", id)
}

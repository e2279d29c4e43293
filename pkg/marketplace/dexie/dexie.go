// Package dexie implements the marketplace client for Dexie's content-drop
// upload API.
package dexie

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/sproutwallet/sproutd/pkg/httputil"
	"github.com/sproutwallet/sproutd/pkg/marketplace"
)

const (
	MainnetAPIURL = "https://api.dexie.space"
	TestnetAPIURL = "https://api-testnet.dexie.space"
)

type dexie struct {
	apiURL  string
	testnet bool
	cb      *gobreaker.CircuitBreaker
}

// NewService returns a Dexie client for the given API base URL.
func NewService(apiURL string, testnet bool) marketplace.Service {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "dexie"})
	return &dexie{apiURL: apiURL, testnet: testnet, cb: cb}
}

type uploadRequest struct {
	Offer    string `json:"offer"`
	DropOnly bool   `json:"drop_only"`
}

type uploadResponse struct {
	Success      bool   `json:"success"`
	Id           string `json:"id"`
	ErrorMessage string `json:"error_message"`
}

func (d *dexie) UploadOffer(ctx context.Context, offerText string) (string, error) {
	payload, _ := json.Marshal(uploadRequest{Offer: offerText, DropOnly: true})
	url := fmt.Sprintf("%s/v1/offers", d.apiURL)

	body, err := d.cb.Execute(func() (interface{}, error) {
		_, resp, err := httputil.NewHTTPRequest(
			ctx, http.MethodPost, url, string(payload),
			map[string]string{"Content-Type": "application/json"},
		)
		return resp, err
	})
	if err != nil {
		return "", &marketplace.UploadError{Marketplace: "Dexie", Reason: err.Error()}
	}

	res := uploadResponse{}
	if err := json.Unmarshal([]byte(body.(string)), &res); err != nil {
		return "", &marketplace.UploadError{Marketplace: "Dexie", Reason: err.Error()}
	}
	if !res.Success {
		return "", &marketplace.UploadError{Marketplace: "Dexie", Reason: res.ErrorMessage}
	}

	return d.OfferLink(res.Id), nil
}

type existsResponse struct {
	Success bool `json:"success"`
}

func (d *dexie) OfferExists(ctx context.Context, offerId string) bool {
	if offerId == "" {
		return false
	}

	url := fmt.Sprintf("%s/v1/offers/%s", d.apiURL, offerId)
	_, body, err := httputil.NewHTTPRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		log.WithError(err).Debug("dexie existence check failed")
		return false
	}

	res := existsResponse{}
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return false
	}
	return res.Success
}

func (d *dexie) OfferLink(id string) string {
	if d.testnet {
		return fmt.Sprintf("https://testnet.dexie.space/offers/%s", id)
	}
	return fmt.Sprintf("https://dexie.space/offers/%s", id)
}

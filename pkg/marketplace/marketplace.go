// Package marketplace defines the contract shared by the third-party offer
// marketplaces a created offer can be published to.
package marketplace

import (
	"context"
	"fmt"
)

// Service is the interface of an offer marketplace client.
type Service interface {
	// UploadOffer publishes the serialized offer and returns its public link.
	UploadOffer(ctx context.Context, offerText string) (string, error)
	// OfferExists reports whether the offer referenced by ref is already
	// listed. Any transport or payload error degrades to false, never to a
	// hard failure.
	OfferExists(ctx context.Context, ref string) bool
	// OfferLink builds the public link for an already uploaded offer.
	OfferLink(id string) string
}

// UploadError is returned when a marketplace rejects an upload or the call
// fails. The offer itself stays valid, the upload can be retried.
type UploadError struct {
	Marketplace string
	Reason      string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload offer to %s: %s", e.Marketplace, e.Reason)
}

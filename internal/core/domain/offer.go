package domain

import (
	"strconv"
	"time"
)

// OfferExpiration is the optional relative lifetime of an offer. The fields
// are free-form strings coming straight from the user, non-numeric input
// counts as zero. A nil *OfferExpiration means the offer never expires.
type OfferExpiration struct {
	Days    string
	Hours   string
	Minutes string
}

// TotalSeconds returns the expiration duration in seconds.
func (e OfferExpiration) TotalSeconds() int64 {
	days := parseField(e.Days)
	hours := parseField(e.Hours)
	minutes := parseField(e.Minutes)
	return days*24*60*60 + hours*60*60 + minutes*60
}

func parseField(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// OfferRequest is the fully validated payload handed to the wallet backend's
// offer-creation operation. All amounts are in integer base units.
type OfferRequest struct {
	Offered         ValidatedBundle
	Requested       ValidatedBundle
	Fee             uint64
	ExpiresAtSecond *int64
}

// OfferBuilder validates an offer draft and assembles the request to be sent
// to the wallet backend. It performs no I/O.
type OfferBuilder struct {
	NativePrecision uint32
	CatPrecision    uint32
	Clock           func() time.Time
}

// NewOfferBuilder returns a builder converting native amounts at
// nativePrecision and CAT amounts at catPrecision.
func NewOfferBuilder(nativePrecision, catPrecision uint32) OfferBuilder {
	return OfferBuilder{
		NativePrecision: nativePrecision,
		CatPrecision:    catPrecision,
		Clock:           time.Now,
	}
}

// Build validates both bundles, the offered one first, computes the absolute
// expiration timestamp and converts the fee to base units. An empty fee
// counts as zero. The current time is rounded up to the next whole second
// before the expiration offset is applied.
func (b OfferBuilder) Build(
	offered, requested AssetBundle, fee string, expiration *OfferExpiration,
) (*OfferRequest, error) {
	offeredAssets, err := offered.Validate(b.NativePrecision, b.CatPrecision)
	if err != nil {
		return nil, err
	}
	requestedAssets, err := requested.Validate(b.NativePrecision, b.CatPrecision)
	if err != nil {
		return nil, err
	}

	var expiresAtSecond *int64
	if expiration != nil {
		totalSeconds := expiration.TotalSeconds()
		if totalSeconds <= 0 {
			return nil, ErrNonPositiveExpiration
		}
		expiresAt := ceilUnix(b.now()) + totalSeconds
		expiresAtSecond = &expiresAt
	}

	feeUnits, err := ToBaseUnits(fee, b.NativePrecision)
	if err != nil {
		return nil, err
	}

	return &OfferRequest{
		Offered:         *offeredAssets,
		Requested:       *requestedAssets,
		Fee:             feeUnits,
		ExpiresAtSecond: expiresAtSecond,
	}, nil
}

func (b OfferBuilder) now() time.Time {
	if b.Clock != nil {
		return b.Clock()
	}
	return time.Now()
}

func ceilUnix(t time.Time) int64 {
	secs := t.Unix()
	if t.Nanosecond() > 0 {
		secs++
	}
	return secs
}

package domain

import "errors"

var (
	// ErrAmountFormat is thrown when a decimal amount cannot be converted
	// to base units at the configured precision.
	ErrAmountFormat = errors.New("amount is not a valid decimal for the configured precision")
	// ErrDuplicateAsset is thrown when the same asset appears twice within one bundle.
	ErrDuplicateAsset = errors.New("asset is already included in the bundle")
	// ErrIncompleteSelection is thrown at submission time when an NFT row
	// was added but no NFT has been selected for it.
	ErrIncompleteSelection = errors.New("an NFT has not been selected yet")
	// ErrNonPositiveExpiration is thrown when an expiring offer resolves to
	// a zero or negative lifetime.
	ErrNonPositiveExpiration = errors.New("expiration must be at least 1 second in the future")
	// ErrUnknownAssetKind is thrown when parsing an offer summary that
	// carries an asset kind outside of currency, token and nft.
	ErrUnknownAssetKind = errors.New("unknown asset kind")
)

// Package offerhash derives a marketplace lookup identifier from an offer's
// serialized text. The identifier carries no ownership semantics, it is a
// pure derived key.
package offerhash

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Hash computes the SHA-256 digest of the UTF-8 bytes of the offer text and
// encodes it with the Bitcoin base58 alphabet. Leading zero bytes of the
// digest become leading '1' characters.
func Hash(offerText string) string {
	digest := sha256.Sum256([]byte(offerText))
	return base58.Encode(digest[:])
}

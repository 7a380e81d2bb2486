package view

import (
    "crypto/sha256"
    "encoding/hex"
)

// Transforms a client address before it enters the fingerprint. The
// default is pass-through; a hashing/salting implementation can be
// swapped in without touching the dedup path.
type Anonymizer interface {
    Anonymize(address string) string
}

type passthroughAnonymizer struct{}

func (passthroughAnonymizer) Anonymize(address string) string {
    return address
}

// Returns the default pass-through anonymizer.
func NewPassthroughAnonymizer() Anonymizer {
    return passthroughAnonymizer{}
}

// Creates the dedup key for a visitor: a SHA-256 hash over the
// client-held session token and the (possibly anonymized) client
// address. Coarse on purpose; devices behind the same address sharing a
// token collapse into one visitor.
func Fingerprint(sessionToken, clientAddress string, anonymizer Anonymizer) string {
    sum := sha256.Sum256([]byte(sessionToken + "|" + anonymizer.Anonymize(clientAddress)))
    return hex.EncodeToString(sum[:])
}

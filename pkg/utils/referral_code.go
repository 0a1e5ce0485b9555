package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ReferralCodeLength is the fixed length of every referral code.
const ReferralCodeLength = 8

// DeriveReferralCode returns the stable code for an owner identifier: the
// first 8 hex chars of its sha256, uppercased. Collisions over the expected
// population are negligible and the code column carries a unique index, so
// a collision fails at insert instead of corrupting the ledger.
func DeriveReferralCode(ownerID string) string {
	sum := sha256.Sum256([]byte(ownerID))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:ReferralCodeLength])
}

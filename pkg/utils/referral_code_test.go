package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveReferralCodeDeterministic(t *testing.T) {
	a := DeriveReferralCode("2b5c7c58-0a6e-4bca-9a2b-111111111111")
	b := DeriveReferralCode("2b5c7c58-0a6e-4bca-9a2b-111111111111")
	assert.Equal(t, a, b)
}

func TestDeriveReferralCodeShape(t *testing.T) {
	code := DeriveReferralCode("owner-1")
	assert.Len(t, code, ReferralCodeLength)
	assert.Regexp(t, "^[0-9A-F]{8}$", code)
}

func TestDeriveReferralCodeDistinctOwners(t *testing.T) {
	assert.NotEqual(t, DeriveReferralCode("owner-1"), DeriveReferralCode("owner-2"))
}

package test

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns an alphanumeric string with a length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	var b strings.Builder
	n := minLen + rand.IntN(maxLen-minLen+1)
	b.Grow(n)
	for range n {
		b.WriteByte(alphanumeric[rand.IntN(len(alphanumeric))])
	}
	return b.String()
}

// RandomEmail returns a lowercase address that is unique across a test run.
func RandomEmail() string {
	return "donor-" + uuid.NewString()[:8] + strings.ToLower(RandomASCIIString(4, 4)) + "@example.org"
}

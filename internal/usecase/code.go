package usecase

import (
	"math/rand/v2"
	"regexp"
)

const (
	couponCodePrefix   = "FB-"
	couponCodeLength   = 8
	couponCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CouponCodePattern matches every code produced by RandomCodeGenerator.
var CouponCodePattern = regexp.MustCompile(`^FB-[A-Z0-9]{8}$`)

// CodeGenerator produces coupon codes.
type CodeGenerator interface {
	Generate() string
}

// RandomCodeGenerator draws code characters uniformly from [A-Z0-9].
// Uniqueness is enforced by the store.
type RandomCodeGenerator struct{}

// NewRandomCodeGenerator constructs RandomCodeGenerator.
func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (RandomCodeGenerator) Generate() string {
	buf := make([]byte, couponCodeLength)
	for i := range buf {
		buf[i] = couponCodeAlphabet[rand.IntN(len(couponCodeAlphabet))]
	}
	return couponCodePrefix + string(buf)
}

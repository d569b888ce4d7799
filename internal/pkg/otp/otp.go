package otp

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
	"strconv"
)

const (
	codeMin  = 100_000
	codeSpan = 900_000
)

// Generator produces one-time passcodes.
//
// Implementations return a six digit decimal string in [100000, 999999] so the
// code never needs zero padding.
type Generator interface {
	Generate() string
}

// Numeric generates codes from math/rand/v2.
//
// The source only needs to be unpredictable enough for short-lived codes
// bounded by an attempt budget; swap in SecureNumeric when a crypto source is
// required.
type Numeric struct{}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a six digit code.
func (*Numeric) Generate() string {
	return strconv.Itoa(codeMin + mathrand.IntN(codeSpan))
}

// SecureNumeric generates codes from crypto/rand.
type SecureNumeric struct{}

// NewSecureNumeric returns a SecureNumeric code generator.
func NewSecureNumeric() *SecureNumeric {
	return &SecureNumeric{}
}

// Generate returns a six digit code. It falls back to the non-crypto source
// when the system randomness source fails, which should not happen on a
// healthy host.
func (*SecureNumeric) Generate() string {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return strconv.Itoa(codeMin + mathrand.IntN(codeSpan))
	}
	return strconv.Itoa(codeMin + int(n.Int64()))
}

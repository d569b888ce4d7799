package otp

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reSixDigits = regexp.MustCompile(`^[1-9]\d{5}$`)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric()

	for range 1000 {
		code := gen.Generate()
		assert.Regexp(t, reSixDigits, code)
	}
}

func TestSecureNumericGenerate(t *testing.T) {
	gen := NewSecureNumeric()

	for range 1000 {
		code := gen.Generate()
		assert.Regexp(t, reSixDigits, code)
	}
}

func TestGenerateNotConstant(t *testing.T) {
	gen := NewNumeric()

	seen := make(map[string]struct{})
	for range 50 {
		seen[gen.Generate()] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}

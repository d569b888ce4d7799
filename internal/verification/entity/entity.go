// Package entity holds the verification domain model and key layout.
package entity

import "time"

// Key prefixes in the shared key-value store. Every key is scoped by the
// normalized (trimmed, lowercased) email address.
const (
	keyPrefixCode     = "otp:"
	keyPrefixCooldown = "otp-cooldown:"
	keyPrefixAttempts = "otp-attempts:"
	keyPrefixVerified = "verified:"
)

// Default settings applied when configuration omits a value.
const (
	DefaultCodeTTL     = 10 * time.Minute
	DefaultCooldown    = time.Minute
	DefaultMaxAttempts = 5
)

// CodeKey returns the store key holding the active verification code.
func CodeKey(email string) string {
	return keyPrefixCode + email
}

// CooldownKey returns the store key guarding re-issue frequency.
func CooldownKey(email string) string {
	return keyPrefixCooldown + email
}

// AttemptsKey returns the store key counting failed verify attempts.
func AttemptsKey(email string) string {
	return keyPrefixAttempts + email
}

// VerifiedKey returns the store key marking an address as verified.
func VerifiedKey(email string) string {
	return keyPrefixVerified + email
}

// Settings controls verification behavior per deployment.
type Settings struct {
	// CodeTTL is how long an issued code stays valid.
	CodeTTL time.Duration
	// Cooldown is the minimum delay between two code issues for one address.
	Cooldown time.Duration
	// MaxAttempts is the number of verify attempts allowed per issued code.
	MaxAttempts int64
	// GateFailOpen treats an address as verified when the store is unreachable.
	// Defaults to fail closed.
	GateFailOpen bool
}

// Normalize fills zero values with defaults.
func (s Settings) Normalize() Settings {
	if s.CodeTTL <= 0 {
		s.CodeTTL = DefaultCodeTTL
	}
	if s.Cooldown <= 0 {
		s.Cooldown = DefaultCooldown
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	return s
}

// Package otp generates short-lived numeric one-time passcodes.
//
// These are random codes delivered out of band (email), not TOTP. Callers
// depend on the Generator interface so the randomness source can be replaced
// in tests or upgraded to a crypto source without touching business code.
package otp

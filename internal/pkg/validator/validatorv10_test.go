package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subject struct {
	Email string `validate:"required,emailaddr"`
	Code  string `validate:"omitempty,otpcode"`
}

func newValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)

	return v
}

func TestValidateEmailAddr(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "plain address", email: "user@example.com"},
		{name: "subdomain", email: "user@mail.example.co.id"},
		{name: "plus tag", email: "user+tag@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at", email: "userexample.com", wantErr: true},
		{name: "missing domain dot", email: "user@example", wantErr: true},
		{name: "two ats", email: "a@b@example.com", wantErr: true},
		{name: "inner space", email: "us er@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(subject{Email: tt.email})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateOTPCode(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "six digits", code: "123456"},
		{name: "five digits", code: "12345", wantErr: true},
		{name: "seven digits", code: "1234567", wantErr: true},
		{name: "letters", code: "12a456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(subject{Email: "user@example.com", Code: tt.code})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateReturnsSnakeCaseFields(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(struct {
		UserEmail string `validate:"required,emailaddr"`
	}{})
	require.Error(t, err)

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "user_email")
}

package usecase

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/verification/entity"
)

func requireStatus(t *testing.T, err error, want int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, want, gerr.StatusCode())
}

func TestIssueCode(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	out, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "  User@Example.COM "})
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", out.Email)
	assert.Equal(t, int64(600), out.ExpiresIn)
	assert.Equal(t, 1, h.mail.count())

	code, err := h.store.Get(ctx, entity.CodeKey("user@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestIssueCodeInvalidEmail(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})

	_, err := h.uc.IssueCode(t.Context(), IssueCodeInput{Email: "not-an-email"})
	requireStatus(t, err, http.StatusBadRequest)
	assert.Zero(t, h.mail.count())
}

func TestIssueCodeThrottled(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	_, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)

	_, err = h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	requireStatus(t, err, http.StatusTooManyRequests)
	assert.Equal(t, 1, h.mail.count())
}

func TestIssueCodeAfterCooldownReplacesCode(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	_, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)

	h.clk.Advance(entity.DefaultCooldown + time.Second)

	_, err = h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)

	code, err := h.store.Get(ctx, entity.CodeKey("user@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "654321", code)
	assert.Equal(t, 2, h.mail.count())
}

func TestIssueCodeResetsAttempts(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	_, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)

	// Burn some attempts against the first code.
	for range 3 {
		_, err = h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "999999"})
		requireStatus(t, err, http.StatusBadRequest)
	}

	h.clk.Advance(entity.DefaultCooldown + time.Second)

	_, err = h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)

	_, err = h.store.Get(ctx, entity.AttemptsKey("user@example.com"))
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestIssueCodeMailFailure(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	h.mail.fail = errors.New("smtp down")

	_, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	requireStatus(t, err, http.StatusInternalServerError)

	// Delivery failure does not roll back issuance: the code stays stored
	// and ages out on its own, and the cooldown keeps throttling.
	code, err := h.store.Get(ctx, entity.CodeKey("user@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	h.mail.fail = nil

	_, err = h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	requireStatus(t, err, http.StatusTooManyRequests)
}

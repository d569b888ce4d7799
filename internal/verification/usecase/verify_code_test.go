package usecase

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/verification/entity"
	"github.com/verimail/verimail/internal/verification/outbound/store"
)

func issueFor(t *testing.T, h *harness, email string) {
	t.Helper()

	_, err := h.uc.IssueCode(t.Context(), IssueCodeInput{Email: email})
	require.NoError(t, err)
}

func TestVerifyCodeRoundTrip(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	out, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "User@Example.com", Code: " 123456 "})
	require.NoError(t, err)
	assert.True(t, out.Verified)
	assert.Equal(t, "user@example.com", out.Email)

	// Code and attempt counter are gone, the verified flag is set.
	_, err = h.store.Get(ctx, entity.CodeKey("user@example.com"))
	assert.ErrorIs(t, err, goerror.ErrNotFound)
	_, err = h.store.Get(ctx, entity.AttemptsKey("user@example.com"))
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	flag, err := h.store.Get(ctx, entity.VerifiedKey("user@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "1", flag)
}

func TestVerifyCodePublishesEvent(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	require.NoError(t, err)

	require.NoError(t, h.manager.Wait())

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, "user@example.com", h.publisher.events[0].Email)
	assert.Equal(t, int64(42), h.publisher.events[0].EventID)
	assert.Equal(t, h.clk.Now(), h.publisher.events[0].VerifiedAt)
}

func TestVerifyCodeWithoutIssue(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})

	_, err := h.uc.VerifyCode(t.Context(), VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestVerifyCodeExpired(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")
	h.clk.Advance(entity.DefaultCodeTTL + time.Second)

	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestVerifyCodeMismatch(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "999999"})
	requireStatus(t, err, http.StatusBadRequest)

	// A wrong guess does not consume the code.
	out, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	require.NoError(t, err)
	assert.True(t, out.Verified)
}

func TestVerifyCodeAttemptBudget(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{MaxAttempts: 5})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	for range 5 {
		_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "999999"})
		requireStatus(t, err, http.StatusBadRequest)
	}

	// Budget exhausted; even the right code is refused now.
	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	requireStatus(t, err, http.StatusTooManyRequests)
}

func TestVerifyCodeFourWrongThenCorrect(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{MaxAttempts: 5})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	for range 4 {
		_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "999999"})
		requireStatus(t, err, http.StatusBadRequest)
	}

	out, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	require.NoError(t, err)
	assert.True(t, out.Verified)
}

func TestVerifyCodeAfterSuccessExpired(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	issueFor(t, h, "user@example.com")

	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	require.NoError(t, err)

	// The code is single use.
	_, err = h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestVerifyCodeInvalidInput(t *testing.T) {
	h := newHarness(t, nil, entity.Settings{})
	ctx := t.Context()

	_, err := h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "nope", Code: "123456"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "12345"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestVerifyCodeNullStore(t *testing.T) {
	h := newHarness(t, store.NewNull(), entity.Settings{})
	ctx := t.Context()

	// Issuing still works; the write is discarded but mail goes out.
	_, err := h.uc.IssueCode(ctx, IssueCodeInput{Email: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, h.mail.count())

	// Verifying cannot work without a readable backend.
	_, err = h.uc.VerifyCode(ctx, VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	requireStatus(t, err, http.StatusInternalServerError)
}

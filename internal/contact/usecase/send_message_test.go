package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/contact/entity"
	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/validator"
)

const allowedFrom = "form@verimail.dev"

type stubGate struct {
	verified bool
	err      error
}

func (s *stubGate) IsVerified(context.Context, string) (bool, error) {
	return s.verified, s.err
}

type relayRecorder struct {
	relayed []entity.Message
	fail    error
}

func (r *relayRecorder) Relay(_ context.Context, msg entity.Message) error {
	if r.fail != nil {
		return r.fail
	}

	r.relayed = append(r.relayed, msg)
	return nil
}

func newContactUC(t *testing.T, gate *stubGate, relay *relayRecorder) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return NewUsecase(Dependency{
		Gate:        gate,
		Relay:       relay,
		Validator:   v,
		Telemetry:   instrument.NewNoop(),
		FromAddress: allowedFrom,
	})
}

func requireStatus(t *testing.T, err error, want int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, want, gerr.StatusCode())
}

func validInput() SendMessageInput {
	return SendMessageInput{
		To:       "owner@example.com",
		UserName: "Dana",
		SentBy:   "user@example.com",
		Message:  "Just checking in.",
	}
}

func TestSendMessage(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	in := validInput()
	in.SentBy = " User@Example.com "

	out, err := uc.SendMessage(t.Context(), in)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", out.To)
	assert.Equal(t, "user@example.com", out.SentBy)

	require.Len(t, relay.relayed, 1)
	assert.Equal(t, "owner@example.com", relay.relayed[0].To)
	assert.Equal(t, "user@example.com", relay.relayed[0].SentBy)
	assert.Equal(t, "Dana", relay.relayed[0].UserName)
	assert.Equal(t, "Just checking in.", relay.relayed[0].Body)
}

func TestSendMessageExplicitFrom(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	in := validInput()
	in.From = allowedFrom

	_, err := uc.SendMessage(t.Context(), in)
	require.NoError(t, err)
	assert.Len(t, relay.relayed, 1)
}

func TestSendMessageWrongFrom(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	in := validInput()
	in.From = "attacker@example.com"

	_, err := uc.SendMessage(t.Context(), in)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, relay.relayed)
}

func TestSendMessageUnverified(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: false}, relay)

	_, err := uc.SendMessage(t.Context(), validInput())
	requireStatus(t, err, http.StatusForbidden)
	assert.Empty(t, relay.relayed)
}

func TestSendMessageGateError(t *testing.T) {
	uc := newContactUC(t, &stubGate{err: goerror.NewServer(assert.AnError)}, &relayRecorder{})

	_, err := uc.SendMessage(t.Context(), validInput())
	requireStatus(t, err, http.StatusInternalServerError)
}

func TestSendMessageSanitizesHTML(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	in := validInput()
	in.UserName = `<b>Dana</b>`
	in.Message = `before <script>alert("x")</script> after & more`

	_, err := uc.SendMessage(t.Context(), in)
	require.NoError(t, err)

	require.Len(t, relay.relayed, 1)
	assert.Equal(t, "Dana", relay.relayed[0].UserName)
	assert.NotContains(t, relay.relayed[0].Body, "<script>")
	assert.Contains(t, relay.relayed[0].Body, "before")
	assert.Contains(t, relay.relayed[0].Body, "after & more")
}

func TestSendMessageOnlyMarkup(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	in := validInput()
	in.Message = `<script>alert("x")</script>`

	_, err := uc.SendMessage(t.Context(), in)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, relay.relayed)
}

func TestSendMessageInvalidInput(t *testing.T) {
	relay := &relayRecorder{}
	uc := newContactUC(t, &stubGate{verified: true}, relay)

	tests := []struct {
		name   string
		mutate func(*SendMessageInput)
	}{
		{name: "bad recipient", mutate: func(in *SendMessageInput) { in.To = "nope" }},
		{name: "bad sender", mutate: func(in *SendMessageInput) { in.SentBy = "nope" }},
		{name: "empty name", mutate: func(in *SendMessageInput) { in.UserName = "" }},
		{name: "empty message", mutate: func(in *SendMessageInput) { in.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.SendMessage(t.Context(), in)
			requireStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestSendMessageRelayFailure(t *testing.T) {
	uc := newContactUC(t, &stubGate{verified: true}, &relayRecorder{fail: assert.AnError})

	_, err := uc.SendMessage(t.Context(), validInput())
	requireStatus(t, err, http.StatusInternalServerError)
}

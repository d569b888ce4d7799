package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/contact/usecase"
	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/pkg/uid"
)

type stubUC struct {
	out *usecase.SendMessageOutput
	err error
}

func (s *stubUC) SendMessage(context.Context, usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	return s.out, s.err
}

func newServer(t *testing.T, uc contactUC) *httptest.Server {
	t.Helper()

	ro := router.NewRouter(router.Config{
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(ro, uc)

	srv := httptest.NewServer(ro)
	t.Cleanup(srv.Close)

	return srv
}

const sendEmailBody = `{"to":"owner@example.com","user_name":"Dana","sent_by":"user@example.com","message":"Hi there"}`

func TestSendEmailEndpoint(t *testing.T) {
	srv := newServer(t, &stubUC{
		out: &usecase.SendMessageOutput{To: "owner@example.com", SentBy: "user@example.com"},
	})

	resp, err := srv.Client().Post(srv.URL+"/send-email", "application/json", strings.NewReader(sendEmailBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Email sent successfully", payload["message"])

	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", data["to"])
	assert.Equal(t, "user@example.com", data["sent_by"])
}

func TestSendEmailEndpointUnverified(t *testing.T) {
	srv := newServer(t, &stubUC{
		err: goerror.NewBusiness("Sender email not verified", goerror.CodeForbidden),
	})

	resp, err := srv.Client().Post(srv.URL+"/send-email", "application/json", strings.NewReader(sendEmailBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Sender email not verified", payload["message"])
}

func TestSendEmailEndpointBadBody(t *testing.T) {
	srv := newServer(t, &stubUC{})

	resp, err := srv.Client().Post(srv.URL+"/send-email", "application/json", strings.NewReader(`{"to":`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

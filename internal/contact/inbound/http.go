// Package inbound exposes the contact relay over HTTP.
package inbound

import (
	"context"

	"github.com/verimail/verimail/internal/contact/usecase"
	"github.com/verimail/verimail/internal/pkg/router"
)

type contactUC interface {
	SendMessage(ctx context.Context, in usecase.SendMessageInput) (*usecase.SendMessageOutput, error)
}

type httpEndpoint struct {
	uc contactUC
}

// RegisterHTTPEndpoint mounts the contact routes on the router.
func RegisterHTTPEndpoint(ro *router.Router, uc contactUC) {
	h := &httpEndpoint{uc: uc}

	ro.POST("/send-email", h.sendEmail)
}

// Package inbound exposes verification over HTTP.
package inbound

import (
	"context"

	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/verification/usecase"
)

type verificationUC interface {
	IssueCode(ctx context.Context, in usecase.IssueCodeInput) (*usecase.IssueCodeOutput, error)
	VerifyCode(ctx context.Context, in usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error)
}

type httpEndpoint struct {
	uc verificationUC
}

// RegisterHTTPEndpoint mounts the verification routes on the router.
func RegisterHTTPEndpoint(ro *router.Router, uc verificationUC) {
	h := &httpEndpoint{uc: uc}

	ro.POST("/send-otp", h.sendOTP)
	ro.POST("/verify-otp", h.verifyOTP)
}

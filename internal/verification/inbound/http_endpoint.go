package inbound

import (
	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/verification/usecase"
)

func (h *httpEndpoint) sendOTP(r *router.Request) (any, error) {
	var req sendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.IssueCode(r.Context(), usecase.IssueCodeInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return sendOTPResponse{
		Email:     out.Email,
		ExpiresIn: out.ExpiresIn,
	}, nil
}

func (h *httpEndpoint) verifyOTP(r *router.Request) (any, error) {
	var req verifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.VerifyCode(r.Context(), usecase.VerifyCodeInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return verifyOTPResponse{
		Email:    out.Email,
		Verified: out.Verified,
	}, nil
}

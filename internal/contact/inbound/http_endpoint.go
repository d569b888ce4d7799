package inbound

import (
	"github.com/verimail/verimail/internal/contact/usecase"
	"github.com/verimail/verimail/internal/pkg/router"
)

func (h *httpEndpoint) sendEmail(r *router.Request) (any, error) {
	var req sendEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.SendMessage(r.Context(), usecase.SendMessageInput{
		To:       req.To,
		UserName: req.UserName,
		SentBy:   req.SentBy,
		Message:  req.Message,
		From:     req.From,
	})
	if err != nil {
		return nil, err
	}

	return sendEmailResponse{To: out.To, SentBy: out.SentBy}, nil
}

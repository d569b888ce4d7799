package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/verification/entity"
)

// IsVerified reports whether the address has passed verification.
//
// When the store is unreachable the gate fails closed unless the deployment
// configured GateFailOpen, in which case callers proceed as if verified.
func (uc *Usecase) IsVerified(ctx context.Context, email string) (bool, error) {
	ctx, span := uc.startSpan(ctx, "IsVerified")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	val, err := uc.dep.Store.Get(ctx, entity.VerifiedKey(email))
	if errors.Is(err, goerror.ErrNotFound) {
		return false, nil
	}
	if errors.Is(err, goerror.ErrUnavailable) && uc.settings.GateFailOpen {
		slog.WarnContext(ctx, "verification store unavailable, gate configured to fail open", "email", email)
		return true, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to read verified flag", "error", err, "email", email)
		return false, goerror.NewServer(err)
	}

	return val == "1", nil
}

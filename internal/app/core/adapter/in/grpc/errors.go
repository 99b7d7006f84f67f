package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
)

// toStatus 把 domain 錯誤轉成 gRPC status，訊息保留原始錯誤文字
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		return codes.NotFound

	// ErrNotRequester 包含 ErrNotAnOwner
	case errors.Is(err, domain.ErrNotAnOwner),
		errors.Is(err, domain.ErrSelfApprovalForbidden):
		return codes.PermissionDenied

	case errors.Is(err, domain.ErrInvalidOwnerSet),
		errors.Is(err, domain.ErrInsufficientFunding),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownCommand),
		errors.Is(err, domain.ErrCommandIDConflict):
		return codes.InvalidArgument

	case errors.Is(err, domain.ErrOwnerAccountLimitExceeded),
		errors.Is(err, domain.ErrDuplicateApproval),
		errors.Is(err, domain.ErrRequestAlreadyExecuted),
		errors.Is(err, domain.ErrQuorumNotMet),
		errors.Is(err, domain.ErrInsufficientBalanceAtExecution):
		return codes.FailedPrecondition

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return codes.Unauthenticated

	case errors.Is(err, usecase.ErrSubscriberLagged):
		return codes.ResourceExhausted

	case errors.Is(err, domain.ErrLedgerClosed):
		return codes.Unavailable

	case errors.Is(err, context.Canceled):
		return codes.Canceled

	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded

	default:
		return codes.Internal
	}
}

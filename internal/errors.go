package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/DrGermanius/backoffice/internal/model"
)

// error kinds, mapped to HTTP statuses by the handlers
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrNoOrganization = fmt.Errorf("%w: organization is required", ErrForbidden)
	ErrNotAdmin       = fmt.Errorf("%w: admin role required", ErrForbidden)

	ErrInvalidAmount         = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrMissingBankDetails    = fmt.Errorf("%w: bank code, account number and account holder name are required", ErrValidation)
	ErrUnknownBankCode       = fmt.Errorf("%w: invalid bank code", ErrValidation)
	ErrInvalidAccountNumber  = fmt.Errorf("%w: invalid account number for bank", ErrValidation)
	ErrInsufficientBalance   = fmt.Errorf("%w: insufficient balance", ErrValidation)
	ErrEmptyRejectionReason  = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrEmptyBatch            = fmt.Errorf("%w: withdrawal ids are required", ErrValidation)
	ErrUnknownPayoutStatus   = fmt.Errorf("%w: unknown payout status", ErrValidation)
	ErrInvalidCallbackToken  = fmt.Errorf("%w: invalid callback token", ErrUnauthenticated)
	ErrWithdrawalNotFound    = fmt.Errorf("%w: withdrawal not found", ErrNotFound)
	ErrNoApprovedWithdrawals = fmt.Errorf("%w: no approved withdrawals found", ErrNotFound)
	ErrPaymentInfoNotFound   = fmt.Errorf("%w: payment info not found", ErrNotFound)
	ErrDuplicateReferenceID  = errors.New("reference id already exists")
	ErrStateChanged          = errors.New("record is no longer in the expected state")
)

// ConflictError carries what the caller needs to fix or wait out the conflict.
type ConflictError struct {
	Message        string
	CurrentStatus  string
	NextEligibleAt *time.Time
	DaysRemaining  int
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func statusConflict(current string) *ConflictError {
	return &ConflictError{
		Message:       fmt.Sprintf("withdrawal is %s, only %s withdrawals can be decided", current, model.ApprovalStatusPendingApproval),
		CurrentStatus: current,
	}
}

func insufficientBalance(requested, available int64) error {
	return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientBalance, requested, available)
}

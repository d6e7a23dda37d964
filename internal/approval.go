package internal

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DrGermanius/backoffice/internal/model"
)

// Approve moves a PENDING_APPROVAL withdrawal to APPROVED. The payout status is left alone.
func (s *Service) Approve(ctx context.Context, auth model.AuthContext, withdrawalID string) (model.WithdrawalOutput, error) {
	w, err := s.decide(ctx, auth, model.ApprovalUpdate{
		WithdrawalID:   withdrawalID,
		ApprovalStatus: model.ApprovalStatusApproved,
	})
	if err != nil {
		return model.WithdrawalOutput{}, err
	}

	s.logger.Infow("withdrawal approved", "withdrawalID", w.ID, "referenceID", w.ReferenceID, "approvedBy", auth.UserID)
	return w.Output(), nil
}

// Reject moves a PENDING_APPROVAL withdrawal to REJECTED and cancels it, which releases its amount.
func (s *Service) Reject(ctx context.Context, auth model.AuthContext, withdrawalID, reason string) (model.WithdrawalOutput, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		if err := RequireAdmin(auth); err != nil {
			return model.WithdrawalOutput{}, err
		}
		return model.WithdrawalOutput{}, ErrEmptyRejectionReason
	}

	w, err := s.decide(ctx, auth, model.ApprovalUpdate{
		WithdrawalID:    withdrawalID,
		ApprovalStatus:  model.ApprovalStatusRejected,
		Status:          model.WithdrawalStatusCancelled,
		RejectionReason: &reason,
	})
	if err != nil {
		return model.WithdrawalOutput{}, err
	}

	s.logger.Infow("withdrawal rejected", "withdrawalID", w.ID, "referenceID", w.ReferenceID,
		"rejectedBy", auth.UserID, "reason", reason)
	return w.Output(), nil
}

func (s *Service) decide(ctx context.Context, auth model.AuthContext, u model.ApprovalUpdate) (model.Withdrawal, error) {
	if err := RequireAdmin(auth); err != nil {
		return model.Withdrawal{}, err
	}
	// ids are UUIDs, anything else cannot exist
	if _, err := uuid.Parse(u.WithdrawalID); err != nil {
		return model.Withdrawal{}, ErrWithdrawalNotFound
	}

	w, err := s.repo.GetWithdrawal(ctx, auth.OrganizationID, u.WithdrawalID)
	if err != nil {
		return model.Withdrawal{}, err
	}
	if w.ApprovalStatus != model.ApprovalStatusPendingApproval {
		return model.Withdrawal{}, statusConflict(w.ApprovalStatus)
	}

	u.OrganizationID = auth.OrganizationID
	u.DecidedBy = auth.UserID
	u.DecidedAt = s.Now()

	updated, err := s.repo.UpdateApproval(ctx, u)
	if errors.Is(err, ErrStateChanged) {
		// someone else decided in between, report what they decided
		current, getErr := s.repo.GetWithdrawal(ctx, auth.OrganizationID, u.WithdrawalID)
		if getErr != nil {
			return model.Withdrawal{}, getErr
		}
		return model.Withdrawal{}, statusConflict(current.ApprovalStatus)
	}
	if err != nil {
		return model.Withdrawal{}, err
	}
	return updated, nil
}

package internal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/payout"
)

const (
	reasonInvalidBankCode   = "invalid bank code"
	reasonUndecryptable     = "stored bank details could not be decrypted"
	reasonSentButUnrecorded = "payout sent but not recorded"
)

// BatchDisburse sends every APPROVED withdrawal among ids to the payout provider, one at a
// time and in order. A failing item never aborts the batch and nothing is rolled back.
func (s *Service) BatchDisburse(ctx context.Context, auth model.AuthContext, ids []string) (model.BatchResult, error) {
	if err := RequireAdmin(auth); err != nil {
		return model.BatchResult{}, err
	}

	ids = compactIDs(ids)
	if len(ids) == 0 {
		return model.BatchResult{}, ErrEmptyBatch
	}
	ids = s.parsableIDs(ids)
	if len(ids) == 0 {
		return model.BatchResult{}, ErrNoApprovedWithdrawals
	}

	ws, err := s.repo.GetApprovedWithdrawals(ctx, auth.OrganizationID, ids)
	if err != nil {
		return model.BatchResult{}, err
	}
	if len(ws) == 0 {
		return model.BatchResult{}, ErrNoApprovedWithdrawals
	}

	batchID := BatchID(s.Now())
	s.logger.Infow("batch disbursement started", "batchID", batchID, "organizationID", auth.OrganizationID,
		"requested", len(ids), "approved", len(ws))

	res := model.BatchResult{BatchID: batchID, Results: make([]model.BatchItemResult, 0, len(ws))}
	for _, w := range ws {
		item := s.disburseOne(ctx, batchID, w)
		if item.Success {
			res.SuccessCount++
		} else {
			res.FailureCount++
		}
		res.Results = append(res.Results, item)
	}

	s.logger.Infow("batch disbursement finished", "batchID", batchID,
		"successCount", res.SuccessCount, "failureCount", res.FailureCount)
	return res, nil
}

func (s *Service) disburseOne(ctx context.Context, batchID string, w model.Withdrawal) model.BatchItemResult {
	fail := func(reason string) model.BatchItemResult {
		s.logger.Warnw("withdrawal not disbursed", "batchID", batchID, "withdrawalID", w.ID,
			"referenceID", w.ReferenceID, "reason", reason)
		return model.BatchItemResult{WithdrawalID: w.ID, ReferenceID: w.ReferenceID, Reason: reason}
	}

	channelCode, ok := payout.ChannelCode(w.BankCode)
	if !ok {
		return fail(reasonInvalidBankCode)
	}

	req, err := s.PayoutRequest(w, channelCode)
	if err != nil {
		return fail(err.Error())
	}

	p, err := s.provider.CreatePayout(ctx, req)
	if err != nil {
		return fail(err.Error())
	}

	// the payout exists either way, keep it holding the balance
	status, ok := model.PayoutStatus(p.Status)
	if !ok {
		s.logger.Warnw("unknown payout status, recording as accepted", "payoutID", p.ID, "status", p.Status)
		status = model.WithdrawalStatusAccepted
	}

	err = s.repo.MarkDisbursed(ctx, model.DisbursementUpdate{
		WithdrawalID:     w.ID,
		BatchID:          batchID,
		PayoutProviderID: p.ID,
		Status:           status,
		DisbursedAt:      s.Now(),
	})
	if err != nil {
		s.logger.Errorw("payout created but withdrawal not updated", "batchID", batchID, "withdrawalID", w.ID,
			"referenceID", w.ReferenceID, "payoutID", p.ID, "error", err.Error())
		return model.BatchItemResult{WithdrawalID: w.ID, ReferenceID: w.ReferenceID, ProviderID: p.ID, Reason: reasonSentButUnrecorded}
	}

	return model.BatchItemResult{
		WithdrawalID: w.ID,
		ReferenceID:  w.ReferenceID,
		Success:      true,
		ProviderID:   p.ID,
		Status:       status,
	}
}

// PayoutRequest decrypts the stored bank details into the request sent to the provider.
// Ciphertext never leaves the service: a value that does not decrypt is an error.
func (s *Service) PayoutRequest(w model.Withdrawal, channelCode string) (payout.Request, error) {
	accountNumber := s.vault.Decrypt(w.AccountNumberEncrypted)
	holderName := s.vault.Decrypt(w.AccountHolderNameEncrypted)
	if accountNumber == "" || holderName == "" {
		return payout.Request{}, errors.New(reasonUndecryptable)
	}

	return payout.Request{
		ReferenceID: w.ReferenceID,
		ChannelCode: channelCode,
		ChannelProperties: payout.ChannelProperties{
			AccountHolderName: holderName,
			AccountNumber:     accountNumber,
		},
		Amount:         w.Amount,
		Description:    fmt.Sprintf("Withdrawal %s", w.ReferenceID),
		IdempotencyKey: w.ID + ":" + w.ReferenceID,
	}, nil
}

// Reconcile compares the organization's in-flight withdrawals with the provider. Payouts a
// batch sent but failed to record are finalized, and non-terminal payout statuses are refreshed.
func (s *Service) Reconcile(ctx context.Context, orgID string) (model.ReconcileReport, error) {
	report := model.ReconcileReport{Recovered: []string{}, Updated: []string{}, Failed: []string{}}

	approved, _, err := s.repo.GetWithdrawals(ctx, model.WithdrawalFilter{
		OrganizationID: orgID,
		ApprovalStatus: model.ApprovalStatusApproved,
	})
	if err != nil {
		return report, err
	}

	batchID := BatchID(s.Now())
	for _, w := range approved {
		ps, err := s.provider.GetPayoutsByReference(ctx, w.ReferenceID)
		if err != nil {
			s.logger.Errorf("reconcile: could not look up payouts for %s: %s", w.ReferenceID, err.Error())
			report.Failed = append(report.Failed, w.ID)
			continue
		}
		if len(ps) == 0 {
			continue
		}

		p := ps[0]
		status, ok := model.PayoutStatus(p.Status)
		if !ok {
			status = model.WithdrawalStatusAccepted
		}
		err = s.repo.MarkDisbursed(ctx, model.DisbursementUpdate{
			WithdrawalID:     w.ID,
			BatchID:          batchID,
			PayoutProviderID: p.ID,
			Status:           status,
			DisbursedAt:      s.Now(),
		})
		if err != nil {
			s.logger.Errorf("reconcile: could not record payout %s for %s: %s", p.ID, w.ID, err.Error())
			report.Failed = append(report.Failed, w.ID)
			continue
		}
		s.logger.Infow("reconcile: recovered unrecorded payout", "withdrawalID", w.ID, "payoutID", p.ID, "status", status)
		report.Recovered = append(report.Recovered, w.ID)
	}

	disbursed, _, err := s.repo.GetWithdrawals(ctx, model.WithdrawalFilter{
		OrganizationID: orgID,
		ApprovalStatus: model.ApprovalStatusDisbursed,
	})
	if err != nil {
		return report, err
	}

	for _, w := range disbursed {
		if model.IsTerminalStatus(w.Status) || w.PayoutProviderID == nil {
			continue
		}

		p, err := s.provider.GetPayout(ctx, *w.PayoutProviderID)
		if err != nil {
			s.logger.Errorf("reconcile: could not get payout %s: %s", *w.PayoutProviderID, err.Error())
			report.Failed = append(report.Failed, w.ID)
			continue
		}
		status, ok := model.PayoutStatus(p.Status)
		if !ok {
			s.logger.Errorf("reconcile: unknown status %q for payout %s", p.Status, p.ID)
			report.Failed = append(report.Failed, w.ID)
			continue
		}
		if status == w.Status {
			continue
		}

		if _, err = s.repo.UpdatePayoutStatus(ctx, p.ID, status); err != nil {
			s.logger.Errorf("reconcile: could not update payout %s: %s", p.ID, err.Error())
			report.Failed = append(report.Failed, w.ID)
			continue
		}
		report.Updated = append(report.Updated, w.ID)
	}

	s.logger.Infow("reconcile finished", "organizationID", orgID,
		"recovered", len(report.Recovered), "updated", len(report.Updated), "failed", len(report.Failed))
	return report, nil
}

// HandlePayoutCallback mirrors a provider status notification onto the withdrawal.
// Notifications for a payout that already reached a terminal status change nothing.
func (s *Service) HandlePayoutCallback(ctx context.Context, cb model.PayoutCallback) (model.WithdrawalOutput, error) {
	if cb.ID == "" || strings.TrimSpace(cb.Status) == "" {
		return model.WithdrawalOutput{}, errors.Wrap(ErrValidation, "payout id and status are required")
	}
	status, ok := model.PayoutStatus(cb.Status)
	if !ok {
		return model.WithdrawalOutput{}, errors.Wrapf(ErrUnknownPayoutStatus, "%q", cb.Status)
	}

	w, err := s.repo.UpdatePayoutStatus(ctx, cb.ID, status)
	if err != nil {
		return model.WithdrawalOutput{}, err
	}

	if w.Status != status {
		s.logger.Warnw("payout already final, status ignored", "withdrawalID", w.ID, "payoutID", cb.ID,
			"current", w.Status, "received", status)
		return w.Output(), nil
	}
	s.logger.Infow("payout status updated", "withdrawalID", w.ID, "payoutID", cb.ID, "status", status)
	return w.Output(), nil
}

// BatchID is shared by every withdrawal dispatched in one call.
func BatchID(t time.Time) string {
	return fmt.Sprintf("BATCH-%d", t.UnixMilli())
}

// parsableIDs drops ids that are not UUIDs. Like ids that are not APPROVED, they get no result item.
func (s *Service) parsableIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			s.logger.Warnw("skipping malformed withdrawal id", "withdrawalID", id)
			continue
		}
		out = append(out, id)
	}
	return out
}

func compactIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/payout"
	"github.com/DrGermanius/backoffice/internal/vault"
)

const (
	referenceSuffixLen = 6
	// a clash on reference_id is retried with the timestamp moved forward by a millisecond
	referenceAttempts = 3
)

func (s *Service) CreateWithdrawal(ctx context.Context, auth model.AuthContext, i model.WithdrawInput) (model.WithdrawalSummary, error) {
	if err := RequireOrganization(auth); err != nil {
		return model.WithdrawalSummary{}, err
	}

	if i.Amount <= 0 {
		return model.WithdrawalSummary{}, ErrInvalidAmount
	}

	bankCode := strings.ToUpper(strings.TrimSpace(i.BankCode))
	accountNumber := strings.TrimSpace(i.AccountNumber)
	holderName := strings.TrimSpace(i.AccountHolderName)
	if bankCode == "" || accountNumber == "" || holderName == "" {
		return model.WithdrawalSummary{}, ErrMissingBankDetails
	}

	balance, err := s.balance.NetBalance(ctx, auth.OrganizationID, auth.UserID, auth.IsAdmin())
	if err != nil {
		return model.WithdrawalSummary{}, err
	}
	if i.Amount > balance.Available() {
		return model.WithdrawalSummary{}, insufficientBalance(i.Amount, balance.Available())
	}

	channelCode, ok := payout.ChannelCode(bankCode)
	if !ok {
		return model.WithdrawalSummary{}, ErrUnknownBankCode
	}
	if err = payout.ValidateAccountNumber(bankCode, accountNumber); err != nil {
		return model.WithdrawalSummary{}, ErrInvalidAccountNumber
	}

	encryptedNumber, err := s.vault.Encrypt(accountNumber)
	if err != nil {
		return model.WithdrawalSummary{}, err
	}
	encryptedHolder, err := s.vault.Encrypt(holderName)
	if err != nil {
		return model.WithdrawalSummary{}, err
	}

	now := s.Now()
	w := model.Withdrawal{
		ID:                         uuid.NewString(),
		OrganizationID:             auth.OrganizationID,
		UserID:                     auth.UserID,
		Amount:                     i.Amount,
		BankCode:                   bankCode,
		ChannelCode:                channelCode,
		AccountNumberEncrypted:     encryptedNumber,
		AccountHolderNameEncrypted: encryptedHolder,
		AccountNumberLast4:         vault.Last4(accountNumber),
		Status:                     model.WithdrawalStatusPending,
		ApprovalStatus:             model.ApprovalStatusPendingApproval,
		IsAdmin:                    auth.IsAdmin(),
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}

	for attempt := 0; attempt < referenceAttempts; attempt++ {
		w.ReferenceID = ReferenceID(auth.OrganizationID, auth.UserID, now.Add(time.Duration(attempt)*time.Millisecond))
		err = s.repo.CreateWithdrawal(ctx, w, balance.GrossShare)
		if !errors.Is(err, ErrDuplicateReferenceID) {
			break
		}
		s.logger.Warnf("reference id %s already taken, regenerating", w.ReferenceID)
	}
	if err != nil {
		return model.WithdrawalSummary{}, err
	}

	s.logger.Infow("withdrawal requested",
		"withdrawalID", w.ID, "referenceID", w.ReferenceID, "organizationID", w.OrganizationID,
		"userID", w.UserID, "amount", w.Amount, "isAdmin", w.IsAdmin)

	return model.WithdrawalSummary{
		WithdrawalOutput: w.Output(),
		RemainingBalance: balance.Net - i.Amount,
	}, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, auth model.AuthContext, f model.WithdrawalFilter) (model.WithdrawalList, error) {
	if err := RequireOrganization(auth); err != nil {
		return model.WithdrawalList{}, err
	}

	f.OrganizationID = auth.OrganizationID
	if !auth.IsAdmin() {
		f.UserID = auth.UserID
	}

	ws, total, err := s.repo.GetWithdrawals(ctx, f)
	if err != nil {
		return model.WithdrawalList{}, err
	}

	items := make([]model.WithdrawalOutput, 0, len(ws))
	for _, w := range ws {
		items = append(items, w.Output())
	}
	return model.WithdrawalList{Items: items, Total: total}, nil
}

// ReferenceID is WD-<org suffix>-<user suffix>-<unix millis>.
func ReferenceID(orgID, userID string, t time.Time) string {
	return fmt.Sprintf("WD-%s-%s-%d", idSuffix(orgID), idSuffix(userID), t.UnixMilli())
}

func idSuffix(id string) string {
	id = strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(id) > referenceSuffixLen {
		return id[len(id)-referenceSuffixLen:]
	}
	return id
}

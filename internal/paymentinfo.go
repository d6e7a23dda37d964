package internal

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/payout"
	"github.com/DrGermanius/backoffice/internal/vault"
)

// PaymentInfoCooldown is the minimum time between two edits of the same payment info.
const PaymentInfoCooldown = 14 * 24 * time.Hour

func (s *Service) GetPaymentInfo(ctx context.Context, auth model.AuthContext) (model.PaymentInfoOutput, error) {
	if err := RequireOrganization(auth); err != nil {
		return model.PaymentInfoOutput{}, err
	}

	p, err := s.repo.GetPaymentInfo(ctx, auth.OrganizationID, auth.UserID)
	if err != nil {
		return model.PaymentInfoOutput{}, err
	}
	return s.maskedPaymentInfo(p), nil
}

// SavePaymentInfo stores the actor's bank details. The first save is always allowed,
// later ones only once PaymentInfoCooldown has passed since the last edit.
func (s *Service) SavePaymentInfo(ctx context.Context, auth model.AuthContext, i model.PaymentInfoInput) (model.PaymentInfoOutput, error) {
	if err := RequireOrganization(auth); err != nil {
		return model.PaymentInfoOutput{}, err
	}

	bankCode := strings.ToUpper(strings.TrimSpace(i.BankCode))
	accountNumber := strings.TrimSpace(i.AccountNumber)
	holderName := strings.TrimSpace(i.AccountHolderName)
	if bankCode == "" || accountNumber == "" || holderName == "" {
		return model.PaymentInfoOutput{}, ErrMissingBankDetails
	}
	if _, ok := payout.ChannelCode(bankCode); !ok {
		return model.PaymentInfoOutput{}, ErrUnknownBankCode
	}
	if err := payout.ValidateAccountNumber(bankCode, accountNumber); err != nil {
		return model.PaymentInfoOutput{}, ErrInvalidAccountNumber
	}

	now := s.Now()
	createdAt := now

	current, err := s.repo.GetPaymentInfo(ctx, auth.OrganizationID, auth.UserID)
	switch {
	case err == nil:
		if cerr := cooldownConflict(current.LastUpdatedAt, now); cerr != nil {
			return model.PaymentInfoOutput{}, cerr
		}
		createdAt = current.CreatedAt
	case errors.Is(err, ErrPaymentInfoNotFound):
	default:
		return model.PaymentInfoOutput{}, err
	}

	encryptedNumber, err := s.vault.Encrypt(accountNumber)
	if err != nil {
		return model.PaymentInfoOutput{}, err
	}
	encryptedHolder, err := s.vault.Encrypt(holderName)
	if err != nil {
		return model.PaymentInfoOutput{}, err
	}

	p := model.PaymentInfo{
		OrganizationID:             auth.OrganizationID,
		UserID:                     auth.UserID,
		BankCode:                   bankCode,
		AccountNumberEncrypted:     encryptedNumber,
		AccountHolderNameEncrypted: encryptedHolder,
		AccountNumberLast4:         vault.Last4(accountNumber),
		LastUpdatedAt:              now,
		CreatedAt:                  createdAt,
	}

	err = s.repo.SavePaymentInfo(ctx, p, now.Add(-PaymentInfoCooldown))
	if errors.Is(err, ErrStateChanged) {
		// a concurrent save won, the gate now counts from that one
		latest, getErr := s.repo.GetPaymentInfo(ctx, auth.OrganizationID, auth.UserID)
		if getErr != nil {
			return model.PaymentInfoOutput{}, getErr
		}
		if cerr := cooldownConflict(latest.LastUpdatedAt, now); cerr != nil {
			return model.PaymentInfoOutput{}, cerr
		}
		return model.PaymentInfoOutput{}, &ConflictError{Message: "payment info was changed concurrently, try again"}
	}
	if err != nil {
		return model.PaymentInfoOutput{}, err
	}

	s.logger.Infow("payment info saved", "organizationID", p.OrganizationID, "userID", p.UserID,
		"bankCode", p.BankCode, "accountNumberLast4", p.AccountNumberLast4)

	return model.PaymentInfoOutput{
		BankCode:          p.BankCode,
		AccountNumber:     vault.Mask(accountNumber),
		AccountHolderName: vault.Mask(holderName),
		LastUpdatedAt:     p.LastUpdatedAt,
		NextEditableAt:    p.LastUpdatedAt.Add(PaymentInfoCooldown),
	}, nil
}

func (s *Service) maskedPaymentInfo(p model.PaymentInfo) model.PaymentInfoOutput {
	accountNumber := s.vault.Decrypt(p.AccountNumberEncrypted)
	if accountNumber == "" {
		// undecryptable, the stored last four still masks the same way
		accountNumber = "****" + p.AccountNumberLast4
	}

	return model.PaymentInfoOutput{
		BankCode:          p.BankCode,
		AccountNumber:     vault.Mask(accountNumber),
		AccountHolderName: vault.Mask(s.vault.Decrypt(p.AccountHolderNameEncrypted)),
		LastUpdatedAt:     p.LastUpdatedAt,
		NextEditableAt:    p.LastUpdatedAt.Add(PaymentInfoCooldown),
	}
}

// cooldownConflict is nil once the cooldown since lastUpdated has passed.
func cooldownConflict(lastUpdated, now time.Time) *ConflictError {
	next := lastUpdated.Add(PaymentInfoCooldown)
	if !now.Before(next) {
		return nil
	}

	days := int(math.Ceil(next.Sub(now).Hours() / 24))
	return &ConflictError{
		Message:        fmt.Sprintf("payment info can be changed again in %d days", days),
		NextEligibleAt: &next,
		DaysRemaining:  days,
	}
}

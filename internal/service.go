package internal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/payout"
)

type IService interface {
	GetBalance(context.Context, model.AuthContext) (model.Balance, error)
	CreateWithdrawal(context.Context, model.AuthContext, model.WithdrawInput) (model.WithdrawalSummary, error)
	GetWithdrawals(context.Context, model.AuthContext, model.WithdrawalFilter) (model.WithdrawalList, error)
	Approve(context.Context, model.AuthContext, string) (model.WithdrawalOutput, error)
	Reject(context.Context, model.AuthContext, string, string) (model.WithdrawalOutput, error)
	BatchDisburse(context.Context, model.AuthContext, []string) (model.BatchResult, error)
	Reconcile(context.Context, string) (model.ReconcileReport, error)
	HandlePayoutCallback(context.Context, model.PayoutCallback) (model.WithdrawalOutput, error)
	GetPaymentInfo(context.Context, model.AuthContext) (model.PaymentInfoOutput, error)
	SavePaymentInfo(context.Context, model.AuthContext, model.PaymentInfoInput) (model.PaymentInfoOutput, error)
}

type IPayoutProvider interface {
	CreatePayout(context.Context, payout.Request) (payout.Payout, error)
	GetPayout(context.Context, string) (payout.Payout, error)
	GetPayoutsByReference(context.Context, string) ([]payout.Payout, error)
}

type IVault interface {
	Encrypt(string) (string, error)
	Decrypt(string) string
}

type Service struct {
	repo     IRepository
	provider IPayoutProvider
	vault    IVault
	balance  *BalanceCalculator
	logger   *zap.SugaredLogger

	// Now is the clock used for every timestamp the service writes.
	Now func() time.Time
}

func NewService(repo IRepository, provider IPayoutProvider, vault IVault, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		vault:    vault,
		balance:  NewBalanceCalculator(repo, logger),
		logger:   logger,
		Now:      time.Now,
	}
}

func (s *Service) GetBalance(ctx context.Context, auth model.AuthContext) (model.Balance, error) {
	if err := RequireOrganization(auth); err != nil {
		return model.Balance{}, err
	}
	return s.balance.NetBalance(ctx, auth.OrganizationID, auth.UserID, auth.IsAdmin())
}

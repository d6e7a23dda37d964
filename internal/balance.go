package internal

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/backoffice/internal/model"
)

// DefaultMemberSharePercent applies to members without a configured revenue share.
const DefaultMemberSharePercent = 80

var hundred = decimal.NewFromInt(100)

type BalanceCalculator struct {
	repo   IRepository
	logger *zap.SugaredLogger
}

func NewBalanceCalculator(repo IRepository, logger *zap.SugaredLogger) *BalanceCalculator {
	return &BalanceCalculator{repo: repo, logger: logger}
}

// NetBalance is the actor's share of the organization's paid revenue minus
// the actor's active withdrawals. It has no side effects.
func (b BalanceCalculator) NetBalance(ctx context.Context, orgID, userID string, isAdmin bool) (model.Balance, error) {
	revenue, err := b.repo.GetOrganizationRevenue(ctx, orgID)
	if err != nil {
		return model.Balance{}, err
	}

	percent := b.sharePercent(ctx, orgID, userID, isAdmin)
	gross := GrossShare(revenue, percent)

	withdrawn, err := b.repo.GetWithdrawnAmount(ctx, orgID, userID)
	if err != nil {
		return model.Balance{}, err
	}

	return model.Balance{
		TotalRevenue: revenue,
		SharePercent: percent,
		GrossShare:   gross,
		Withdrawn:    withdrawn,
		Net:          gross - withdrawn,
	}, nil
}

// sharePercent never fails: lookup errors fall back to the default share.
func (b BalanceCalculator) sharePercent(ctx context.Context, orgID, userID string, isAdmin bool) decimal.Decimal {
	if isAdmin {
		return b.adminSharePercent(ctx, orgID)
	}

	rs, found, err := b.repo.GetRevenueShare(ctx, orgID, userID)
	if err != nil {
		b.logger.Warnf("revenue share lookup for %s/%s failed, using default: %s", orgID, userID, err.Error())
		return decimal.NewFromInt(DefaultMemberSharePercent)
	}
	if !found {
		return decimal.NewFromInt(DefaultMemberSharePercent)
	}
	return decimal.NewFromInt(int64(rs.SharePercent))
}

// adminSharePercent approximates the organization's cut as 100 minus the mean
// member share. It is not a per-payment attribution.
func (b BalanceCalculator) adminSharePercent(ctx context.Context, orgID string) decimal.Decimal {
	mean := decimal.NewFromInt(DefaultMemberSharePercent)

	shares, err := b.repo.GetRevenueShares(ctx, orgID)
	if err != nil {
		b.logger.Warnf("revenue shares lookup for %s failed, using default: %s", orgID, err.Error())
	} else if len(shares) > 0 {
		sum := decimal.Zero
		for _, s := range shares {
			sum = sum.Add(decimal.NewFromInt(int64(s.SharePercent)))
		}
		mean = sum.Div(decimal.NewFromInt(int64(len(shares))))
	}

	return hundred.Sub(mean)
}

// GrossShare is round(revenue * percent / 100), halves rounded away from zero.
func GrossShare(revenue int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(revenue).Mul(percent).Div(hundred).Round(0).IntPart()
}

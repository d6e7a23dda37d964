package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/backoffice/internal"
	mock_internal "github.com/DrGermanius/backoffice/internal/mock"
	"github.com/DrGermanius/backoffice/internal/model"
)

var _ = Describe("Payment info", func() {
	var (
		ctrl *gomock.Controller
		rep  *mock_internal.MockIRepository
		srv  *internal.Service
		ctx  context.Context

		input model.PaymentInfoInput
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		srv = internal.NewService(rep, mock_internal.NewMockIPayoutProvider(ctrl), testVault, logger.Sugar())
		srv.Now = func() time.Time { return now }
		ctx = context.Background()

		input = model.PaymentInfoInput{BankCode: "bni", AccountNumber: "1234567890", AccountHolderName: "Budi Santoso"}
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	stored := func(lastUpdated time.Time) model.PaymentInfo {
		return model.PaymentInfo{
			OrganizationID:             orgID,
			UserID:                     memberID,
			BankCode:                   "BNI",
			AccountNumberEncrypted:     encrypted("1234567890"),
			AccountHolderNameEncrypted: encrypted("Budi Santoso"),
			AccountNumberLast4:         "7890",
			LastUpdatedAt:              lastUpdated,
			CreatedAt:                  lastUpdated.Add(-30 * 24 * time.Hour),
		}
	}

	Context("SavePaymentInfo", func() {
		It("allows the first save", func() {
			var saved model.PaymentInfo
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(model.PaymentInfo{}, internal.ErrPaymentInfoNotFound)
			rep.EXPECT().SavePaymentInfo(ctx, gomock.Any(), now.Add(-internal.PaymentInfoCooldown)).
				Do(func(_ context.Context, p model.PaymentInfo, _ time.Time) { saved = p }).
				Return(nil)

			res, err := srv.SavePaymentInfo(ctx, member, input)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.BankCode).Should(Equal("BNI"))
			Expect(res.AccountNumber).Should(Equal("******7890"))
			Expect(res.AccountHolderName).Should(Equal("********toso"))
			Expect(res.NextEditableAt).Should(Equal(now.Add(14 * 24 * time.Hour)))

			Expect(saved.CreatedAt).Should(Equal(now))
			Expect(saved.AccountNumberLast4).Should(Equal("7890"))
			Expect(testVault.Decrypt(saved.AccountNumberEncrypted)).Should(Equal("1234567890"))
		})
		It("rejects an edit inside the cooldown", func() {
			last := now.Add(-10 * 24 * time.Hour)
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(stored(last), nil)

			_, err := srv.SavePaymentInfo(ctx, member, input)
			Expect(errors.Is(err, internal.ErrConflict)).Should(BeTrue())

			var conflict *internal.ConflictError
			Expect(errors.As(err, &conflict)).Should(BeTrue())
			Expect(conflict.DaysRemaining).Should(Equal(4))
			Expect(*conflict.NextEligibleAt).Should(Equal(last.Add(14 * 24 * time.Hour)))
		})
		It("rounds the days remaining up", func() {
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(stored(now.Add(-(10*24+12)*time.Hour)), nil)

			_, err := srv.SavePaymentInfo(ctx, member, input)
			var conflict *internal.ConflictError
			Expect(errors.As(err, &conflict)).Should(BeTrue())
			Expect(conflict.DaysRemaining).Should(Equal(4))
		})
		It("allows an edit once fourteen days have passed", func() {
			current := stored(now.Add(-internal.PaymentInfoCooldown))
			var saved model.PaymentInfo
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(current, nil)
			rep.EXPECT().SavePaymentInfo(ctx, gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, p model.PaymentInfo, _ time.Time) { saved = p }).
				Return(nil)

			_, err := srv.SavePaymentInfo(ctx, member, input)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(saved.CreatedAt).Should(Equal(current.CreatedAt))
			Expect(saved.LastUpdatedAt).Should(Equal(now))
		})
		It("reports a concurrent save as a conflict", func() {
			gomock.InOrder(
				rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(model.PaymentInfo{}, internal.ErrPaymentInfoNotFound),
				rep.EXPECT().SavePaymentInfo(ctx, gomock.Any(), gomock.Any()).Return(internal.ErrStateChanged),
				rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(stored(now.Add(-time.Minute)), nil),
			)

			_, err := srv.SavePaymentInfo(ctx, member, input)
			var conflict *internal.ConflictError
			Expect(errors.As(err, &conflict)).Should(BeTrue())
			Expect(conflict.DaysRemaining).Should(Equal(14))
		})
		It("reports a lost race as a conflict even past the cooldown", func() {
			gomock.InOrder(
				rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(model.PaymentInfo{}, internal.ErrPaymentInfoNotFound),
				rep.EXPECT().SavePaymentInfo(ctx, gomock.Any(), gomock.Any()).Return(internal.ErrStateChanged),
				rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(stored(now.Add(-30*24*time.Hour)), nil),
			)

			_, err := srv.SavePaymentInfo(ctx, member, input)
			Expect(errors.Is(err, internal.ErrConflict)).Should(BeTrue())
			Expect(errors.Is(err, internal.ErrStateChanged)).Should(BeFalse())
		})
		It("validates the bank details", func() {
			input.BankCode = "NOPE"
			_, err := srv.SavePaymentInfo(ctx, member, input)
			Expect(err).Should(Equal(internal.ErrUnknownBankCode))

			input.BankCode = "BNI"
			input.AccountNumber = "12-34"
			_, err = srv.SavePaymentInfo(ctx, member, input)
			Expect(err).Should(Equal(internal.ErrInvalidAccountNumber))
		})
	})

	Context("GetPaymentInfo", func() {
		It("returns masked values only", func() {
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(stored(now), nil)

			res, err := srv.GetPaymentInfo(ctx, member)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.AccountNumber).Should(Equal("******7890"))
			Expect(res.AccountHolderName).Should(Equal("********toso"))
		})
		It("falls back to the stored last four", func() {
			p := stored(now)
			p.AccountNumberEncrypted = "garbage"
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(p, nil)

			res, err := srv.GetPaymentInfo(ctx, member)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.AccountNumber).Should(Equal("****7890"))
		})
		It("reports a missing record", func() {
			rep.EXPECT().GetPaymentInfo(ctx, orgID, memberID).Return(model.PaymentInfo{}, internal.ErrPaymentInfoNotFound)

			_, err := srv.GetPaymentInfo(ctx, member)
			Expect(errors.Is(err, internal.ErrNotFound)).Should(BeTrue())
		})
	})
})

package test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/backoffice/internal"
	mock_internal "github.com/DrGermanius/backoffice/internal/mock"
	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/validation"
)

const (
	jwtSecret     = "jwt-test-secret"
	callbackToken = "cb-token"
)

var _ = Describe("Handlers", func() {
	var (
		ctrl *gomock.Controller
		srv  *mock_internal.MockIService
		app  *fiber.App
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		validate, err := validation.New()
		Expect(err).ShouldNot(HaveOccurred())

		srv = mock_internal.NewMockIService(ctrl)
		app = fiber.New()
		internal.NewHandlers(srv, validate, callbackToken, logger.Sugar()).Register(app, []byte(jwtSecret))
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	token := func(auth model.AuthContext) string {
		t, err := internal.NewToken(auth, []byte(jwtSecret))
		Expect(err).ShouldNot(HaveOccurred())
		return t
	}

	do := func(method, target, body string, auth *model.AuthContext) (int, map[string]interface{}) {
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, r)
		req.Header.Set("Content-Type", "application/json")
		if auth != nil {
			req.Header.Set("Authorization", "Bearer "+token(*auth))
		}

		resp, err := app.Test(req, -1)
		Expect(err).ShouldNot(HaveOccurred())
		defer resp.Body.Close()

		out := map[string]interface{}{}
		raw, err := io.ReadAll(resp.Body)
		Expect(err).ShouldNot(HaveOccurred())
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &out)
		}
		return resp.StatusCode, out
	}

	Context("authentication", func() {
		It("rejects requests without a bearer token", func() {
			code, _ := do(http.MethodGet, "/api/balance", "", nil)
			Expect(code).Should(Equal(fiber.StatusUnauthorized))
		})
		It("rejects tokens signed with another secret", func() {
			t, err := internal.NewToken(member, []byte("other"))
			Expect(err).ShouldNot(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			req.Header.Set("Authorization", "Bearer "+t)
			resp, err := app.Test(req, -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("hands the token identity to the service", func() {
			srv.EXPECT().GetBalance(gomock.Any(), member).Return(model.Balance{Net: 60000}, nil)

			code, body := do(http.MethodGet, "/api/balance", "", &member)
			Expect(code).Should(Equal(fiber.StatusOK))
			Expect(body["net"]).Should(BeNumerically("==", 60000))
		})
	})

	Context("withdrawals", func() {
		It("creates a withdrawal", func() {
			srv.EXPECT().CreateWithdrawal(gomock.Any(), member, model.WithdrawInput{
				Amount: 50000, BankCode: "BCA", AccountNumber: "1234567890", AccountHolderName: "Budi Santoso",
			}).Return(model.WithdrawalSummary{
				WithdrawalOutput: model.WithdrawalOutput{ID: idW1, Amount: 50000},
				RemainingBalance: 10000,
			}, nil)

			code, body := do(http.MethodPost, "/api/withdrawals",
				`{"amount":50000,"bankCode":"BCA","accountNumber":"1234567890","accountHolderName":"Budi Santoso"}`, &member)
			Expect(code).Should(Equal(fiber.StatusCreated))
			Expect(body["id"]).Should(Equal(idW1))
			Expect(body["remainingBalance"]).Should(BeNumerically("==", 10000))
		})
		It("rejects an invalid body before reaching the service", func() {
			code, body := do(http.MethodPost, "/api/withdrawals",
				`{"amount":0,"bankCode":"XYZ","accountNumber":"12ab","accountHolderName":"Budi"}`, &member)
			Expect(code).Should(Equal(fiber.StatusBadRequest))
			Expect(body["message"]).Should(ContainSubstring("bankcode"))
		})
		It("maps insufficient balance to 400", func() {
			srv.EXPECT().CreateWithdrawal(gomock.Any(), member, gomock.Any()).Return(model.WithdrawalSummary{}, internal.ErrInsufficientBalance)

			code, _ := do(http.MethodPost, "/api/withdrawals",
				`{"amount":70000,"bankCode":"BCA","accountNumber":"1234567890","accountHolderName":"Budi Santoso"}`, &member)
			Expect(code).Should(Equal(fiber.StatusBadRequest))
		})
		It("passes list filters", func() {
			srv.EXPECT().GetWithdrawals(gomock.Any(), admin, model.WithdrawalFilter{
				Status: "PENDING", ApprovalStatus: "APPROVED", Limit: 10, Offset: 20,
			}).Return(model.WithdrawalList{Items: []model.WithdrawalOutput{{ID: idW1}}, Total: 21}, nil)

			code, body := do(http.MethodGet, "/api/withdrawals?status=PENDING&approval_status=APPROVED&limit=10&offset=20", "", &admin)
			Expect(code).Should(Equal(fiber.StatusOK))
			Expect(body["total"]).Should(BeNumerically("==", 21))
			Expect(body["items"]).Should(HaveLen(1))
		})
		It("rejects a bad limit", func() {
			code, _ := do(http.MethodGet, "/api/withdrawals?limit=abc", "", &admin)
			Expect(code).Should(Equal(fiber.StatusBadRequest))
		})
	})

	Context("approval", func() {
		It("maps a member approving to 403", func() {
			srv.EXPECT().Approve(gomock.Any(), member, idW1).Return(model.WithdrawalOutput{}, internal.ErrNotAdmin)

			code, _ := do(http.MethodPost, "/api/withdrawals/approve", `{"withdrawalId":"`+idW1+`"}`, &member)
			Expect(code).Should(Equal(fiber.StatusForbidden))
		})
		It("maps a state conflict to 409 with the current status", func() {
			srv.EXPECT().Approve(gomock.Any(), admin, idW1).
				Return(model.WithdrawalOutput{}, &internal.ConflictError{Message: "already decided", CurrentStatus: "APPROVED"})

			code, body := do(http.MethodPost, "/api/withdrawals/approve", `{"withdrawalId":"`+idW1+`"}`, &admin)
			Expect(code).Should(Equal(fiber.StatusConflict))
			Expect(body["currentStatus"]).Should(Equal("APPROVED"))
		})
		It("maps a missing withdrawal to 404", func() {
			srv.EXPECT().Reject(gomock.Any(), admin, idW9, "dup").Return(model.WithdrawalOutput{}, internal.ErrWithdrawalNotFound)

			code, _ := do(http.MethodPost, "/api/withdrawals/reject", `{"withdrawalId":"`+idW9+`","reason":"dup"}`, &admin)
			Expect(code).Should(Equal(fiber.StatusNotFound))
		})
		It("rejects a malformed withdrawal id", func() {
			code, body := do(http.MethodPost, "/api/withdrawals/approve", `{"withdrawalId":"not-a-uuid"}`, &admin)
			Expect(code).Should(Equal(fiber.StatusBadRequest))
			Expect(body["message"]).Should(ContainSubstring("uuid"))
		})
		It("requires a withdrawal id", func() {
			code, _ := do(http.MethodPost, "/api/withdrawals/approve", `{}`, &admin)
			Expect(code).Should(Equal(fiber.StatusBadRequest))
		})
	})

	Context("batch disbursement", func() {
		It("returns the per item results", func() {
			srv.EXPECT().BatchDisburse(gomock.Any(), admin, []string{idW1, idW2}).Return(model.BatchResult{
				BatchID:      "BATCH-1",
				SuccessCount: 1,
				FailureCount: 1,
				Results: []model.BatchItemResult{
					{WithdrawalID: idW1, Success: true, ProviderID: "po-1", Status: "ACCEPTED"},
					{WithdrawalID: idW2, Reason: "invalid bank code"},
				},
			}, nil)

			code, body := do(http.MethodPost, "/api/withdrawals/batch-disburse", `{"withdrawalIds":["`+idW1+`","`+idW2+`"]}`, &admin)
			Expect(code).Should(Equal(fiber.StatusOK))
			Expect(body["batchId"]).Should(Equal("BATCH-1"))
			Expect(body["failureCount"]).Should(BeNumerically("==", 1))
		})
		It("hides unexpected errors", func() {
			srv.EXPECT().BatchDisburse(gomock.Any(), admin, gomock.Any()).Return(model.BatchResult{}, errors.New("pq: relation does not exist"))

			code, body := do(http.MethodPost, "/api/withdrawals/batch-disburse", `{"withdrawalIds":["`+idW1+`"]}`, &admin)
			Expect(code).Should(Equal(fiber.StatusInternalServerError))
			Expect(body["message"]).Should(Equal("internal server error"))
		})
	})

	Context("payment info", func() {
		It("reports the cooldown", func() {
			next := now.Add(4 * 24 * time.Hour)
			srv.EXPECT().SavePaymentInfo(gomock.Any(), member, gomock.Any()).
				Return(model.PaymentInfoOutput{}, &internal.ConflictError{Message: "wait", NextEligibleAt: &next, DaysRemaining: 4})

			code, body := do(http.MethodPut, "/api/payment-info",
				`{"bankCode":"BNI","accountNumber":"1234567890","accountHolderName":"Budi Santoso"}`, &member)
			Expect(code).Should(Equal(fiber.StatusConflict))
			Expect(body["daysRemaining"]).Should(BeNumerically("==", 4))
			Expect(body["nextEligibleAt"]).ShouldNot(BeNil())
		})
		It("returns masked details", func() {
			srv.EXPECT().GetPaymentInfo(gomock.Any(), member).
				Return(model.PaymentInfoOutput{BankCode: "BNI", AccountNumber: "******7890"}, nil)

			code, body := do(http.MethodGet, "/api/payment-info", "", &member)
			Expect(code).Should(Equal(fiber.StatusOK))
			Expect(body["accountNumber"]).Should(Equal("******7890"))
		})
	})

	Context("payout callbacks", func() {
		callback := func(tok string) int {
			req := httptest.NewRequest(http.MethodPost, "/api/callbacks/payouts", strings.NewReader(`{"id":"po-1","status":"SUCCEEDED"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(internal.CallbackTokenHeader, tok)
			resp, err := app.Test(req, -1)
			Expect(err).ShouldNot(HaveOccurred())
			return resp.StatusCode
		}

		It("needs the shared token", func() {
			Expect(callback("wrong")).Should(Equal(fiber.StatusUnauthorized))
		})
		It("updates the payout status", func() {
			srv.EXPECT().HandlePayoutCallback(gomock.Any(), model.PayoutCallback{ID: "po-1", Status: "SUCCEEDED"}).
				Return(model.WithdrawalOutput{ID: idW1, Status: "SUCCEEDED"}, nil)

			Expect(callback(callbackToken)).Should(Equal(fiber.StatusOK))
		})
	})
})

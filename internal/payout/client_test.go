package payout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/DrGermanius/backoffice/internal/payout"
)

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		client   *payout.Client
		handler  http.HandlerFunc
		received *http.Request
		body     map[string]interface{}
	)

	BeforeEach(func() {
		received = nil
		body = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			if r.Body != nil {
				_ = json.NewDecoder(r.Body).Decode(&body)
			}
			handler(w, r)
		}))

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		client = payout.NewClient(server.URL, "xnd_secret", 5*time.Second, logger.Sugar())
	})
	AfterEach(func() {
		server.Close()
	})

	Context("CreatePayout", func() {
		It("Sends request and decodes payout", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"disb-1","reference_id":"WD-1","status":"ACCEPTED"}`))
			}

			p, err := client.CreatePayout(context.Background(), payout.Request{
				ReferenceID: "WD-1",
				ChannelCode: "ID_BCA",
				ChannelProperties: payout.ChannelProperties{
					AccountHolderName: "Budi",
					AccountNumber:     "1234567890",
				},
				Amount:         50000,
				Description:    "Withdrawal WD-1",
				IdempotencyKey: "w-1:WD-1",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(p.ID).Should(Equal("disb-1"))
			Expect(p.Status).Should(Equal("ACCEPTED"))

			Expect(received.Method).Should(Equal(http.MethodPost))
			Expect(received.URL.Path).Should(Equal("/v2/payouts"))
			Expect(received.Header.Get("Idempotency-key")).Should(Equal("w-1:WD-1"))
			user, _, ok := received.BasicAuth()
			Expect(ok).Should(BeTrue())
			Expect(user).Should(Equal("xnd_secret"))

			Expect(body["reference_id"]).Should(Equal("WD-1"))
			Expect(body["currency"]).Should(Equal("IDR"))
			Expect(body["channel_properties"]).Should(HaveKeyWithValue("account_number", "1234567890"))
		})
		It("Returns provider error on non-2xx", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error_code":"INVALID_DESTINATION","message":"account not found"}`))
			}

			_, err := client.CreatePayout(context.Background(), payout.Request{ReferenceID: "WD-1"})
			Expect(err).Should(HaveOccurred())

			var pErr *payout.Error
			Expect(err).Should(BeAssignableToTypeOf(pErr))
			pErr = err.(*payout.Error)
			Expect(pErr.StatusCode).Should(Equal(http.StatusBadRequest))
			Expect(pErr.ErrorCode).Should(Equal("INVALID_DESTINATION"))
		})
		It("Does not call provider with cancelled context", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := client.CreatePayout(ctx, payout.Request{ReferenceID: "WD-1"})
			Expect(err).Should(Equal(context.Canceled))
			Expect(received).Should(BeNil())
		})
	})

	Context("Lookups", func() {
		It("GetPayout by id", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"disb-1","status":"SUCCEEDED"}`))
			}

			p, err := client.GetPayout(context.Background(), "disb-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(p.Status).Should(Equal("SUCCEEDED"))
			Expect(received.URL.Path).Should(Equal("/v2/payouts/disb-1"))
		})
		It("GetPayoutsByReference", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id":"disb-1","reference_id":"WD-1","status":"ACCEPTED"}]`))
			}

			ps, err := client.GetPayoutsByReference(context.Background(), "WD-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ps).Should(HaveLen(1))
			Expect(received.URL.Query().Get("reference_id")).Should(Equal("WD-1"))
		})
	})
})

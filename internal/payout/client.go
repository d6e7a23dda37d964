package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	payoutsPath       = "/v2/payouts"
	idempotencyHeader = "Idempotency-key"
	defaultCurrency   = "IDR"
)

type ChannelProperties struct {
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
}

type Request struct {
	ReferenceID       string            `json:"reference_id"`
	ChannelCode       string            `json:"channel_code"`
	ChannelProperties ChannelProperties `json:"channel_properties"`
	Amount            int64             `json:"amount"`
	Currency          string            `json:"currency"`
	Description       string            `json:"description"`

	IdempotencyKey string `json:"-"`
}

type Payout struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	ChannelCode string `json:"channel_code"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
}

// Error is a non-2xx answer from the provider.
type Error struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payout provider responded %d", e.StatusCode)
	}
	return fmt.Sprintf("payout provider responded %d: %s %s", e.StatusCode, e.ErrorCode, e.Message)
}

// Client talks to a Xendit style payouts API. Calls are synchronous and never retried.
type Client struct {
	baseURL   string
	secretKey string
	timeout   time.Duration
	logger    *zap.SugaredLogger
}

func NewClient(baseURL, secretKey string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	return &Client{baseURL: baseURL, secretKey: secretKey, timeout: timeout, logger: logger}
}

func (c *Client) CreatePayout(ctx context.Context, r Request) (Payout, error) {
	if r.Currency == "" {
		r.Currency = defaultCurrency
	}

	var p Payout
	err := c.do(ctx, fiber.MethodPost, c.baseURL+payoutsPath, r, r.IdempotencyKey, &p)
	if err != nil {
		return Payout{}, err
	}

	c.logger.Infow("payout created", "referenceID", r.ReferenceID, "payoutID", p.ID, "status", p.Status)
	return p, nil
}

func (c *Client) GetPayout(ctx context.Context, id string) (Payout, error) {
	var p Payout
	err := c.do(ctx, fiber.MethodGet, c.baseURL+payoutsPath+"/"+url.PathEscape(id), nil, "", &p)
	return p, err
}

func (c *Client) GetPayoutsByReference(ctx context.Context, referenceID string) ([]Payout, error) {
	q := url.Values{}
	q.Set("reference_id", referenceID)

	var ps []Payout
	err := c.do(ctx, fiber.MethodGet, c.baseURL+payoutsPath+"?"+q.Encode(), nil, "", &ps)
	return ps, err
}

func (c *Client) do(ctx context.Context, method, uri string, body interface{}, idempotencyKey string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)

	a.BasicAuth(c.secretKey, "")
	a.Timeout(c.timeout)
	if idempotencyKey != "" {
		a.Set(idempotencyHeader, idempotencyKey)
	}
	if body != nil {
		a.JSON(body)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	code, resp, errs := a.Bytes()
	if len(errs) > 0 {
		c.logger.Errorf("payout provider request %s %s failed: %v", method, uri, errs)
		return errs[0]
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		e := &Error{StatusCode: code}
		_ = json.Unmarshal(resp, e)
		return e
	}

	return json.Unmarshal(resp, out)
}

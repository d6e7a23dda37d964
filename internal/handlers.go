package internal

import (
	"crypto/subtle"
	"errors"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v8"

	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/validation"
)

const (
	CallbackTokenHeader = "x-callback-token"

	defaultPageLimit = 50
	maxPageLimit     = 200
)

type Handlers struct {
	Service       IService
	validate      *validator.Validate
	callbackToken string
	logger        *zap.SugaredLogger
}

func NewHandlers(service IService, validate *validator.Validate, callbackToken string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: service, validate: validate, callbackToken: callbackToken, logger: logger}
}

// Register mounts every route under /api.
func (h *Handlers) Register(app *fiber.App, jwtSecret []byte) {
	api := app.Group("/api")

	api.Post("/callbacks/payouts", h.PayoutCallback)

	auth := Authenticate(jwtSecret)
	api.Get("/balance", auth, h.GetBalance)

	api.Post("/withdrawals", auth, h.CreateWithdrawal)
	api.Get("/withdrawals", auth, h.GetWithdrawals)
	api.Post("/withdrawals/approve", auth, h.Approve)
	api.Post("/withdrawals/reject", auth, h.Reject)
	api.Post("/withdrawals/batch-disburse", auth, h.BatchDisburse)

	api.Get("/payment-info", auth, h.GetPaymentInfo)
	api.Put("/payment-info", auth, h.SavePaymentInfo)
}

func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	b, err := h.Service.GetBalance(c.Context(), authFromCtx(c))
	if err != nil {
		return h.fail(c, "get balance", err)
	}
	return c.Status(fiber.StatusOK).JSON(b)
}

func (h *Handlers) CreateWithdrawal(c *fiber.Ctx) error {
	var i model.WithdrawInput
	if err := h.parse(c, &i); err != nil {
		return h.badRequest(c, err)
	}

	w, err := h.Service.CreateWithdrawal(c.Context(), authFromCtx(c), i)
	if err != nil {
		return h.fail(c, "create withdrawal", err)
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

func (h *Handlers) GetWithdrawals(c *fiber.Ctx) error {
	limit := c.Query("limit")
	offset := c.Query("offset")

	f := model.WithdrawalFilter{
		UserID:         c.Query("user_id"),
		Status:         c.Query("status"),
		ApprovalStatus: c.Query("approval_status"),
		Limit:          defaultPageLimit,
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return h.badRequest(c, errors.New("limit must be a positive integer"))
		}
		f.Limit = n
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return h.badRequest(c, errors.New("offset must be a non-negative integer"))
		}
		f.Offset = n
	}

	ws, err := h.Service.GetWithdrawals(c.Context(), authFromCtx(c), f)
	if err != nil {
		return h.fail(c, "get withdrawals", err)
	}
	return c.Status(fiber.StatusOK).JSON(ws)
}

func (h *Handlers) Approve(c *fiber.Ctx) error {
	var i model.ApproveInput
	if err := h.parse(c, &i); err != nil {
		return h.badRequest(c, err)
	}

	w, err := h.Service.Approve(c.Context(), authFromCtx(c), i.WithdrawalID)
	if err != nil {
		return h.fail(c, "approve withdrawal", err)
	}
	return c.Status(fiber.StatusOK).JSON(w)
}

func (h *Handlers) Reject(c *fiber.Ctx) error {
	var i model.RejectInput
	if err := h.parse(c, &i); err != nil {
		return h.badRequest(c, err)
	}

	w, err := h.Service.Reject(c.Context(), authFromCtx(c), i.WithdrawalID, i.Reason)
	if err != nil {
		return h.fail(c, "reject withdrawal", err)
	}
	return c.Status(fiber.StatusOK).JSON(w)
}

func (h *Handlers) BatchDisburse(c *fiber.Ctx) error {
	var i model.BatchDisburseInput
	if err := c.BodyParser(&i); err != nil {
		return h.badRequest(c, err)
	}

	res, err := h.Service.BatchDisburse(c.Context(), authFromCtx(c), i.WithdrawalIDs)
	if err != nil {
		return h.fail(c, "batch disburse", err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) GetPaymentInfo(c *fiber.Ctx) error {
	p, err := h.Service.GetPaymentInfo(c.Context(), authFromCtx(c))
	if err != nil {
		return h.fail(c, "get payment info", err)
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *Handlers) SavePaymentInfo(c *fiber.Ctx) error {
	var i model.PaymentInfoInput
	if err := h.parse(c, &i); err != nil {
		return h.badRequest(c, err)
	}

	p, err := h.Service.SavePaymentInfo(c.Context(), authFromCtx(c), i)
	if err != nil {
		return h.fail(c, "save payment info", err)
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *Handlers) PayoutCallback(c *fiber.Ctx) error {
	token := c.Get(CallbackTokenHeader)
	if h.callbackToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.callbackToken)) != 1 {
		return h.fail(c, "payout callback", ErrInvalidCallbackToken)
	}

	var cb model.PayoutCallback
	if err := h.parse(c, &cb); err != nil {
		return h.badRequest(c, err)
	}

	w, err := h.Service.HandlePayoutCallback(c.Context(), cb)
	if err != nil {
		return h.fail(c, "payout callback", err)
	}
	return c.Status(fiber.StatusOK).JSON(w)
}

func (h *Handlers) parse(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	if err := h.validate.Struct(reflect.Indirect(reflect.ValueOf(out)).Interface()); err != nil {
		return errors.New(validation.Message(err))
	}
	return nil
}

func (h *Handlers) badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
}

// fail maps the error taxonomy onto HTTP statuses. Unknown errors are logged and hidden.
func (h *Handlers) fail(c *fiber.Ctx, op string, err error) error {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		body := fiber.Map{"status": "error", "message": conflict.Message}
		if conflict.CurrentStatus != "" {
			body["currentStatus"] = conflict.CurrentStatus
		}
		if conflict.NextEligibleAt != nil {
			body["nextEligibleAt"] = conflict.NextEligibleAt
			body["daysRemaining"] = conflict.DaysRemaining
		}
		return c.Status(fiber.StatusConflict).JSON(body)
	case errors.Is(err, ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": err.Error()})
	case errors.Is(err, ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": err.Error()})
	case errors.Is(err, ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	h.logger.Errorf("Error on %s request: %s", op, err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "internal server error"})
}

package model

import "time"

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusSettled = "SETTLED"
	PaymentStatusExpired = "EXPIRED"
	PaymentStatusFailed  = "FAILED"
)

// RevenuePaymentStatuses are the payment statuses that count as earned revenue.
var RevenuePaymentStatuses = []string{PaymentStatusPaid, PaymentStatusSettled}

// Payment is written by the session side of the business; this service only reads it.
type Payment struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	BoothID        string    `json:"boothId"`
	Amount         int64     `json:"amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type RevenueShare struct {
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	SharePercent   int    `json:"sharePercent"`
}

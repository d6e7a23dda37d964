package model

import (
	"strings"
	"time"
)

// payout rail statuses, mirrored from the provider
const (
	WithdrawalStatusPending   = "PENDING"
	WithdrawalStatusAccepted  = "ACCEPTED"
	WithdrawalStatusSucceeded = "SUCCEEDED"
	WithdrawalStatusFailed    = "FAILED"
	WithdrawalStatusCancelled = "CANCELLED"
	WithdrawalStatusReversed  = "REVERSED"

	providerStatusRequested = "REQUESTED"
)

// internal workflow statuses
const (
	ApprovalStatusPendingApproval = "PENDING_APPROVAL"
	ApprovalStatusApproved        = "APPROVED"
	ApprovalStatusRejected        = "REJECTED"
	ApprovalStatusDisbursed       = "DISBURSED"
)

// ActiveWithdrawalStatuses are the statuses that still hold on to the actor's balance.
var ActiveWithdrawalStatuses = []string{
	WithdrawalStatusPending,
	WithdrawalStatusAccepted,
	WithdrawalStatusSucceeded,
}

// IsTerminalStatus reports whether the provider will not move the payout any further.
func IsTerminalStatus(status string) bool {
	switch status {
	case WithdrawalStatusSucceeded, WithdrawalStatusFailed, WithdrawalStatusCancelled, WithdrawalStatusReversed:
		return true
	}
	return false
}

// PayoutStatus maps a provider payout status onto the statuses above. REQUESTED comes
// before ACCEPTED on the provider side and holds the balance the same way.
func PayoutStatus(status string) (string, bool) {
	switch status = strings.ToUpper(strings.TrimSpace(status)); status {
	case WithdrawalStatusPending, WithdrawalStatusAccepted, WithdrawalStatusSucceeded,
		WithdrawalStatusFailed, WithdrawalStatusCancelled, WithdrawalStatusReversed:
		return status, true
	case providerStatusRequested:
		return WithdrawalStatusAccepted, true
	}
	return "", false
}

type Withdrawal struct {
	ID                         string
	OrganizationID             string
	UserID                     string
	ReferenceID                string
	Amount                     int64
	BankCode                   string
	ChannelCode                string
	AccountNumberEncrypted     string
	AccountHolderNameEncrypted string
	AccountNumberLast4         string
	Status                     string
	ApprovalStatus             string
	IsAdmin                    bool
	BatchID                    *string
	PayoutProviderID           *string
	RejectionReason            *string
	ApprovedBy                 *string
	ApprovedAt                 *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// Output drops the encrypted columns.
func (w Withdrawal) Output() WithdrawalOutput {
	return WithdrawalOutput{
		ID:                 w.ID,
		UserID:             w.UserID,
		ReferenceID:        w.ReferenceID,
		Amount:             w.Amount,
		BankCode:           w.BankCode,
		ChannelCode:        w.ChannelCode,
		AccountNumberLast4: w.AccountNumberLast4,
		Status:             w.Status,
		ApprovalStatus:     w.ApprovalStatus,
		IsAdmin:            w.IsAdmin,
		BatchID:            w.BatchID,
		PayoutProviderID:   w.PayoutProviderID,
		RejectionReason:    w.RejectionReason,
		ApprovedBy:         w.ApprovedBy,
		ApprovedAt:         w.ApprovedAt,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

type WithdrawalOutput struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	ReferenceID        string     `json:"referenceId"`
	Amount             int64      `json:"amount"`
	BankCode           string     `json:"bankCode"`
	ChannelCode        string     `json:"channelCode"`
	AccountNumberLast4 string     `json:"accountNumberLast4"`
	Status             string     `json:"status"`
	ApprovalStatus     string     `json:"approvalStatus"`
	IsAdmin            bool       `json:"isAdmin"`
	BatchID            *string    `json:"batchId"`
	PayoutProviderID   *string    `json:"payoutProviderId"`
	RejectionReason    *string    `json:"rejectionReason"`
	ApprovedBy         *string    `json:"approvedBy"`
	ApprovedAt         *time.Time `json:"approvedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type WithdrawalSummary struct {
	WithdrawalOutput
	RemainingBalance int64 `json:"remainingBalance"`
}

type WithdrawInput struct {
	Amount            int64  `json:"amount" validate:"required,gt=0"`
	BankCode          string `json:"bankCode" validate:"required,bankcode"`
	AccountNumber     string `json:"accountNumber" validate:"required,digits"`
	AccountHolderName string `json:"accountHolderName" validate:"required,max=256"`
}

type ApproveInput struct {
	WithdrawalID string `json:"withdrawalId" validate:"required,uuid"`
}

type RejectInput struct {
	WithdrawalID string `json:"withdrawalId" validate:"required,uuid"`
	Reason       string `json:"reason"`
}

type BatchDisburseInput struct {
	WithdrawalIDs []string `json:"withdrawalIds"`
}

// WithdrawalFilter narrows a withdrawal listing. An empty UserID lists the whole organization.
type WithdrawalFilter struct {
	OrganizationID string
	UserID         string
	Status         string
	ApprovalStatus string
	Limit          int
	Offset         int
}

type WithdrawalList struct {
	Items []WithdrawalOutput `json:"items"`
	Total int                `json:"total"`
}

// ApprovalUpdate is applied only while the row is still PENDING_APPROVAL.
type ApprovalUpdate struct {
	WithdrawalID    string
	OrganizationID  string
	ApprovalStatus  string
	Status          string
	RejectionReason *string
	DecidedBy       string
	DecidedAt       time.Time
}

// DisbursementUpdate is applied only while the row is still APPROVED.
type DisbursementUpdate struct {
	WithdrawalID     string
	BatchID          string
	PayoutProviderID string
	Status           string
	DisbursedAt      time.Time
}

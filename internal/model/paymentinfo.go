package model

import "time"

type PaymentInfo struct {
	OrganizationID             string
	UserID                     string
	BankCode                   string
	AccountNumberEncrypted     string
	AccountHolderNameEncrypted string
	AccountNumberLast4         string
	LastUpdatedAt              time.Time
	CreatedAt                  time.Time
}

type PaymentInfoInput struct {
	BankCode          string `json:"bankCode" validate:"required,bankcode"`
	AccountNumber     string `json:"accountNumber" validate:"required,digits"`
	AccountHolderName string `json:"accountHolderName" validate:"required,max=256"`
}

type PaymentInfoOutput struct {
	BankCode          string    `json:"bankCode"`
	AccountNumber     string    `json:"accountNumber"`
	AccountHolderName string    `json:"accountHolderName"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
	NextEditableAt    time.Time `json:"nextEditableAt"`
}

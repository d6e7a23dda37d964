package model

// BatchItemResult is either a success (ProviderID/Status set) or a failure (Reason set).
type BatchItemResult struct {
	WithdrawalID string `json:"withdrawalId"`
	ReferenceID  string `json:"referenceId"`
	Success      bool   `json:"success"`
	ProviderID   string `json:"providerId,omitempty"`
	Status       string `json:"status,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type BatchResult struct {
	BatchID      string            `json:"batchId"`
	Results      []BatchItemResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
}

type ReconcileReport struct {
	Recovered []string `json:"recovered"`
	Updated   []string `json:"updated"`
	Failed    []string `json:"failed"`
}

type PayoutCallback struct {
	ID          string `json:"id" validate:"required"`
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status" validate:"required"`
}

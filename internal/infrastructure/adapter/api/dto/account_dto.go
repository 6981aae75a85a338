package dto

// AccountResponse represents the API response for an account lookup
type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Type          string `json:"type"`
	Balance       string `json:"balance"`
	Username      string `json:"username"`
}

// MutationRequest represents the API request for a deposit or withdrawal
type MutationRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TransferRequest represents the API request for a peer-to-peer transfer
type TransferRequest struct {
	TargetAccountNumber string `json:"targetAccountNumber" binding:"required"`
	Amount              string `json:"amount" binding:"required"`
}

// MutationResponse represents the API response for a completed mutation
type MutationResponse struct {
	TransactionID string `json:"transactionId"`
	AccountNumber string `json:"accountNumber"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	ResultBalance string `json:"resultBalance"`
}

// TransferResponse represents the API response for a completed transfer
type TransferResponse struct {
	TransactionID       string `json:"transactionId"`
	SourceAccountNumber string `json:"sourceAccountNumber"`
	TargetAccountNumber string `json:"targetAccountNumber"`
	Amount              string `json:"amount"`
	ResultBalance       string `json:"resultBalance"`
}

// TransactionResponse represents a single ledger entry in a history listing
type TransactionResponse struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	Amount               string `json:"amount"`
	Timestamp            string `json:"timestamp"`
	Balance              string `json:"balance"`
	RelatedAccountNumber string `json:"relatedAccountNumber,omitempty"`
}

// TransactionListResponse represents the API response for a transaction history
type TransactionListResponse struct {
	AccountNumber string                `json:"accountNumber"`
	Transactions  []TransactionResponse `json:"transactions"`
}

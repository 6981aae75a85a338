package dto

// RegisterRequest represents the API request for creating a new user
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=savings checking"`
}

// RegisterResponse represents the API response for a successful registration
type RegisterResponse struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
}

// LoginRequest represents the API request for authenticating a user
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

package dto

// ErrorResponse is the error body returned by every endpoint. Code is a
// stable application error code, independent of the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

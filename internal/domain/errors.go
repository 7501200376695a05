package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// DataError is a structured fault carried from the services to the HTTP
// boundary, where it becomes the error response body.
type DataError struct {
	Code    string
	Message string
	Status  int
	Data    map[string]interface{}
}

func (e *DataError) Error() string {
	return e.Message
}

// NewDataError builds a DataError with the given stable code, human message
// and HTTP-equivalent status.
func NewDataError(code, message string, status int) *DataError {
	return &DataError{Code: code, Message: message, Status: status}
}

// Stable error codes shared by the endpoints.
const (
	CodeSessionKeyMissing  = "session_key_missing"
	CodeSessionNotValid    = "session_not_valid"
	CodeNoSessionsFound    = "no_sessions_found"
	CodeSessionDataCorrupt = "session_data_corrupt"
	CodeSessionNotDeleted  = "session_not_deleted"
	CodeInvalidToken       = "invalid_token"
	CodePermissionDenied   = "permission_denied"
)

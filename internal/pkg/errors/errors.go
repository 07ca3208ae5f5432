package errors

import "net/http"

// ErrorResp carries an HTTP status code alongside the message so handlers
// can map usecase failures straight onto responses.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{Code: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) error {
	return &ErrorResp{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &ErrorResp{Code: http.StatusConflict, Message: message}
}

func TooManyRequests(message string) error {
	return &ErrorResp{Code: http.StatusTooManyRequests, Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: message}
}

// DependencyError marks a failure of an external collaborator (message
// broker, QR encoder, database connectivity). Surfaced as a 500 with no
// partial write.
func DependencyError(message string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: message}
}

// GetCode returns the HTTP status for an error, defaulting to 500 for
// anything that is not an *ErrorResp.
func GetCode(err error) int {
	if resp, ok := err.(*ErrorResp); ok {
		return resp.Code
	}
	return http.StatusInternalServerError
}

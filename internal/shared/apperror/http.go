package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is the projection of an error onto an HTTP response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP converts any error into an HTTPError. Errors that are not an
// *AppError are treated as unexpected and become a 500 carrying the
// original message text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: fmt.Sprintf("Internal server error: %s", err.Error()),
	}
}

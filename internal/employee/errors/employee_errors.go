package employeeerrors

import (
	"fmt"
	"net/http"

	"employee-api/internal/shared/apperror"
)

// NotFound reports an id with no stored employee behind it.
func NotFound(id string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee with ID %s not found.", id),
		http.StatusNotFound,
	)
}

// AlreadyExists reports a create for an id that is already taken.
func AlreadyExists(id string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("Employee with %s ID already exists.", id),
		http.StatusConflict,
	)
}

var ErrInvalidBirthDate = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid date format. Please use 'dd-MMM-yyyy'.",
	http.StatusBadRequest,
)

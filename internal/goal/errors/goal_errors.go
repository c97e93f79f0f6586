package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrGoalNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "goal not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidGoalDates = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "start_date and end_date must be valid dates with end_date on or after start_date",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidGoalStatus = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "status must be one of active, completed, paused or cancelled",
		HTTPStatus: http.StatusBadRequest,
	}
)

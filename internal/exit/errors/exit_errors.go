package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrExitNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "exit process not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrExitAlreadyOpen = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "employee already has an exit process",
		HTTPStatus: http.StatusConflict,
	}

	ErrInvalidDates = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "last_working_day must not be before resignation_date",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidTransition = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "exit process cannot move to the requested status",
		HTTPStatus: http.StatusConflict,
	}

	ErrClearancesIncomplete = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "all clearances must be complete before the exit can be completed",
		HTTPStatus: http.StatusConflict,
	}

	ErrUnknownClearance = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "unknown clearance item",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrExitClosed = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "exit process is already closed",
		HTTPStatus: http.StatusConflict,
	}
)

package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "leave request not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidDateRange = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "end_date must not be before start_date",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrAlreadyDecided = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "leave request has already been decided",
		HTTPStatus: http.StatusConflict,
	}

	ErrOverlappingLeave = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "employee already has leave overlapping this period",
		HTTPStatus: http.StatusConflict,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}
)

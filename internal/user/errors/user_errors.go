package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrUserNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "user not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrEmailTaken = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "a user with this email already exists",
		HTTPStatus: http.StatusConflict,
	}

	ErrEmployeeAlreadyLinked = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "employee is already linked to another user",
		HTTPStatus: http.StatusConflict,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidRole = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "role must be admin or employee",
		HTTPStatus: http.StatusBadRequest,
	}
)

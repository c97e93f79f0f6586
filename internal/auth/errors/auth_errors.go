package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = &apperror.AppError{
		Code:       apperror.CodeUnauthorized,
		Message:    "invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrAccountDisabled = &apperror.AppError{
		Code:       apperror.CodeForbidden,
		Message:    "this account has been deactivated",
		HTTPStatus: http.StatusForbidden,
	}

	ErrInvalidRefreshToken = &apperror.AppError{
		Code:       apperror.CodeUnauthorized,
		Message:    "refresh token is invalid or expired",
		HTTPStatus: http.StatusUnauthorized,
	}
)

package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrReviewNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "performance review not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrDuplicatePeriod = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "employee already has a review for this period",
		HTTPStatus: http.StatusConflict,
	}

	ErrInvalidReviewDate = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "review_date must be a valid date in YYYY-MM-DD format",
		HTTPStatus: http.StatusBadRequest,
	}
)

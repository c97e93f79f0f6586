package errors

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "expense not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrAlreadyDecided = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "expense has already been decided",
		HTTPStatus: http.StatusConflict,
	}

	ErrInvalidExpenseDate = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "expense_date must be a valid date in YYYY-MM-DD format",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrDocTooLarge = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "reimbursement document exceeds the 5MB limit",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrDocUnsupportedType = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "reimbursement document must be a JPEG, PNG or PDF file",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrDocumentNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "expense has no reimbursement document",
		HTTPStatus: http.StatusNotFound,
	}
)

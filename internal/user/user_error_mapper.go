package user

import (
	"errors"
	"strings"

	userErrors "github.com/luckycunningwolf/HRMS/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return userErrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_user_email":
			return userErrors.ErrEmailTaken
		case "uq_user_employee":
			return userErrors.ErrEmployeeAlreadyLinked
		}
	}

	// Some drivers surface the violation without a typed error.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_user_email") {
			return userErrors.ErrEmailTaken
		}
		if strings.Contains(errMsg, "uq_user_employee") {
			return userErrors.ErrEmployeeAlreadyLinked
		}
	}

	return err
}

func isDuplicate(err error) bool {
	mapped := mapRepositoryError(err)
	return errors.Is(mapped, userErrors.ErrEmailTaken) || errors.Is(mapped, userErrors.ErrEmployeeAlreadyLinked)
}

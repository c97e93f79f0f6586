package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/luckycunningwolf/HRMS/internal/auth"
	authErrors "github.com/luckycunningwolf/HRMS/internal/auth/errors"
	"github.com/luckycunningwolf/HRMS/internal/user"
	userErrors "github.com/luckycunningwolf/HRMS/internal/user/errors"
)

type fakeUserRepository struct {
	createFn         func(ctx context.Context, u *user.UserProfile) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*user.UserProfile, error)
	findByEmailFn    func(ctx context.Context, email string) (*user.UserProfile, error)
	findByEmployeeFn func(ctx context.Context, employeeID uuid.UUID) (*user.UserProfile, error)
	findAllFn        func(ctx context.Context, f user.ListFilter) ([]user.UserProfile, error)
	updateFn         func(ctx context.Context, u *user.UserProfile) error
	employeeExistsFn func(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) user.Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, u *user.UserProfile) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.UserProfile, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, userErrors.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.UserProfile, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, userErrors.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*user.UserProfile, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, userErrors.ErrUserNotFound
}

func (f *fakeUserRepository) FindAll(ctx context.Context, filter user.ListFilter) ([]user.UserProfile, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.UserProfile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func setupAuthService(t *testing.T) (auth.Service, *fakeUserRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeUserRepository{}
	users := user.NewService(db, repo)
	return auth.NewService(users, repo), repo
}

func activeUser(t *testing.T, password string) *user.UserProfile {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	employeeID := uuid.New()
	return &user.UserProfile{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		FullName:     "Asha Rao",
		Role:         "employee",
		EmployeeID:   &employeeID,
		IsActive:     true,
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "pass-1234",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, 900, resp.ExpiresIn)
	assert.Equal(t, u.ID.String(), resp.User.ID)

	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, u.EmployeeID.String(), claims["employee_id"])
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "pass-1234"})

	assert.NoError(t, err)
	assert.NotNil(t, u.LastLoginAt)
	assert.WithinDuration(t, time.Now().UTC(), *u.LastLoginAt, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "wrong"})

	assert.ErrorIs(t, err, authErrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, authErrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	u.IsActive = false
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "pass-1234"})

	assert.ErrorIs(t, err, authErrors.ErrAccountDisabled)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*user.UserProfile, error) {
		if id == u.ID {
			return u, nil
		}
		return nil, userErrors.ErrUserNotFound
	}

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "pass-1234"})
	assert.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, u.ID.String(), refreshed.User.ID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "pass-1234"})
	assert.NoError(t, err)

	// Access tokens carry no token_use claim and cannot be refreshed.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, authErrors.ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, authErrors.ErrInvalidRefreshToken)
}

func TestRefreshDisabledAccount(t *testing.T) {
	svc, repo := setupAuthService(t)

	u := activeUser(t, "pass-1234")
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.UserProfile, error) {
		return u, nil
	}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*user.UserProfile, error) {
		return u, nil
	}

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: "pass-1234"})
	assert.NoError(t, err)

	u.IsActive = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, authErrors.ErrAccountDisabled)
}

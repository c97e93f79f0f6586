package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authErrors "github.com/luckycunningwolf/HRMS/internal/auth/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
	"github.com/luckycunningwolf/HRMS/internal/user"
	userErrors "github.com/luckycunningwolf/HRMS/internal/user/errors"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mocks/mock_auth_service.go -package=mocks
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Me(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	users  user.Service
	repo   user.Repository
	secret []byte
	logger *zap.Logger
}

func NewService(users user.Service, repo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:  users,
		repo:   repo,
		secret: []byte(os.Getenv("JWT_SECRET")),
		logger: l,
	}
}

// Login checks the password and the is_active gate. Deactivated accounts
// are refused even with the right password.
func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error for unknown email and bad password.
		return TokenResponse{}, authErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected, bad password", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
		return TokenResponse{}, authErrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		s.logger.Warn("login rejected, account disabled", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
		return TokenResponse{}, authErrors.ErrAccountDisabled
	}

	now := time.Now().UTC()
	u.LastLoginAt = &now
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Warn("last login update failed", zap.String("request_id", rid), zap.Error(err))
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		return TokenResponse{}, err
	}

	s.logger.Info("user logged in",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)
	return resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authErrors.ErrInvalidRefreshToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, authErrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["token_use"] != "refresh" {
		return TokenResponse{}, authErrors.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenResponse{}, authErrors.ErrInvalidRefreshToken
	}

	u, err := s.findProfile(ctx, userID)
	if err != nil {
		return TokenResponse{}, authErrors.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return TokenResponse{}, authErrors.ErrAccountDisabled
	}
	return s.issueTokens(u)
}

func (s *service) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	resp, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, userErrors.ErrUserNotFound
	}
	return resp, nil
}

func (s *service) issueTokens(u *user.UserProfile) (TokenResponse, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	if u.EmployeeID != nil {
		claims["employee_id"] = u.EmployeeID.String()
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return TokenResponse{}, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   u.ID.String(),
		"token_use": "refresh",
		"iat":       now.Unix(),
		"exp":       now.Add(refreshTokenTTL).Unix(),
	}).SignedString(s.secret)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(accessTokenTTL.Seconds()),
		User:         user.View(u),
	}, nil
}

func (s *service) findProfile(ctx context.Context, id string) (*user.UserProfile, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, userErrors.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, uid)
}

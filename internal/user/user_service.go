package user

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/luckycunningwolf/HRMS/internal/events"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
	userErrors "github.com/luckycunningwolf/HRMS/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	LinkEmployee(ctx context.Context, id string, employeeID string) (UserResponse, error)
	UnlinkEmployee(ctx context.Context, id string) (UserResponse, error)
	SetActive(ctx context.Context, id string, active bool) (UserResponse, error)
	ChangeRole(ctx context.Context, id string, role string) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, password string) error
	ProvisionFromEvent(ctx context.Context, evt events.EmployeeCreatedEvent) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !validRole(req.Role) {
		return UserResponse{}, userErrors.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &UserProfile{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}
	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return UserResponse{}, userErrors.ErrEmployeeNotFound
		}
		exists, err := s.repo.EmployeeExists(ctx, employeeID)
		if err != nil {
			return UserResponse{}, err
		}
		if !exists {
			return UserResponse{}, userErrors.ErrEmployeeNotFound
		}
		u.EmployeeID = &employeeID
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user created",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)
	return mapToResponse(u), nil
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]UserResponse, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(u), nil
}

func (s *service) LinkEmployee(ctx context.Context, id string, employeeID string) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return UserResponse{}, userErrors.ErrEmployeeNotFound
	}
	exists, err := s.repo.EmployeeExists(ctx, eid)
	if err != nil {
		return UserResponse{}, err
	}
	if !exists {
		return UserResponse{}, userErrors.ErrEmployeeNotFound
	}

	u.EmployeeID = &eid
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("link employee failed", zap.String("request_id", rid), zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user linked to employee",
		zap.String("request_id", rid),
		zap.String("user_id", id),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(u), nil
}

func (s *service) UnlinkEmployee(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.EmployeeID = nil
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.IsActive = active
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user active flag changed",
		zap.String("request_id", rid),
		zap.String("user_id", id),
		zap.Bool("is_active", active),
	)
	return mapToResponse(u), nil
}

func (s *service) ChangeRole(ctx context.Context, id string, role string) (UserResponse, error) {
	if !validRole(role) {
		return UserResponse{}, userErrors.ErrInvalidRole
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) ResetPassword(ctx context.Context, id string, password string) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return mapRepositoryError(s.repo.Update(ctx, u))
}

// ProvisionFromEvent creates a locked-down login for a freshly created
// employee. The password is random; an admin resets it before handover.
// Replays are skipped via the unique email and employee constraints.
func (s *service) ProvisionFromEvent(ctx context.Context, evt events.EmployeeCreatedEvent) error {
	employeeID, err := uuid.Parse(evt.EmployeeID)
	if err != nil {
		s.logger.Warn("provision skipped, bad employee id", zap.String("employee_id", evt.EmployeeID))
		return nil
	}

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &UserProfile{
		Email:        evt.Email,
		PasswordHash: string(hash),
		FullName:     evt.Name,
		Role:         "employee",
		EmployeeID:   &employeeID,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if isDuplicate(err) {
			s.logger.Info("provision skipped, user already exists",
				zap.String("employee_id", evt.EmployeeID),
				zap.String("request_id", evt.RequestID),
			)
			return nil
		}
		return err
	}

	s.logger.Info("user provisioned from employee event",
		zap.String("user_id", u.ID.String()),
		zap.String("employee_id", evt.EmployeeID),
		zap.String("request_id", evt.RequestID),
	)
	return nil
}

func (s *service) find(ctx context.Context, id string) (*UserProfile, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, userErrors.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, uid)
}

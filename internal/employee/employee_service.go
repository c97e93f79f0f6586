package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "github.com/luckycunningwolf/HRMS/internal/employee/errors"
	"github.com/luckycunningwolf/HRMS/internal/events"
	"github.com/luckycunningwolf/HRMS/internal/messaging/kafka"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
	"github.com/luckycunningwolf/HRMS/internal/shared/istime"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employee:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]Option, error)
	GetFacets(ctx context.Context) (DirectoryFacets, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Role:             req.Role,
		Department:       req.Department,
		Salary:           req.Salary,
		JoiningDate:      joiningDate,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		PAN:              req.PAN,
		Aadhar:           req.Aadhar,
		BankDetails: BankDetails{
			BankName:      req.BankName,
			AccountNumber: req.BankAccount,
			IFSC:          req.BankIFSC,
		},
		IsActive: true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Name:       empl.Name,
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal employee_created event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		resp[i] = mapToResponse(empl)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// GetOptions serves the id/name dropdown list. The list is read by almost
// every page, so it is cached in Redis and concurrent misses collapse into a
// single query via singleflight.
func (s *service) GetOptions(ctx context.Context) ([]Option, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var options []Option
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		options, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(options); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour)
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Option), nil
}

func (s *service) GetFacets(ctx context.Context) (DirectoryFacets, error) {
	departments, err := s.repo.DistinctValues(ctx, "department")
	if err != nil {
		return DirectoryFacets{}, err
	}
	roles, err := s.repo.DistinctValues(ctx, "role")
	if err != nil {
		return DirectoryFacets{}, err
	}
	return DirectoryFacets{Departments: departments, Roles: roles}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Role = req.Role
	empl.Department = req.Department
	empl.Salary = req.Salary
	empl.JoiningDate = joiningDate
	empl.Address = req.Address
	empl.EmergencyContact = req.EmergencyContact
	empl.PAN = req.PAN
	empl.Aadhar = req.Aadhar
	empl.BankDetails = BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.BankAccount,
		IFSC:          req.BankIFSC,
	}

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}
	if !empl.IsActive {
		return employeeerrors.ErrEmployeeInactive
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.String("key", EmployeeOptionsKey),
			zap.Error(err),
		)
	}
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID.String(),
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		Role:             e.Role,
		Department:       e.Department,
		Salary:           e.Salary,
		JoiningDate:      e.JoiningDate.Format("2006-01-02"),
		Tenure:           istime.Tenure(e.JoiningDate, istime.Now()),
		Address:          e.Address,
		EmergencyContact: e.EmergencyContact,
		PAN:              e.PAN,
		Aadhar:           e.Aadhar,
		BankName:         e.BankDetails.BankName,
		BankAccount:      e.BankDetails.AccountNumber,
		BankIFSC:         e.BankDetails.IFSC,
		IsActive:         e.IsActive,
	}
}

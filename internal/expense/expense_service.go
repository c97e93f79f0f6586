package expense

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	expenseErrors "github.com/luckycunningwolf/HRMS/internal/expense/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
)

const MaxDocSize = 5 << 20

var allowedDocTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

//go:generate mockgen -source=expense_service.go -destination=mocks/mock_expense_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Approve(ctx context.Context, id string, decidedBy string, doc *ApprovalDoc) (ExpenseResponse, error)
	Reject(ctx context.Context, id string, decidedBy string, reason string) (ExpenseResponse, error)
	Document(ctx context.Context, id string) (*ApprovalDoc, error)
	Stats(ctx context.Context, f ListFilter) (ExpenseStats, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func ValidateDoc(doc *ApprovalDoc) error {
	if doc == nil {
		return nil
	}
	if len(doc.Data) > MaxDocSize {
		return expenseErrors.ErrDocTooLarge
	}
	if _, ok := allowedDocTypes[doc.ContentType]; !ok {
		return expenseErrors.ErrDocUnsupportedType
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return ExpenseResponse{}, expenseErrors.ErrInvalidExpenseDate
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ExpenseResponse{}, expenseErrors.ErrEmployeeNotFound
	}
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return ExpenseResponse{}, err
	}
	if !exists {
		return ExpenseResponse{}, expenseErrors.ErrEmployeeNotFound
	}

	e := &Expense{
		EmployeeID:  employeeID,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Description: req.Description,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create expense failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("expense submitted",
		zap.String("request_id", rid),
		zap.String("expense_id", e.ID.String()),
		zap.String("employee_id", e.EmployeeID.String()),
		zap.Float64("amount", e.Amount),
	)

	out, err := s.repo.FindByID(ctx, e.ID)
	if err != nil {
		return ExpenseResponse{}, err
	}
	return mapToResponse(out), nil
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]ExpenseResponse, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return ExpenseResponse{}, expenseErrors.ErrExpenseNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return ExpenseResponse{}, err
	}
	return mapToResponse(e), nil
}

// Approve attaches the reimbursement proof when one is supplied. Only
// pending expenses can be approved; the document must pass size and
// content type checks before anything is written.
func (s *service) Approve(ctx context.Context, id string, decidedBy string, doc *ApprovalDoc) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if err := ValidateDoc(doc); err != nil {
		return ExpenseResponse{}, err
	}

	eid, err := uuid.Parse(id)
	if err != nil {
		return ExpenseResponse{}, expenseErrors.ErrExpenseNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return ExpenseResponse{}, err
	}
	if e.Status != StatusPending {
		return ExpenseResponse{}, expenseErrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	e.Status = StatusApproved
	e.DecidedAt = &now
	if deciderID, err := uuid.Parse(decidedBy); err == nil {
		e.DecidedBy = &deciderID
	}
	if doc != nil {
		e.ReimbursementDocName = doc.Name
		e.ReimbursementDocType = doc.ContentType
		e.ReimbursementDoc = doc.Data
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("approve expense failed", zap.String("request_id", rid), zap.String("expense_id", id), zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("expense approved",
		zap.String("request_id", rid),
		zap.String("expense_id", id),
		zap.Bool("has_document", doc != nil),
	)
	return mapToResponse(e), nil
}

func (s *service) Reject(ctx context.Context, id string, decidedBy string, reason string) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	eid, err := uuid.Parse(id)
	if err != nil {
		return ExpenseResponse{}, expenseErrors.ErrExpenseNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return ExpenseResponse{}, err
	}
	if e.Status != StatusPending {
		return ExpenseResponse{}, expenseErrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	e.Status = StatusRejected
	e.DecidedAt = &now
	e.RejectionReason = &reason
	if deciderID, err := uuid.Parse(decidedBy); err == nil {
		e.DecidedBy = &deciderID
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("reject expense failed", zap.String("request_id", rid), zap.String("expense_id", id), zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("expense rejected", zap.String("request_id", rid), zap.String("expense_id", id))
	return mapToResponse(e), nil
}

func (s *service) Document(ctx context.Context, id string) (*ApprovalDoc, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, expenseErrors.ErrExpenseNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return nil, err
	}
	if len(e.ReimbursementDoc) == 0 {
		return nil, expenseErrors.ErrDocumentNotFound
	}
	return &ApprovalDoc{
		Name:        e.ReimbursementDocName,
		ContentType: e.ReimbursementDocType,
		Data:        e.ReimbursementDoc,
	}, nil
}

func (s *service) Stats(ctx context.Context, f ListFilter) (ExpenseStats, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return ExpenseStats{}, err
	}

	stats := ExpenseStats{ByCategory: map[string]float64{}}
	for i := range items {
		switch items[i].Status {
		case StatusPending:
			stats.Pending++
			stats.PendingAmount += items[i].Amount
		case StatusApproved:
			stats.Approved++
			stats.ApprovedAmount += items[i].Amount
		case StatusRejected:
			stats.Rejected++
		}
		stats.ByCategory[items[i].Category] += items[i].Amount
	}
	return stats, nil
}

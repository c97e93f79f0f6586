package expense_test

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/expense"
	expenseErrors "github.com/luckycunningwolf/HRMS/internal/expense/errors"
)

type fakeExpenseRepository struct {
	createFn         func(ctx context.Context, e *expense.Expense) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*expense.Expense, error)
	findAllFn        func(ctx context.Context, f expense.ListFilter) ([]expense.Expense, error)
	updateFn         func(ctx context.Context, e *expense.Expense) error
	employeeExistsFn func(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

func (f *fakeExpenseRepository) WithTx(tx *sql.Tx) expense.Repository {
	return f
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, expenseErrors.ErrExpenseNotFound
}

func (f *fakeExpenseRepository) FindAll(ctx context.Context, filter expense.ListFilter) ([]expense.Expense, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func setupExpenseService(t *testing.T) (expense.Service, *fakeExpenseRepository) {
	t.Helper()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeExpenseRepository{}
	return expense.NewService(db, repo), repo
}

func TestValidateDoc(t *testing.T) {
	assert.NoError(t, expense.ValidateDoc(nil))
	assert.NoError(t, expense.ValidateDoc(&expense.ApprovalDoc{
		Name:        "receipt.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	}))

	err := expense.ValidateDoc(&expense.ApprovalDoc{
		Name:        "huge.pdf",
		ContentType: "application/pdf",
		Data:        bytes.Repeat([]byte("x"), expense.MaxDocSize+1),
	})
	assert.ErrorIs(t, err, expenseErrors.ErrDocTooLarge)

	err = expense.ValidateDoc(&expense.ApprovalDoc{
		Name:        "notes.docx",
		ContentType: "application/msword",
		Data:        []byte("doc"),
	})
	assert.ErrorIs(t, err, expenseErrors.ErrDocUnsupportedType)
}

func TestExpenseCreateRejectsBadDate(t *testing.T) {
	svc, _ := setupExpenseService(t)

	_, err := svc.Create(context.Background(), expense.CreateExpenseRequest{
		EmployeeID:  uuid.NewString(),
		Category:    "travel",
		Amount:      1200,
		ExpenseDate: "12/03/2025",
	})

	assert.ErrorIs(t, err, expenseErrors.ErrInvalidExpenseDate)
}

func TestExpenseCreateRejectsUnknownEmployee(t *testing.T) {
	svc, repo := setupExpenseService(t)
	repo.employeeExistsFn = func(ctx context.Context, employeeID uuid.UUID) (bool, error) {
		return false, nil
	}

	_, err := svc.Create(context.Background(), expense.CreateExpenseRequest{
		EmployeeID:  uuid.NewString(),
		Category:    "food",
		Amount:      300,
		ExpenseDate: "2025-03-12",
	})

	assert.ErrorIs(t, err, expenseErrors.ErrEmployeeNotFound)
}

func TestExpenseApproveAttachesDocument(t *testing.T) {
	svc, repo := setupExpenseService(t)

	pending := &expense.Expense{ID: uuid.New(), Status: "pending", Amount: 500}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
		return pending, nil
	}

	resp, err := svc.Approve(context.Background(), pending.ID.String(), uuid.NewString(), &expense.ApprovalDoc{
		Name:        "receipt.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	})

	assert.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.True(t, resp.HasDocument)
	assert.Equal(t, "receipt.png", pending.ReimbursementDocName)
	assert.Equal(t, "image/png", pending.ReimbursementDocType)
}

func TestExpenseApproveWithoutDocument(t *testing.T) {
	svc, repo := setupExpenseService(t)

	pending := &expense.Expense{ID: uuid.New(), Status: "pending"}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
		return pending, nil
	}

	resp, err := svc.Approve(context.Background(), pending.ID.String(), uuid.NewString(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.False(t, resp.HasDocument)
}

func TestExpenseRedecideConflicts(t *testing.T) {
	svc, repo := setupExpenseService(t)

	approved := &expense.Expense{ID: uuid.New(), Status: "approved"}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
		return approved, nil
	}

	_, err := svc.Approve(context.Background(), approved.ID.String(), uuid.NewString(), nil)
	assert.ErrorIs(t, err, expenseErrors.ErrAlreadyDecided)

	_, err = svc.Reject(context.Background(), approved.ID.String(), uuid.NewString(), "duplicate claim")
	assert.ErrorIs(t, err, expenseErrors.ErrAlreadyDecided)
}

func TestExpenseDocumentMissing(t *testing.T) {
	svc, repo := setupExpenseService(t)

	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
		return &expense.Expense{ID: id, Status: "approved"}, nil
	}

	_, err := svc.Document(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, expenseErrors.ErrDocumentNotFound)
}

func TestExpenseStats(t *testing.T) {
	svc, repo := setupExpenseService(t)

	repo.findAllFn = func(ctx context.Context, f expense.ListFilter) ([]expense.Expense, error) {
		return []expense.Expense{
			{Status: "pending", Category: "travel", Amount: 1000},
			{Status: "pending", Category: "food", Amount: 250},
			{Status: "approved", Category: "travel", Amount: 4000},
			{Status: "rejected", Category: "equipment", Amount: 900},
		}, nil
	}

	stats, err := svc.Stats(context.Background(), expense.ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 1250.0, stats.PendingAmount)
	assert.Equal(t, 4000.0, stats.ApprovedAmount)
	assert.Equal(t, 5000.0, stats.ByCategory["travel"])
}

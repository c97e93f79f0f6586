package exit_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/exit"
	exitErrors "github.com/luckycunningwolf/HRMS/internal/exit/errors"
)

type fakeExitRepository struct {
	createFn         func(ctx context.Context, e *exit.ExitProcess) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error)
	findByEmployeeFn func(ctx context.Context, employeeID uuid.UUID) (*exit.ExitProcess, error)
	findAllFn        func(ctx context.Context, f exit.ListFilter) ([]exit.ExitProcess, error)
	updateFn         func(ctx context.Context, e *exit.ExitProcess) error
	employeeByIDFn   func(ctx context.Context, employeeID uuid.UUID) (*exit.EmployeeRef, error)
}

func (f *fakeExitRepository) WithTx(tx *sql.Tx) exit.Repository {
	return f
}

func (f *fakeExitRepository) Create(ctx context.Context, e *exit.ExitProcess) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeExitRepository) FindByID(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, exitErrors.ErrExitNotFound
}

func (f *fakeExitRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*exit.ExitProcess, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, exitErrors.ErrExitNotFound
}

func (f *fakeExitRepository) FindAll(ctx context.Context, filter exit.ListFilter) ([]exit.ExitProcess, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeExitRepository) Update(ctx context.Context, e *exit.ExitProcess) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeExitRepository) EmployeeByID(ctx context.Context, employeeID uuid.UUID) (*exit.EmployeeRef, error) {
	if f.employeeByIDFn != nil {
		return f.employeeByIDFn(ctx, employeeID)
	}
	return &exit.EmployeeRef{ID: employeeID, Name: "Asha", Salary: 60000}, nil
}

func setupExitService(t *testing.T) (exit.Service, *fakeExitRepository) {
	t.Helper()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeExitRepository{}
	return exit.NewService(db, repo), repo
}

func TestExitCreateSeedsSettlementFromSalary(t *testing.T) {
	svc, repo := setupExitService(t)

	repo.createFn = func(ctx context.Context, e *exit.ExitProcess) error {
		e.ID = uuid.New()
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
			return e, nil
		}
		return nil
	}

	resp, err := svc.Create(context.Background(), exit.CreateExitRequest{
		EmployeeID:      uuid.NewString(),
		ResignationDate: "2025-03-01",
		LastWorkingDay:  "2025-04-30",
		Reason:          "relocation",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 60000.0, resp.Settlement.FinalSalary)
	assert.Equal(t, 60000.0, resp.Settlement.Total)
	assert.Equal(t, 0, resp.ClearanceProgress)
}

func TestExitCreateRejectsSecondProcess(t *testing.T) {
	svc, repo := setupExitService(t)

	repo.findByEmployeeFn = func(ctx context.Context, employeeID uuid.UUID) (*exit.ExitProcess, error) {
		return &exit.ExitProcess{ID: uuid.New(), EmployeeID: employeeID}, nil
	}

	_, err := svc.Create(context.Background(), exit.CreateExitRequest{
		EmployeeID:      uuid.NewString(),
		ResignationDate: "2025-03-01",
		LastWorkingDay:  "2025-04-30",
	})

	assert.ErrorIs(t, err, exitErrors.ErrExitAlreadyOpen)
}

func TestExitCreateRejectsLastDayBeforeResignation(t *testing.T) {
	svc, _ := setupExitService(t)

	_, err := svc.Create(context.Background(), exit.CreateExitRequest{
		EmployeeID:      uuid.NewString(),
		ResignationDate: "2025-04-30",
		LastWorkingDay:  "2025-03-01",
	})

	assert.ErrorIs(t, err, exitErrors.ErrInvalidDates)
}

func TestExitStatusMachine(t *testing.T) {
	svc, repo := setupExitService(t)

	process := &exit.ExitProcess{ID: uuid.New(), Status: exit.StatusPending}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
		return process, nil
	}

	// pending cannot complete directly
	_, err := svc.SetStatus(context.Background(), process.ID.String(), exit.StatusCompleted)
	assert.ErrorIs(t, err, exitErrors.ErrInvalidTransition)

	resp, err := svc.SetStatus(context.Background(), process.ID.String(), exit.StatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, exit.StatusInProgress, resp.Status)

	// completion is blocked until every clearance is done
	_, err = svc.SetStatus(context.Background(), process.ID.String(), exit.StatusCompleted)
	assert.ErrorIs(t, err, exitErrors.ErrClearancesIncomplete)

	process.Clearances = exit.Clearances{
		IT: true, HR: true, Finance: true, Admin: true,
		ProjectHandover: true, AssetReturn: true, KnowledgeTransfer: true, ExitInterview: true,
	}
	resp, err = svc.SetStatus(context.Background(), process.ID.String(), exit.StatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, exit.StatusCompleted, resp.Status)
	assert.NotNil(t, resp.CompletedAt)

	// completed is terminal
	_, err = svc.SetStatus(context.Background(), process.ID.String(), exit.StatusInProgress)
	assert.ErrorIs(t, err, exitErrors.ErrExitClosed)
}

func TestExitRejectedIsTerminal(t *testing.T) {
	svc, repo := setupExitService(t)

	process := &exit.ExitProcess{ID: uuid.New(), Status: exit.StatusRejected}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
		return process, nil
	}

	_, err := svc.SetStatus(context.Background(), process.ID.String(), exit.StatusInProgress)
	assert.ErrorIs(t, err, exitErrors.ErrExitClosed)

	_, err = svc.SetClearance(context.Background(), process.ID.String(), exit.ClearanceRequest{Item: "it", Value: true})
	assert.ErrorIs(t, err, exitErrors.ErrExitClosed)
}

func TestExitSetClearanceUnknownItem(t *testing.T) {
	svc, repo := setupExitService(t)

	process := &exit.ExitProcess{ID: uuid.New(), Status: exit.StatusInProgress}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
		return process, nil
	}

	_, err := svc.SetClearance(context.Background(), process.ID.String(), exit.ClearanceRequest{Item: "legal", Value: true})
	assert.ErrorIs(t, err, exitErrors.ErrUnknownClearance)
}

func TestExitSetSettlementRecomputesTotal(t *testing.T) {
	svc, repo := setupExitService(t)

	process := &exit.ExitProcess{ID: uuid.New(), Status: exit.StatusInProgress}
	repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*exit.ExitProcess, error) {
		return process, nil
	}

	resp, err := svc.SetSettlement(context.Background(), process.ID.String(), exit.SettlementRequest{
		FinalSalary:     50000,
		Bonus:           10000,
		LeaveEncashment: 5000,
		Gratuity:        20000,
		Deductions:      3000,
	})

	assert.NoError(t, err)
	assert.Equal(t, 82000.0, resp.Settlement.Total)
}

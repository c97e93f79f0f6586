package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luckycunningwolf/HRMS/internal/leave"
	leaveErrors "github.com/luckycunningwolf/HRMS/internal/leave/errors"
)

// setupLeaveRepository opens an in-memory SQLite database. The schema is
// created with raw DDL because the production column defaults are
// Postgres-only.
func setupLeaveRepository(t *testing.T) (leave.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	// A single connection keeps every statement, including explicit
	// transactions, on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE employees (
			id TEXT PRIMARY KEY,
			name TEXT,
			deleted_at DATETIME
		)`,
		`CREATE TABLE leave_requests (
			id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			leave_type TEXT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			total_days INTEGER NOT NULL DEFAULT 1,
			reason TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			decided_by TEXT,
			decided_at DATETIME,
			rejection_reason TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error, "failed to create test schema")
	}

	return leave.NewRepository(db), db
}

func newLeave(employeeID uuid.UUID, leaveType, status string, start, end time.Time) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  int(end.Sub(start).Hours()/24) + 1,
		Status:     status,
	}
}

func TestLeaveRepositoryCreateAndFindByID(t *testing.T) {
	repo, _ := setupLeaveRepository(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	l := newLeave(uuid.New(), leave.TypeSick, leave.StatusPending, start, start.AddDate(0, 0, 2))
	l.Reason = "fever"

	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.FindByID(ctx, l.ID)
	assert.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)
	assert.Equal(t, leave.TypeSick, got.LeaveType)
	assert.Equal(t, "fever", got.Reason)
	assert.Equal(t, 3, got.TotalDays)
}

func TestLeaveRepositoryFindByIDNotFound(t *testing.T) {
	repo, _ := setupLeaveRepository(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, leaveErrors.ErrLeaveNotFound)
}

func TestLeaveRepositoryFindAllFilters(t *testing.T) {
	repo, _ := setupLeaveRepository(t)
	ctx := context.Background()

	employeeID := uuid.New()
	otherID := uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.Create(ctx, newLeave(employeeID, leave.TypeSick, leave.StatusPending, day(3), day(4))))
	require.NoError(t, repo.Create(ctx, newLeave(employeeID, leave.TypeAnnual, leave.StatusApproved, day(10), day(14))))
	require.NoError(t, repo.Create(ctx, newLeave(otherID, leave.TypeSick, leave.StatusRejected, day(20), day(21))))

	t.Run("by employee", func(t *testing.T) {
		items, err := repo.FindAll(ctx, leave.ListFilter{EmployeeID: employeeID.String()})
		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("by status", func(t *testing.T) {
		items, err := repo.FindAll(ctx, leave.ListFilter{Status: leave.StatusApproved})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, leave.TypeAnnual, items[0].LeaveType)
	})

	t.Run("by type", func(t *testing.T) {
		items, err := repo.FindAll(ctx, leave.ListFilter{LeaveType: leave.TypeSick})
		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("unfiltered returns everything", func(t *testing.T) {
		items, err := repo.FindAll(ctx, leave.ListFilter{})
		assert.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestLeaveRepositoryFindByEmployee(t *testing.T) {
	repo, _ := setupLeaveRepository(t)
	ctx := context.Background()

	employeeID := uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.Create(ctx, newLeave(employeeID, leave.TypeCasual, leave.StatusPending, day(1), day(1))))
	require.NoError(t, repo.Create(ctx, newLeave(uuid.New(), leave.TypeCasual, leave.StatusPending, day(2), day(2))))

	items, err := repo.FindByEmployee(ctx, employeeID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, employeeID, items[0].EmployeeID)
}

func TestLeaveRepositoryUpdate(t *testing.T) {
	repo, _ := setupLeaveRepository(t)
	ctx := context.Background()

	start := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	l := newLeave(uuid.New(), leave.TypeAnnual, leave.StatusPending, start, start.AddDate(0, 0, 1))
	require.NoError(t, repo.Create(ctx, l))

	actor := uuid.New()
	now := time.Now().UTC()
	l.Status = leave.StatusApproved
	l.DecidedBy = &actor
	l.DecidedAt = &now
	require.NoError(t, repo.Update(ctx, l))

	got, err := repo.FindByID(ctx, l.ID)
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	if assert.NotNil(t, got.DecidedBy) {
		assert.Equal(t, actor, *got.DecidedBy)
	}
	assert.NotNil(t, got.DecidedAt)
}

func TestLeaveRepositoryCountOverlapping(t *testing.T) {
	repo, _ := setupLeaveRepository(t)
	ctx := context.Background()

	employeeID := uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.Create(ctx, newLeave(employeeID, leave.TypeSick, leave.StatusPending, day(10), day(12))))
	require.NoError(t, repo.Create(ctx, newLeave(employeeID, leave.TypeSick, leave.StatusRejected, day(11), day(11))))

	t.Run("overlap counted", func(t *testing.T) {
		n, err := repo.CountOverlapping(ctx, employeeID, day(12), day(14))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("rejected requests ignored", func(t *testing.T) {
		n, err := repo.CountOverlapping(ctx, employeeID, day(11), day(11))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("no overlap", func(t *testing.T) {
		n, err := repo.CountOverlapping(ctx, employeeID, day(20), day(22))
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("other employee", func(t *testing.T) {
		n, err := repo.CountOverlapping(ctx, uuid.New(), day(10), day(14))
		assert.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestLeaveRepositoryEmployeeExists(t *testing.T) {
	repo, db := setupLeaveRepository(t)
	ctx := context.Background()

	active := uuid.New()
	gone := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO employees (id, name) VALUES (?, ?)`, active.String(), "Asha Rao",
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO employees (id, name, deleted_at) VALUES (?, ?, ?)`, gone.String(), "Left Already", time.Now(),
	).Error)

	ok, err := repo.EmployeeExists(ctx, active)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmployeeExists(ctx, gone)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.EmployeeExists(ctx, uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLeaveRepositoryWithTx(t *testing.T) {
	repo, db := setupLeaveRepository(t)
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rollback discards the create", func(t *testing.T) {
		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		l := newLeave(uuid.New(), leave.TypeCasual, leave.StatusPending, start, start)
		require.NoError(t, repo.WithTx(tx).Create(ctx, l))
		require.NoError(t, tx.Rollback())

		var count int64
		require.NoError(t, db.Model(&leave.LeaveRequest{}).Where("id = ?", l.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("commit persists the create", func(t *testing.T) {
		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		l := newLeave(uuid.New(), leave.TypeCasual, leave.StatusPending, start, start)
		require.NoError(t, repo.WithTx(tx).Create(ctx, l))
		require.NoError(t, tx.Commit())

		got, err := repo.FindByID(ctx, l.ID)
		assert.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)
	})
}

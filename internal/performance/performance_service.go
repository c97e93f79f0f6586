package performance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	perfErrors "github.com/luckycunningwolf/HRMS/internal/performance/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
)

//go:generate mockgen -source=performance_service.go -destination=mocks/mock_performance_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateReviewRequest, reviewerID string) (ReviewResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]ReviewResponse, error)
	GetByID(ctx context.Context, id string) (ReviewResponse, error)
	Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, f ListFilter) (PerformanceStats, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateReviewRequest, reviewerID string) (ReviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	reviewDate, err := time.Parse("2006-01-02", req.ReviewDate)
	if err != nil {
		return ReviewResponse{}, perfErrors.ErrInvalidReviewDate
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ReviewResponse{}, perfErrors.ErrEmployeeNotFound
	}
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return ReviewResponse{}, err
	}
	if !exists {
		return ReviewResponse{}, perfErrors.ErrEmployeeNotFound
	}

	existing, err := s.repo.CountForPeriod(ctx, employeeID, req.ReviewPeriod)
	if err != nil {
		return ReviewResponse{}, err
	}
	if existing > 0 {
		return ReviewResponse{}, perfErrors.ErrDuplicatePeriod
	}

	rev := &Review{
		EmployeeID:   employeeID,
		ReviewPeriod: req.ReviewPeriod,
		ReviewDate:   reviewDate,

		OverallRating:         req.OverallRating,
		TechnicalSkills:       req.TechnicalSkills,
		Communication:         req.Communication,
		Teamwork:              req.Teamwork,
		Leadership:            req.Leadership,
		ProblemSolving:        req.ProblemSolving,
		AttendancePunctuality: req.AttendancePunctuality,
		GoalsAchievement:      req.GoalsAchievement,

		Strengths:        req.Strengths,
		AreasToImprove:   req.AreasToImprove,
		ReviewerComments: req.ReviewerComments,
	}
	if rvID, err := uuid.Parse(reviewerID); err == nil {
		rev.ReviewerID = &rvID
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		s.logger.Error("create review failed", zap.String("request_id", rid), zap.Error(err))
		return ReviewResponse{}, err
	}

	s.logger.Info("performance review created",
		zap.String("request_id", rid),
		zap.String("review_id", rev.ID.String()),
		zap.String("employee_id", rev.EmployeeID.String()),
		zap.String("period", rev.ReviewPeriod),
	)

	out, err := s.repo.FindByID(ctx, rev.ID)
	if err != nil {
		return ReviewResponse{}, err
	}
	return mapToResponse(out), nil
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]ReviewResponse, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReviewResponse, error) {
	revID, err := uuid.Parse(id)
	if err != nil {
		return ReviewResponse{}, perfErrors.ErrReviewNotFound
	}
	rev, err := s.repo.FindByID(ctx, revID)
	if err != nil {
		return ReviewResponse{}, err
	}
	return mapToResponse(rev), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	revID, err := uuid.Parse(id)
	if err != nil {
		return ReviewResponse{}, perfErrors.ErrReviewNotFound
	}
	rev, err := s.repo.FindByID(ctx, revID)
	if err != nil {
		return ReviewResponse{}, err
	}

	if req.ReviewPeriod != "" {
		rev.ReviewPeriod = req.ReviewPeriod
	}
	if req.ReviewDate != "" {
		d, err := time.Parse("2006-01-02", req.ReviewDate)
		if err != nil {
			return ReviewResponse{}, perfErrors.ErrInvalidReviewDate
		}
		rev.ReviewDate = d
	}

	if req.OverallRating != nil {
		rev.OverallRating = *req.OverallRating
	}
	if req.TechnicalSkills != nil {
		rev.TechnicalSkills = *req.TechnicalSkills
	}
	if req.Communication != nil {
		rev.Communication = *req.Communication
	}
	if req.Teamwork != nil {
		rev.Teamwork = *req.Teamwork
	}
	if req.Leadership != nil {
		rev.Leadership = *req.Leadership
	}
	if req.ProblemSolving != nil {
		rev.ProblemSolving = *req.ProblemSolving
	}
	if req.AttendancePunctuality != nil {
		rev.AttendancePunctuality = *req.AttendancePunctuality
	}
	if req.GoalsAchievement != nil {
		rev.GoalsAchievement = *req.GoalsAchievement
	}
	if req.Strengths != nil {
		rev.Strengths = *req.Strengths
	}
	if req.AreasToImprove != nil {
		rev.AreasToImprove = *req.AreasToImprove
	}
	if req.ReviewerComments != nil {
		rev.ReviewerComments = *req.ReviewerComments
	}

	if err := s.repo.Update(ctx, rev); err != nil {
		s.logger.Error("update review failed", zap.String("request_id", rid), zap.String("review_id", id), zap.Error(err))
		return ReviewResponse{}, err
	}
	return mapToResponse(rev), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	revID, err := uuid.Parse(id)
	if err != nil {
		return perfErrors.ErrReviewNotFound
	}
	return s.repo.Delete(ctx, revID)
}

func (s *service) Stats(ctx context.Context, f ListFilter) (PerformanceStats, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return PerformanceStats{}, err
	}
	return Summarize(items), nil
}

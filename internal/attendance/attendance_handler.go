package attendance

import (
	"net/http"
	"time"

	"github.com/luckycunningwolf/HRMS/internal/middleware"
	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
	"github.com/luckycunningwolf/HRMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BulkMark participates in the idempotency middleware: the lock is released
// when done and the result cached so a duplicate submit replays the response.
func (h *Handler) BulkMark(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req BulkMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http bulk mark validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.BulkMark(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			envelope := response.ApiEnvelope{Ok: true, Data: resp}
			middleware.CacheIdempotentReply(c.Request.Context(), h.rdb, ck, http.StatusCreated, envelope)
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Log(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http log attendance validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Log(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	employeeID := c.Query("employee_id")
	var (
		resp []AttendanceResponse
		err  error
	)
	if employeeID != "" {
		resp, err = h.service.HistoryByEmployee(c.Request.Context(), employeeID, month)
	} else {
		resp, err = h.service.History(c.Request.Context(), month)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summaries(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	resp, err := h.service.MonthlySummaries(c.Request.Context(), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

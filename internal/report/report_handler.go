package report

import (
	"net/http"

	"github.com/luckycunningwolf/HRMS/internal/leave"
	"github.com/luckycunningwolf/HRMS/internal/shared/apperror"
	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
	"github.com/luckycunningwolf/HRMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) month(c *gin.Context) string {
	return c.DefaultQuery("month", istime.Now().Format("2006-01"))
}

func (h *Handler) AttendanceCSV(c *gin.Context) {
	export, err := h.service.AttendanceCSV(c.Request.Context(), h.month(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.File(c, export.ContentType, export.Filename, export.Data)
}

func (h *Handler) AttendanceSummaryPDF(c *gin.Context) {
	export, err := h.service.AttendanceSummaryPDF(c.Request.Context(), h.month(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.File(c, export.ContentType, export.Filename, export.Data)
}

func (h *Handler) EmployeeAttendancePDF(c *gin.Context) {
	export, err := h.service.EmployeeAttendancePDF(c.Request.Context(), c.Param("employeeId"), h.month(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.File(c, export.ContentType, export.Filename, export.Data)
}

func (h *Handler) LeaveCSV(c *gin.Context) {
	var filter leave.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	export, err := h.service.LeaveCSV(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.File(c, export.ContentType, export.Filename, export.Data)
}

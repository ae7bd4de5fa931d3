package attendance

import (
	"net/http"
	"strconv"

	"hr-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")
	h.logger.Debug("http list attendances", zap.String("employee_id", employeeID))

	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Warn("http list attendances bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", err.Error())
		return
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID, filter)
	if err != nil {
		httpErr := response.FromError(c, err)
		h.logger.Warn("list attendances failed",
			zap.String("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

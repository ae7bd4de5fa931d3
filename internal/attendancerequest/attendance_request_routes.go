package attendancerequest

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the attendance-correction endpoints. approverOnly
// guards decisions.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlersChain,
	approverOnly gin.HandlerFunc,
) {
	requests := r.Group("/attendance-requests")
	requests.Use(auth...)
	{
		requests.POST("", handler.Create)
		requests.GET("/:id", handler.GetByID)
		requests.PUT("/:id", handler.Update)
		requests.POST("/:id/decision", approverOnly, handler.Decide)
		requests.POST("/:id/cancel", handler.Cancel)
	}

	employees := r.Group("/employees")
	employees.Use(auth...)
	{
		employees.GET("/:employee_id/attendance-requests", handler.ListByEmployee)
	}
}

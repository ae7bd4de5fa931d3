package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlersChain) {
	employees := r.Group("/employees")
	employees.Use(auth...)
	{
		employees.GET("/:employee_id/attendances", h.ListByEmployee)
	}
}

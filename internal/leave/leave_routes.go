package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. approverOnly guards decisions.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlersChain,
	approverOnly gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(auth...)
	{
		leaves.POST("", handler.Create)
		leaves.GET("/:id", handler.GetByID)
		leaves.PUT("/:id", handler.Update)
		leaves.POST("/:id/decision", approverOnly, handler.Decide)
		leaves.POST("/:id/cancel", handler.Cancel)
	}

	employees := r.Group("/employees")
	employees.Use(auth...)
	{
		employees.GET("/:employee_id/leaves", handler.ListByEmployee)
	}

	balances := r.Group("/leave-balances")
	balances.Use(auth...)
	{
		balances.GET("", handler.CurrentBalance)
		balances.GET("/history", handler.BalanceHistory)
	}
}

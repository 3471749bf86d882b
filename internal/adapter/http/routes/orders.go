package routes

import (
	"unimarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathSizes  = "/sizes"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, sizeHandler *handlers.SizeHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListForAdmin)
		orders.GET("/garment", orderHandler.ListForGarment)
		orders.GET("/:order_id/progress", orderHandler.GetProgress)
	}

	rg.GET(PathSizes, sizeHandler.ListSizes)
}

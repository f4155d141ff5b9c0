package routes

import (
	"aluguel_carros/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathContracts = "/contracts"
)

func addRentalRoutes(rg *gin.RouterGroup, orderHandler *handlers.RentalOrderHandler, contractHandler *handlers.CreditContractHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.ModifyOrder)
		orders.PATCH("/:id/review", orderHandler.ReviewOrder)
		orders.PATCH("/:id/approve", orderHandler.ApproveOrder)
		orders.PATCH("/:id/reject", orderHandler.RejectOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
		orders.PATCH("/:id/finalize", orderHandler.FinalizeOrder)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.GET("/order/:order_id", contractHandler.GetContractByOrder)
		contracts.PATCH("/:id/settle", contractHandler.SettleContract)
		contracts.PATCH("/:id/suspend", contractHandler.SuspendContract)
		contracts.PATCH("/:id/cancel", contractHandler.CancelContract)
	}
}

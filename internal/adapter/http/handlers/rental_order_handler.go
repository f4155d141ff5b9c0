package handlers

import (
	"errors"
	"net/http"

	request "aluguel_carros/internal/adapter/http/dto/request"
	response "aluguel_carros/internal/adapter/http/dto/response"
	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/usecase"
	"aluguel_carros/internal/usecase/interfaces"
	"aluguel_carros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid rental order payload", http.StatusBadRequest)
)

// RentalOrderHandler handles HTTP requests for rental orders.
type RentalOrderHandler struct {
	usecase usecase.IRentalOrderUseCase
}

func NewRentalOrderHandler(uc usecase.IRentalOrderUseCase) *RentalOrderHandler {
	return &RentalOrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Create a rental order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order body request.RentalOrderRequest true "order"
// @Success  201 {object} response.RentalOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *RentalOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.RentalOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolvePeriod()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), usecase.CreateOrderInput{
		CustomerID: payload.CustomerID,
		VehicleID:  payload.VehicleID,
		StartDate:  start,
		EndDate:    end,
		Notes:      payload.Notes,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRentalOrder(order))
}

// GetOrder godoc
// @Summary  Fetch a rental order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *RentalOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// ModifyOrder godoc
// @Summary  Change the period of an undecided order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    order body request.ModifyRentalOrderRequest true "changes"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id} [put]
func (h *RentalOrderHandler) ModifyOrder(c *gin.Context) {
	var payload request.ModifyRentalOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolvePeriod()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Modify(c.Request.Context(), c.Param("id"), usecase.ModifyOrderInput{
		StartDate: start,
		EndDate:   end,
		Notes:     payload.Notes,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// ReviewOrder godoc
// @Summary  Pull a pending order into evaluation
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    decision body request.ReviewOrderRequest true "agent"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/review [patch]
func (h *RentalOrderHandler) ReviewOrder(c *gin.Context) {
	var payload request.ReviewOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.StartReview(c.Request.Context(), c.Param("id"), payload.ResolveAgentID())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// ApproveOrder godoc
// @Summary  Approve an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    decision body request.ReviewOrderRequest true "agent"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/approve [patch]
func (h *RentalOrderHandler) ApproveOrder(c *gin.Context) {
	var payload request.ReviewOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.ResolveAgentID())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// RejectOrder godoc
// @Summary  Reject an order with a reason
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    decision body request.RejectOrderRequest true "agent + reason"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/reject [patch]
func (h *RentalOrderHandler) RejectOrder(c *gin.Context) {
	var payload request.RejectOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.ResolveAgentID(), payload.ResolveReason())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// CancelOrder godoc
// @Summary  Cancel an order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/cancel [patch]
func (h *RentalOrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// FinalizeOrder godoc
// @Summary  Finalize an approved order after the rental ends
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.RentalOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/finalize [patch]
func (h *RentalOrderHandler) FinalizeOrder(c *gin.Context) {
	order, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrder(order))
}

// ListOrders godoc
// @Summary  List orders by customer, vehicle or status
// @Tags     orders
// @Produce  json
// @Param    customer_id query string false "customer id"
// @Param    vehicle_id  query string false "vehicle id"
// @Param    status      query string false "order status"
// @Success  200 {array} response.RentalOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /orders [get]
func (h *RentalOrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		orders []entities.RentalOrder
		err    error
	)
	switch {
	case c.Query("customer_id") != "":
		orders, err = h.usecase.ListByCustomerID(ctx, c.Query("customer_id"))
	case c.Query("vehicle_id") != "":
		orders, err = h.usecase.ListByVehicleID(ctx, c.Query("vehicle_id"))
	case c.Query("status") != "":
		orders, err = h.usecase.ListByStatus(ctx, entities.OrderStatus(c.Query("status")))
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "One of customer_id, vehicle_id or status is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRentalOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidAgentID),
		errors.Is(err, usecase.ErrInvalidRentalPeriod),
		errors.Is(err, usecase.ErrStartDateInPast),
		errors.Is(err, usecase.ErrEmptyRejectionReason):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Rental order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerInactive),
		errors.Is(err, usecase.ErrVehicleUnavailable),
		errors.Is(err, usecase.ErrAgentNotAllowed),
		errors.Is(err, usecase.ErrReviewNotEnabled):
		return pkg.NewDomainError("OPERATION_NOT_ALLOWED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPeriodConflict):
		return pkg.NewDomainErrorSimple("PERIOD_CONFLICT", "Vehicle already booked for the requested period", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotModifiable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_MODIFIABLE", "Order can no longer be modified", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("STALE_ORDER_VERSION", "Order changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	request "aluguel_carros/internal/adapter/http/dto/request"
	response "aluguel_carros/internal/adapter/http/dto/response"
	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/financing"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/usecase"
	"aluguel_carros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid credit contract payload", http.StatusBadRequest)
)

// CreditContractHandler handles HTTP requests for financing contracts.

type CreditContractHandler struct {
	usecase usecase.ICreditContractUseCase
}

func NewCreditContractHandler(uc usecase.ICreditContractUseCase) *CreditContractHandler {
	return &CreditContractHandler{usecase: uc}
}

// CreateContract godoc
// @Summary  Attach financing to an approved order
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    contract body request.CreditContractRequest true "contract"
// @Success  201 {object} response.CreditContractResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /contracts [post]
func (h *CreditContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreditContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	principal, err := payload.ResolvePrincipal()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	rate, err := payload.ResolveRate()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	start, err := payload.ResolveStartDate()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), usecase.CreateContractInput{
		OrderID:           payload.OrderID,
		AgentID:           payload.AgentID,
		Principal:         principal,
		AnnualRatePercent: rate,
		Installments:      payload.Installments,
		StartDate:         start,
		Notes:             payload.Notes,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreditContract(contract))
}

// GetContract godoc
// @Summary  Fetch a credit contract
// @Tags     contracts
// @Produce  json
// @Param    id path string true "contract id"
// @Success  200 {object} response.CreditContractResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /contracts/{id} [get]
func (h *CreditContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditContract(contract))
}

// GetContractByOrder godoc
// @Summary  Fetch the contract attached to an order
// @Tags     contracts
// @Produce  json
// @Param    order_id path string true "order id"
// @Success  200 {object} response.CreditContractResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /contracts/order/{order_id} [get]
func (h *CreditContractHandler) GetContractByOrder(c *gin.Context) {
	contract, err := h.usecase.GetByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditContract(contract))
}

// SettleContract godoc
// @Summary  Settle a contract
// @Tags     contracts
// @Produce  json
// @Param    id path string true "contract id"
// @Success  200 {object} response.CreditContractResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /contracts/{id}/settle [patch]
func (h *CreditContractHandler) SettleContract(c *gin.Context) {
	h.patchContractStatus(c, h.usecase.Settle)
}

// SuspendContract godoc
// @Summary  Suspend a contract
// @Tags     contracts
// @Produce  json
// @Param    id path string true "contract id"
// @Success  200 {object} response.CreditContractResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /contracts/{id}/suspend [patch]
func (h *CreditContractHandler) SuspendContract(c *gin.Context) {
	h.patchContractStatus(c, h.usecase.Suspend)
}

// CancelContract godoc
// @Summary  Cancel a contract
// @Tags     contracts
// @Produce  json
// @Param    id path string true "contract id"
// @Success  200 {object} response.CreditContractResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /contracts/{id}/cancel [patch]
func (h *CreditContractHandler) CancelContract(c *gin.Context) {
	h.patchContractStatus(c, h.usecase.Cancel)
}

func (h *CreditContractHandler) patchContractStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.CreditContract, error),
) {
	contract, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidAgentID),
		errors.Is(err, financing.ErrInvalidPrincipal),
		errors.Is(err, financing.ErrInvalidRate),
		errors.Is(err, financing.ErrInvalidTerm):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Credit contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Rental order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotApproved),
		errors.Is(err, usecase.ErrAgentNotAllowed):
		return pkg.NewDomainError("OPERATION_NOT_ALLOWED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContractAlreadyExists):
		return pkg.NewDomainErrorSimple("CONTRACT_ALREADY_EXISTS", "Order already has a credit contract", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

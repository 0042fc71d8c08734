package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/proroofers/crm-api/internal/dto"
	apierrors "github.com/proroofers/crm-api/internal/errors"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/services"
)

// CustomerHandler coordinates customer HTTP handlers. Customers carry no
// per-row authorization; any authenticated user may mutate any customer.
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers returns up to 50 customers, filtered by an optional
// contains search on name and email.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.Search(c.Query("search"))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns a customer by ID with its projects
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.Get(id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer creates a customer
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.Create(req)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer fully replaces the customer's allow-listed fields
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.customerService.Update(id, req); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCustomer removes the customer and its projects
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(id); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrIDMismatch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, apierrors.ErrCodeConflict, err.Error())
	default:
		logs.Logger.WithError(err).Error("customer request failed")
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses the :id path parameter, responding 400 on failure.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

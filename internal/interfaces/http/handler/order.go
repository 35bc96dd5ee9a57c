package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/yishaq/backend/internal/application/order"
	"github.com/yishaq/backend/internal/interfaces/http/dto"
)

// OrderHandler handles customer-facing order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.AdminService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.AdminService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListMine returns the authenticated customer's orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query dto.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.ListByUser(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetMine returns one of the authenticated customer's orders by order number.
// Orders belonging to other accounts are indistinguishable from missing ones.
func (h *OrderHandler) GetMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		h.BadRequest(c, "Missing order number")
		return
	}

	resp, err := h.orderService.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp.UserID == nil || *resp.UserID != userID {
		h.NotFound(c, "Order not found")
		return
	}
	h.Success(c, resp)
}

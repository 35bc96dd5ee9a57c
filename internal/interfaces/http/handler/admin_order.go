package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderapp "github.com/yishaq/backend/internal/application/order"
	"github.com/yishaq/backend/internal/interfaces/http/dto"
)

// AdminOrderHandler handles back-office order endpoints
type AdminOrderHandler struct {
	BaseHandler
	orderService *orderapp.AdminService
}

// NewAdminOrderHandler creates a new AdminOrderHandler
func NewAdminOrderHandler(orderService *orderapp.AdminService) *AdminOrderHandler {
	return &AdminOrderHandler{orderService: orderService}
}

// adminOrderListQuery extends the common list parameters with order filters
type adminOrderListQuery struct {
	dto.ListRequest
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
}

// List returns orders with filtering and pagination
func (h *AdminOrderHandler) List(c *gin.Context) {
	var query adminOrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.List(c.Request.Context(), orderapp.ListFilter{
		Page:          query.Page,
		PageSize:      query.PageSize,
		OrderBy:       query.OrderBy,
		OrderDir:      query.OrderDir,
		Search:        query.Search,
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single order by ID
func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// updateOrderBody is the back-office order update payload
type updateOrderBody struct {
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"payment_status"`
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
	AdminNotes     *string `json:"admin_notes"`
}

// updateOrderBodyWithID is the flat update payload where the order ID
// travels in the body instead of the path
type updateOrderBodyWithID struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
	updateOrderBody
}

// Update applies status, payment status, tracking and note changes.
// The whole update is rejected if any field is invalid.
func (h *AdminOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var body updateOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.update(c, id, body)
}

// UpdateByBody is the same update with the order ID carried in the body,
// the shape the admin panel sends
func (h *AdminOrderHandler) UpdateByBody(c *gin.Context) {
	var body updateOrderBodyWithID
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(body.OrderID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	h.update(c, id, body.updateOrderBody)
}

func (h *AdminOrderHandler) update(c *gin.Context, id uuid.UUID, body updateOrderBody) {
	resp, err := h.orderService.Update(c.Request.Context(), orderapp.UpdateOrderRequest{
		OrderID:        id,
		Status:         body.Status,
		PaymentStatus:  body.PaymentStatus,
		TrackingNumber: body.TrackingNumber,
		TrackingURL:    body.TrackingURL,
		AdminNotes:     body.AdminNotes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

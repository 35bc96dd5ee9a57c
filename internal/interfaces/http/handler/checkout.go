package handler

import (
	"github.com/gin-gonic/gin"
	checkoutapp "github.com/yishaq/backend/internal/application/checkout"
	"github.com/yishaq/backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order placement. Checkout is open to guests;
// when a valid token is present the order is attached to the account.
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// PlaceOrder validates the cart, prices it server-side and creates the order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkoutapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if middleware.GetJWTUserID(c) != "" {
		userID, err := getUserID(c)
		if err != nil {
			h.Unauthorized(c, "Invalid session")
			return
		}
		req.UserID = &userID
	}

	resp, err := h.checkoutService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

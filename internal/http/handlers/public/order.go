package public

import (
	"errors"

	"github.com/ferreguly-next/internal/http/response"
	"github.com/ferreguly-next/internal/i18n"
	"github.com/ferreguly-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	ShippingAddressID uint `json:"shipping_address_id" binding:"required"`
}

// PlaceOrder 从购物车创建订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:            uid,
		ShippingAddressID: req.ShippingAddressID,
	})
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			respondError(c, response.CodeBadRequest, "error.cart_empty", nil)
		case errors.As(err, &stockErr):
			msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.insufficient_stock", stockErr.ProductName, stockErr.Available)
			respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		case errors.Is(err, service.ErrNoAddress):
			respondError(c, response.CodeBadRequest, "error.no_address", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.address_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_create_failed", err)
		}
		return
	}

	requestLog(c).Infow("order_placed",
		"order_id", order.ID,
		"user_id", uid,
		"total", order.Total,
	)
	response.Success(c, order)
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	orders, total, err := h.OrderService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 当前用户订单详情（仅可见本人订单）
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetByIDAndUser(id, uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.Success(c, order)
}

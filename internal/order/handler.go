package order

import (
	"net/http"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *OrderService
}

func NewOrderHandler(orderService *OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var request CreateOrderRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Single(order))
}

func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := handler.BindID(c)
	if !ok {
		return
	}

	var request UpdateOrderRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := handler.BindID(c)
	if !ok {
		return
	}

	order, err := h.orderService.FindOrder(c.Request.Context(), orderID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	page, ok := handler.BindPage(c)
	if !ok {
		return
	}

	orders, err := h.orderService.FindOrders(c.Request.Context(), page)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := handler.BindID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

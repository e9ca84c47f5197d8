package coffee

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type CoffeeHandler struct {
	coffeeService *CoffeeService
}

func NewCoffeeHandler(coffeeService *CoffeeService) *CoffeeHandler {
	return &CoffeeHandler{
		coffeeService: coffeeService,
	}
}

func (h *CoffeeHandler) Create(c *gin.Context) {
	var request CreateCoffeeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if staffID, ok := sharedContext.GetStaffID(c); ok {
		logger.FromContext(c.Request.Context()).Info("Coffee registration by staff",
			"staff_id", staffID,
			"role", sharedContext.GetStaffRole(c),
		)
	}

	coffee, err := h.coffeeService.CreateCoffee(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Single(coffee))
}

func (h *CoffeeHandler) Update(c *gin.Context) {
	coffeeID, ok := handler.BindID(c)
	if !ok {
		return
	}

	var request UpdateCoffeeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	coffee, err := h.coffeeService.UpdateCoffee(c.Request.Context(), coffeeID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(coffee))
}

func (h *CoffeeHandler) Get(c *gin.Context) {
	coffeeID, ok := handler.BindID(c)
	if !ok {
		return
	}

	coffee, err := h.coffeeService.FindCoffee(c.Request.Context(), coffeeID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(coffee))
}

func (h *CoffeeHandler) List(c *gin.Context) {
	page, ok := handler.BindPage(c)
	if !ok {
		return
	}

	coffees, err := h.coffeeService.FindCoffees(c.Request.Context(), page)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, coffees)
}

func (h *CoffeeHandler) Delete(c *gin.Context) {
	coffeeID, ok := handler.BindID(c)
	if !ok {
		return
	}

	if err := h.coffeeService.DeleteCoffee(c.Request.Context(), coffeeID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders commands.OrderCommands
}

func NewOrderHandler(orders commands.OrderCommands) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// @Summary Create order
// @Description Validate and price an order server-side, then open a checkout session
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /restaurants/{id}/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orders.CreateOrder(c.Request.Context(), req.ToInput(restaurantID))
	if err != nil {
		switch {
		case commands.IsValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrCheckoutFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderResult(result))
}

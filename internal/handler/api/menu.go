package api

import (
	"net/http"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menu queries.MenuQueries
}

func NewMenuHandler(menu queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menu: menu,
	}
}

// @Summary Get menu
// @Description List the restaurant's menu items
// @Tags menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} map[string]string
// @Router /restaurants/{id}/menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	items, err := h.menu.ListItems(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromMenuItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/assistant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	dispatcher assistant.Dispatcher
}

func NewChatHandler(dispatcher assistant.Dispatcher) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
	}
}

// @Summary Chat with the restaurant's assistant
// @Description Send a customer message to the conversational assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.ChatRequest true "Chat message"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /restaurants/{id}/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	var req reqdto.ChatRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message is required",
		})
		return
	}

	result, err := h.dispatcher.Handle(c.Request.Context(), assistant.ChatInput{
		RestaurantID:   restaurantID,
		ConversationID: req.ConversationID,
		Message:        req.Message,
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "The assistant is unavailable right now, please call the restaurant",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromChatResult(result))
}

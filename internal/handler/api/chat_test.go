//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/assistant"
	"tablebook/tests/common/httptest"
	assistantmock "tablebook/tests/mock/assistant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockDispatcher *assistantmock.MockDispatcher
	restaurantID   uuid.UUID
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDispatcher = assistantmock.NewMockDispatcher(s.mockCtrl)
	s.restaurantID = uuid.New()

	handler := api.NewChatHandler(s.mockDispatcher)
	s.router.POST("/api/restaurants/:id/chat", handler.Chat)
}

func (s *ChatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestChat() {
	url := fmt.Sprintf("/api/restaurants/%s/chat", s.restaurantID)

	s.Run("success: relays the assistant's reply with the conversation id", func() {
		convID := uuid.New()
		s.mockDispatcher.EXPECT().Handle(gomock.Any(), assistant.ChatInput{
			RestaurantID: s.restaurantID,
			Message:      "Do you have outdoor seating?",
		}).Return(&assistant.ChatResult{ConversationID: convID, Reply: "We do! Our patio seats 20."}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "Do you have outdoor seating?"}, "")

		var response resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(convID, response.ConversationID)
		s.Contains(response.Reply, "patio")
	})

	s.Run("success: forwards an existing conversation id", func() {
		convID := uuid.New()
		s.mockDispatcher.EXPECT().Handle(gomock.Any(), assistant.ChatInput{
			RestaurantID:   s.restaurantID,
			ConversationID: &convID,
			Message:        "And for Saturday?",
		}).Return(&assistant.ChatResult{ConversationID: convID, Reply: "Saturday works too."}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "And for Saturday?", "conversation_id": convID}, "")

		var response resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(convID, response.ConversationID)
	})

	s.Run("error: 400 Bad Request without a message", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "message is required")
	})

	s.Run("error: 503 Service Unavailable when the assistant fails", func() {
		s.mockDispatcher.EXPECT().Handle(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("model API returned status 529")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "hello"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "assistant is unavailable")
	})
}

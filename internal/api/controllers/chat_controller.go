package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easytrip/internal/models/request_models"
	"easytrip/internal/services"
	"easytrip/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat handles one conversation turn. The turn payload goes out raw, not in
// the API envelope, so chat clients can bind it directly.
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	turn := ch.chatService.HandleTurn(c.Request.Context(), req.SessionID, req.Answer)
	c.JSON(http.StatusOK, turn)
}

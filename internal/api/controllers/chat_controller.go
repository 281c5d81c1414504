package controllers

import (
	"github.com/gin-gonic/gin"

	"lankatrip/internal/models/request_models"
	"lankatrip/internal/services"
	"lankatrip/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Ask the travel assistant; replies are grounded on the attraction catalog
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Message payload"
// @Success 200 {object} response_models.ChatMessageResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/message [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}

	userID := c.GetString("user_id")

	reply, err := ch.chatService.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Message processed")
}

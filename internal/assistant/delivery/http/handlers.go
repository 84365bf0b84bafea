package http

import (
	"github.com/gin-gonic/gin"

	"expense-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the expense assistant
// @Description Turns a natural-language message into a transaction or a conversational reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and user"
// @Success     200  {object} map[string]interface{} "TransactionResult or ConversationResult"
// @Failure     400  {object} response.Resp "Message and user_id are required"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"litecal/internal/chat"
	litecalerrors "litecal/internal/errors"
	"litecal/internal/event"
	"litecal/internal/logging"
)

// ChatHandler exposes the chat orchestrator over HTTP.
type ChatHandler struct {
	orchestrator *chat.Orchestrator
	logger       logging.Logger
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(orchestrator *chat.Orchestrator) *ChatHandler {
	return &ChatHandler{
		orchestrator: orchestrator,
		logger:       logging.NewComponentLogger("ChatHandler"),
	}
}

// HandleChat processes one chat turn. All caller-visible failures share the
// {error} shape; preconditions map to 400, everything else to 500.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	today := time.Time{}
	if req.CurrentDate != "" {
		parsed, err := time.Parse(event.DateLayout, req.CurrentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid current_date: %v", err)})
			return
		}
		today = parsed
	}

	use12h := true
	if req.Use12hFormat != nil {
		use12h = *req.Use12hFormat
	}

	result, err := h.orchestrator.Process(c.Request.Context(), chat.Request{
		Message: req.Message,
		Image:   req.Image,
		Audio:   req.Audio,
		History: req.History,
		UserID:  req.UserID,
		Today:   today,
		Use12h:  use12h,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if litecalerrors.IsPrecondition(err) {
			status = http.StatusBadRequest
		}
		if litecalerrors.IsContract(err) {
			h.logger.Error("pipeline contract violation: %v", err)
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Message:               result.Message,
		IsEvent:               result.IsEvent,
		RequiresClarification: result.RequiresClarification,
		EventData:             result.Event,
		ICSFile:               result.ICSFile,
	})
}

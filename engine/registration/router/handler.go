package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GasserElSawaf/UniCloudTest/engine/registration"
	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// QuestionAnswerer answers a stateless one-turn question grounded on the
// university information document.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ChatRequest is the dialogue endpoint payload.
type ChatRequest struct {
	Question  string `json:"question"`
	Mode      string `json:"mode"`
	SessionID string `json:"session_id"`
}

// ChatResponse wraps every dialogue reply.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Handler serves the dialogue endpoint and the registration admin surface.
type Handler struct {
	conversation *registration.Conversation
	answerer     QuestionAnswerer
	repo         registration.Repository
	information  string
}

func NewHandler(
	conversation *registration.Conversation,
	answerer QuestionAnswerer,
	repo registration.Repository,
	information string,
) *Handler {
	return &Handler{
		conversation: conversation,
		answerer:     answerer,
		repo:         repo,
		information:  information,
	}
}

// Chat handles one conversational turn. Missing session ids and unknown
// modes are client errors; every other outcome is a 200 with an answer.
func (h *Handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ChatResponse{Answer: "Invalid request body."})
		return
	}
	if req.Mode == "" {
		req.Mode = "question"
	}
	if req.SessionID == "" {
		log.Warn("chat request without session_id")
		c.JSON(http.StatusBadRequest, ChatResponse{Answer: "No session_id provided."})
		return
	}
	switch req.Mode {
	case "question":
		answer, err := h.answerer.Answer(ctx, req.Question)
		if err != nil {
			log.Error("question answering failed", "session_id", req.SessionID, "error", err)
			c.JSON(http.StatusOK, ChatResponse{Answer: "I'm having trouble processing that right now. Please try again."})
			return
		}
		c.JSON(http.StatusOK, ChatResponse{Answer: answer})
	case "registration":
		answer := h.conversation.HandleTurn(ctx, req.SessionID, req.Question)
		c.JSON(http.StatusOK, ChatResponse{Answer: answer})
	default:
		log.Warn("unknown chat mode", "mode", req.Mode)
		c.JSON(http.StatusBadRequest, ChatResponse{Answer: "Unknown mode."})
	}
}

// ListRegistrations returns every stored registration.
func (h *Handler) ListRegistrations(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to list registrations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch registrations."})
		return
	}
	if records == nil {
		records = []*registration.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"registrations": records})
}

// GetRegistration returns the registration stored for one session id.
func (h *Handler) GetRegistration(c *gin.Context) {
	sessionID := c.Param("session_id")
	record, err := h.repo.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, registration.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Registration not found."})
			return
		}
		logger.FromContext(c.Request.Context()).Error("failed to fetch registration", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch registration."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"registration": record})
}

// DeleteRegistrations purges all stored registrations.
func (h *Handler) DeleteRegistrations(c *gin.Context) {
	deleted, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to delete registrations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete registrations."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// UniversityInfo serves the loaded knowledge document.
func (h *Handler) UniversityInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"info": h.information})
}

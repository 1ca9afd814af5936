package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct{ svc *service.ScoringService }

func NewFeedbackHandler(svc *service.ScoringService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// PUT /api/projects/:id/feedback
func (h *FeedbackHandler) Save(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	fb, err := h.svc.SaveFeedback(c.Request.Context(), id, middleware.UserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

// GET /api/projects/:id/feedback — anonymized comment feed, open to everyone.
func (h *FeedbackHandler) PublicFeed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	feed, err := h.svc.PublicFeed(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GET /api/admin/projects/:id/feedback — full feed with judge identity and
// private notes. The service re-checks the caller's role.
func (h *FeedbackHandler) FullFeed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	feed, err := h.svc.FullFeed(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

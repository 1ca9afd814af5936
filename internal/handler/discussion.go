package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscussionHandler struct{ svc *service.DiscussionService }

func NewDiscussionHandler(svc *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{svc: svc}
}

// POST /api/discussions
func (h *DiscussionHandler) Create(c *gin.Context) {
	var req model.DiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	d, err := h.svc.CreateThread(c.Request.Context(), middleware.UserID(c), req.Title, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GET /api/discussions
func (h *DiscussionHandler) List(c *gin.Context) {
	threads, err := h.svc.ListThreads(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if threads == nil {
		threads = []model.Discussion{}
	}
	c.JSON(http.StatusOK, threads)
}

// GET /api/discussions/:id
func (h *DiscussionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	d, replies, err := h.svc.GetThread(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if replies == nil {
		replies = []model.Reply{}
	}
	c.JSON(http.StatusOK, gin.H{"discussion": d, "replies": replies})
}

// DELETE /api/discussions/:id
func (h *DiscussionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteThread(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/discussions/:id/replies
func (h *DiscussionHandler) CreateReply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req model.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	r, err := h.svc.CreateReply(c.Request.Context(), middleware.UserID(c), id, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// DELETE /api/replies/:id
func (h *DiscussionHandler) DeleteReply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteReply(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

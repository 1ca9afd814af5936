package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateHandler struct{ svc *service.UpdateService }

func NewUpdateHandler(svc *service.UpdateService) *UpdateHandler {
	return &UpdateHandler{svc: svc}
}

// GET /api/updates
func (h *UpdateHandler) List(c *gin.Context) {
	updates, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if updates == nil {
		updates = []model.Update{}
	}
	c.JSON(http.StatusOK, updates)
}

// POST /api/updates
func (h *UpdateHandler) Create(c *gin.Context) {
	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), req.Title, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// DELETE /api/updates/:id
func (h *UpdateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

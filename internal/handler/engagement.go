package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EngagementHandler struct{ svc *service.EngagementService }

func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

// POST /api/projects/:id/like
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	resp, err := h.svc.ToggleLike(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/projects/:id/view
//
// Views are best-effort: a storage failure is logged by the service and the
// caller still gets 200 with a zero count, because losing a view is not
// worth an error toast.
func (h *EngagementHandler) RecordView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var profileID *uuid.UUID
	if uid := middleware.UserID(c); uid != uuid.Nil {
		profileID = &uid
	}
	total, err := h.svc.RecordView(c.Request.Context(), id, profileID, c.Query("origin"))
	if err != nil {
		c.JSON(http.StatusOK, model.ViewResponse{TotalViews: 0})
		return
	}
	c.JSON(http.StatusOK, model.ViewResponse{TotalViews: total})
}

package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler covers role management.
type AdminHandler struct{ roles *service.RoleService }

func NewAdminHandler(roles *service.RoleService) *AdminHandler {
	return &AdminHandler{roles: roles}
}

// PUT /api/admin/roles/:profileID
func (h *AdminHandler) AssignRole(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("profileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}
	var req model.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.roles.Assign(c.Request.Context(), middleware.UserID(c), profileID, req.Role); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_id": profileID, "role": req.Role})
}

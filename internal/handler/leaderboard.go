package handler

import (
	"net/http"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct{ svc *service.LeaderboardService }

func NewLeaderboardHandler(svc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// GET /api/admin/leaderboard
func (h *LeaderboardHandler) Admin(c *gin.Context) {
	entries, err := h.svc.Rank(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/leaderboard
func (h *LeaderboardHandler) Public(c *gin.Context) {
	entries, err := h.svc.PublicRank(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

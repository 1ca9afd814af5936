package handler

import (
	"net/http"
	"time"

	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *service.AuthService
	roles    *service.RoleService
	tokenTTL time.Duration
}

func NewAuthHandler(auth *service.AuthService, roles *service.RoleService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, roles: roles, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("signup.ok", "profile_id", p.ID, "email", p.Email)
	h.respondWithToken(c, p)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	logger.Info("login.ok", "profile_id", p.ID)
	h.respondWithToken(c, p)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, p *model.Profile) {
	token, err := middleware.IssueToken(p.ID, p.Name, h.tokenTTL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{
		Token:   token,
		Profile: *p,
		Role:    h.roles.RoleFor(c.Request.Context(), p.ID),
	})
}

// Role reports the caller's resolved role.
func (h *AuthHandler) Role(c *gin.Context) {
	role := h.roles.RoleFor(c.Request.Context(), middleware.UserID(c))
	c.JSON(http.StatusOK, gin.H{"role": role})
}

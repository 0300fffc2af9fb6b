package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/auth"
)

type AuthHandler struct {
	login *auth.Login
}

func NewAuthHandler(login *auth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	token, ok := h.login.Execute(c.Request.Context(), req.Password)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

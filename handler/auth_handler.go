package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/auth"
)

type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler { return &AuthHandler{service: svc} }

type managerLoginPayload struct {
	SSN string `json:"ssn" binding:"required"`
}

func (h *AuthHandler) ManagerLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p managerLoginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		principal, err := h.service.LoginManager(ctx, p.SSN)
		h.respond(c, principal, err)
	}
}

type driverLoginPayload struct {
	Name string `json:"name" binding:"required"`
}

func (h *AuthHandler) DriverLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p driverLoginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		principal, err := h.service.LoginDriver(ctx, p.Name)
		h.respond(c, principal, err)
	}
}

type clientLoginPayload struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) ClientLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p clientLoginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		principal, err := h.service.LoginClient(ctx, p.Email)
		h.respond(c, principal, err)
	}
}

func (h *AuthHandler) respond(c *gin.Context, principal *authpkg.Principal, err error) {
	if err != nil {
		if errors.Is(err, authpkg.ErrInvalidCredentials) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"principal": principal})
}

// Package handlers contains the gin HTTP handlers for the REST API.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/models"
	"github.com/MarwahManan/Hackathon-2/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db          *gorm.DB
	authService services.AuthService
}

func NewAuthHandler(db *gorm.DB, authService services.AuthService) *AuthHandler {
	return &AuthHandler{db: db, authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authUserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  authUserResponse `json:"user"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and password are required",
			"code":  "VALIDATION_ERROR",
		})
		return
	}

	user, token, err := h.authService.Signup(h.db, req.Email, req.Password)
	if err != nil {
		handleAuthError(c, err, "signup")
		return
	}

	c.JSON(http.StatusCreated, newAuthResponse(user, token))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and password are required",
			"code":  "VALIDATION_ERROR",
		})
		return
	}

	user, token, err := h.authService.Login(h.db, req.Email, req.Password)
	if err != nil {
		handleAuthError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(user, token))
}

func newAuthResponse(user models.User, token string) authResponse {
	return authResponse{
		Token: token,
		User: authUserResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}
}

func handleAuthError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrEmailExists):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "User with this email already exists",
			"code":  "EMAIL_EXISTS",
		})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "VALIDATION_ERROR",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
			"code":  "INVALID_CREDENTIALS",
		})
	default:
		// Internal detail stays in the server log; the client gets an opaque
		// message.
		log.Printf("%s failed: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An internal server error occurred",
			"code":  "INTERNAL_ERROR",
		})
	}
}

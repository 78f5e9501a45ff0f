package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/services"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Signup godoc
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup data"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.service.Signup(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login godoc
// @Summary Log in
// @Description Log in with an email address or phone number as the identifier.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login data"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ctrl.service.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"phone":     user.Phone,
			"userType":  user.UserType,
		},
		"token": token,
	})
}

// Profile godoc
// @Summary Get the authenticated user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	email := c.GetString("user_email")

	user, err := ctrl.service.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ForgotPassword godoc
// @Summary Request a password reset OTP
// @Description Issues a short-lived OTP. The code is included in the response body, mirroring the original backend.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	code, err := ctrl.service.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP generated", "otp": code})
}

// ResetPassword godoc
// @Summary Reset a password with an OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err := ctrl.service.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOTP) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

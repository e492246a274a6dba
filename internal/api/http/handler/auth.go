package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// AuthService defines registration, OTP verification and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	VerifyOTP(ctx context.Context, email, code string) (model.Session, error)
	Login(ctx context.Context, email, password string) (string, error)
	GoogleLogin(ctx context.Context, credential string) (model.Session, error)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	Credential string `json:"credential"`
}

type pendingResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type sessionResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, contextManager: contextManager, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	email, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, pendingResponse{
		Message: "User registered successfully. Please verify your email with OTP.",
		Email:   email,
	})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *Auth) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Message: "OTP verified successfully. Login complete.",
		Token:   session.Token,
		User:    session.User,
	})
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	email, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, pendingResponse{
		Message: "OTP sent to your email. Please verify to complete login.",
		Email:   email,
	})
}

// Google handles POST /api/auth/google.
func (h *Auth) Google(c *gin.Context) {
	var req googleRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.authService.GoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Message: "Google login successful",
		Token:   session.Token,
		User:    session.User,
	})
}

// Me handles GET /api/auth/me.
func (h *Auth) Me(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

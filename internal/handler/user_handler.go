package handler

import (
	"net/http"

	"github.com/books-app/backend/internal/service"
	"github.com/books-app/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Registration request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	logger.Log.Info("User registration attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// GET /users/verify?id=&code=
func (h *UserHandler) Verify(c *gin.Context) {
	codeID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification ID"})
		return
	}
	code := c.Query("code")

	if err := h.userService.Verify(c.Request.Context(), codeID, code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification passed"})
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	reqID, ok := requesterID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), reqID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// PUT /users/:id/role
func (h *UserHandler) PromoteRole(c *gin.Context) {
	reqID, ok := requesterID(c)
	if !ok {
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	profile, err := h.userService.PromoteToAdmin(c.Request.Context(), targetID, reqID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

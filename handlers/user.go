package handlers

import (
	"net/http"
	"time"

	"docportal/models"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenLifetime = 10 * time.Hour

// UserHandler serves account upserts, role checks and admin promotion.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type upsertUserInput struct {
	Name string `json:"name"`
}

// UpsertUserHandler records the signed-in account and returns a fresh
// email-bound token. Public: this is the entry point after the client-side
// sign-in completes.
func (uh *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")
	var input upsertUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := uh.Service.UpsertUser(models.User{Email: email, Name: input.Name}); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}

	token, err := utils.GenerateToken(email, tokenLifetime)
	if err != nil {
		zap.L().Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAllUsersHandler returns all accounts. Admin-only at the route layer.
func (uh *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := uh.Service.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler reports whether the given email holds the admin role.
func (uh *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := uh.Service.IsAdmin(email)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdminHandler grants the admin role. Admin-only at the route layer.
func (uh *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	if err := uh.Service.PromoteToAdmin(email); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}

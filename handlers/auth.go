package handlers

import (
	"net/http"

	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues email-bound access tokens.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

type issueTokenInput struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueTokenHandler issues a token for a known account. Unknown emails are
// refused; accounts are created through the user upsert endpoint.
func (ah *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var input issueTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := ah.Users.GetUserByEmail(input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	if u == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	token, err := utils.GenerateToken(input.Email, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

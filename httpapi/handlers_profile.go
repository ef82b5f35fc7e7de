package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	goTravel "github.com/MrEthical07/goTravel"
)

func (s *Server) viewProfile(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	profile, err := s.engine.Profile(requestContext(c), token)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"name":  profile.Name,
			"email": profile.Email,
			"role":  profile.Role,
		})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) updateProfile(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	var in struct {
		Name        *string `json:"name"`
		Password    string  `json:"password"`
		NewPassword *string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request. JSON data is missing"})
		return
	}

	err := s.engine.UpdateProfile(requestContext(c), token, goTravel.UpdateProfileRequest{
		Name:            in.Name,
		CurrentPassword: in.Password,
		NewPassword:     in.NewPassword,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is required"})
	case errors.Is(err, goTravel.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid current password"})
	case errors.Is(err, goTravel.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) deleteProfile(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	err := s.engine.DeleteAccount(requestContext(c), token)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

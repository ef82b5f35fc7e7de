package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	goTravel "github.com/MrEthical07/goTravel"
)

func (s *Server) listUsers(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
		return
	}

	summaries, err := s.engine.Users(requestContext(c), token)
	switch {
	case err == nil:
		users := make([]gin.H, 0, len(summaries))
		for _, u := range summaries {
			users = append(users, gin.H{
				"name":  u.Name,
				"email": u.Email,
				"role":  u.Role,
			})
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
	case errors.Is(err, goTravel.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. Admin access only."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) deleteUser(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	email := c.Param("email")
	err := s.engine.DeleteUser(requestContext(c), token, email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s deleted successfully.", email)})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
	case errors.Is(err, goTravel.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. Admin access only."})
	case errors.Is(err, goTravel.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case errors.Is(err, goTravel.ErrSelfDeletion):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admins cannot delete themselves."})
	case errors.Is(err, goTravel.ErrPeerAdminDeletion):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admins cannot delete other admins."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	goTravel "github.com/MrEthical07/goTravel"
)

func (s *Server) register(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request. JSON data is missing"})
		return
	}

	_, err := s.engine.Register(requestContext(c), goTravel.RegisterRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
	case errors.Is(err, goTravel.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
	case errors.Is(err, goTravel.ErrRoleInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be either 'User' or 'Admin'"})
	case errors.Is(err, goTravel.ErrAccountExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists!"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request, JSON data is missing"})
		return
	}

	if in.Email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	result, err := s.engine.Login(requestContext(c), in.Email, in.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":    "Login successful",
			"auth_token": "Bearer " + result.Token,
			"role":       result.Role,
		})
	case errors.Is(err, goTravel.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, goTravel.ErrAlreadyLoggedIn):
		c.JSON(http.StatusForbidden, gin.H{"message": "User already logged in. Please log out first to login into another account"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	err := s.engine.Logout(requestContext(c), token)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

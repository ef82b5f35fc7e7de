package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	goTravel "github.com/MrEthical07/goTravel"
)

func destinationJSON(d goTravel.Destination) gin.H {
	return gin.H{
		"id":          d.ID,
		"name":        d.Name,
		"description": d.Description,
		"location":    d.Location,
	}
}

func (s *Server) createDestination(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request. JSON data is missing"})
		return
	}

	created, err := s.engine.CreateDestination(requestContext(c), token, goTravel.DestinationInput{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message":        "Destination added successfully",
			"destination_id": created.ID,
		})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. Only admins can add destinations."})
	case errors.Is(err, goTravel.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) listDestinations(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	records, err := s.engine.Destinations(requestContext(c), token)
	switch {
	case err == nil:
		out := make([]gin.H, 0, len(records))
		for _, d := range records {
			out = append(out, destinationJSON(d))
		}
		c.JSON(http.StatusOK, out)
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) getDestination(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	id := c.Param("id")
	record, err := s.engine.DestinationByID(requestContext(c), token, id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, destinationJSON(*record))
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Destination with ID %s not found.", id)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) updateDestination(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request. JSON data is missing"})
		return
	}

	id := c.Param("id")
	updated, err := s.engine.UpdateDestination(requestContext(c), token, id, goTravel.DestinationPatch{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":     "Destination updated successfully.",
			"destination": destinationJSON(*updated),
		})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. Only admins can update destinations."})
	case errors.Is(err, goTravel.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Fields must not be empty"})
	case errors.Is(err, goTravel.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func (s *Server) deleteDestination(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	id := c.Param("id")
	err := s.engine.DeleteDestination(requestContext(c), token, id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully."})
	case errors.Is(err, goTravel.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, goTravel.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. Only admins can delete destinations."})
	case errors.Is(err, goTravel.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

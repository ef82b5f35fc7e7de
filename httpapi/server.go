package httpapi

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	goTravel "github.com/MrEthical07/goTravel"
)

// Server defines a public type used by goTravel APIs.
//
// Server instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Server struct {
	engine *goTravel.Engine
}

// NewServer describes the newserver operation and its observable behavior.
//
// NewServer may return an error when input validation, dependency calls, or security checks fail.
// NewServer does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewServer(engine *goTravel.Engine) *Server {
	return &Server{engine: engine}
}

// Router describes the router operation and its observable behavior.
//
// Router may return an error when input validation, dependency calls, or security checks fail.
// Router does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.welcome)

	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/logout", s.logout)

	r.GET("/users", s.listUsers)
	r.DELETE("/users/:email", s.deleteUser)

	r.GET("/profile", s.viewProfile)
	r.PUT("/profile", s.updateProfile)
	r.DELETE("/profile", s.deleteProfile)

	r.POST("/destinations", s.createDestination)
	r.GET("/destinations", s.listDestinations)
	r.GET("/destinations/:id", s.getDestination)
	r.PUT("/destinations/:id", s.updateDestination)
	r.DELETE("/destinations/:id", s.deleteDestination)

	return r
}

func (s *Server) welcome(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Hello, Welcome to travel-API!"})
}

// bearerToken strips the "Bearer " prefix. A header without the prefix is
// treated as a bare token so callers that omit the scheme still authenticate.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func requestContext(c *gin.Context) context.Context {
	return goTravel.WithClientIP(c.Request.Context(), c.ClientIP())
}

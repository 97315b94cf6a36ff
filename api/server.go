// Package api is the thin HTTP layer over the sizing engine. It is
// responsible only for input validation, session bookkeeping, and
// serialization; no sizing logic lives here.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"charger-sizing/core/types"
)

// Server is the HTTP API server.
type Server struct {
	router  *gin.Engine
	session *Session
	version string
}

// NewServer creates the API server with the given parameter defaults.
func NewServer(version string, defaults types.Parameters) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		session: NewSession(defaults),
		version: version,
	}

	router.Use(corsMiddleware(), requestIDMiddleware())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/version", s.handleVersion)

	// Stateless one-shot sizing.
	s.router.POST("/size", s.handleSize)

	// Session-scoped charger entry management.
	s.router.GET("/chargers", s.handleListChargers)
	s.router.POST("/chargers", s.handleAddCharger)
	s.router.DELETE("/chargers", s.handleClearChargers)
	s.router.DELETE("/chargers/:id", s.handleRemoveCharger)

	s.router.GET("/parameters", s.handleGetParameters)
	s.router.PUT("/parameters", s.handleSetParameters)

	// Derived designs, recomputed on every read.
	s.router.GET("/design", s.handleDesign)
	s.router.GET("/design/sld", s.handleSLD)
}

// Router exposes the gin engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// corsMiddleware allows browser frontends on other origins.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestIDMiddleware tags every response for log correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// Package api is the schedule suggestion proxy. It sits between the
// app and the Anthropic API so the API key stays server-side and usage
// is rate limited per client.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"squeaky/internal/suggest"
)

// Generator produces chore suggestions for a prompt. Satisfied by
// suggest.AnthropicClient.
type Generator interface {
	GenerateSchedule(ctx context.Context, prompt string) ([]suggest.Suggestion, error)
}

type Server struct {
	generator Generator
	limiter   *rateLimiter
	router    *gin.Engine
}

func NewServer(generator Generator) *Server {
	router := gin.Default()

	s := &Server{
		generator: generator,
		limiter:   newRateLimiter(rateLimitMax, rateLimitWindow),
		router:    router,
	}

	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/generate-schedule", s.handleGenerateSchedule)
	}

	return s
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleGenerateSchedule(c *gin.Context) {
	if !s.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := suggest.ValidatePrompt(req.Prompt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a prompt (max 2000 characters)."})
		return
	}

	tasks, err := s.generator.GenerateSchedule(c.Request.Context(), req.Prompt)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
	case errors.Is(err, suggest.ErrMalformedResponse):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule. Please try again."})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI service temporarily unavailable. Please try again."})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

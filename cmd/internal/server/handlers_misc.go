package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) HomeHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to the BuildPrice API",
	})
}

func (s *Server) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) getStatsHandler(c *gin.Context) {
	logger := s.requestLogger(c, "getStatsHandler")

	stats, err := s.catalogService.GetStats(c.Request.Context())
	if err != nil {
		logger.Errorf("Ошибка при получении статистики каталога: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(errCatalogUnavailable))
		return
	}

	c.JSON(http.StatusOK, stats)
}

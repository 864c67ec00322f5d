package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware берет X-Request-ID клиента, если это uuid, иначе выдает новый.
// Идентификатор возвращается в ответе и доступен хендлерам через c.GetString("request_id").
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLoggerMiddleware пишет одну строку на запрос вместо стандартного логгера gin.
func RequestLoggerMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			requestIDKey: c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(started).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}

// requestLogger - логгер хендлера с request_id.
func (s *Server) requestLogger(c *gin.Context, handler string) *logging.Logger {
	return &logging.Logger{Entry: s.logger.WithFields(logrus.Fields{
		"handler":    handler,
		requestIDKey: c.GetString(requestIDKey),
	})}
}

package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/export"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

// Клиенту не отдаются детали ошибки каталога, они только в логе
const quoteFailedMessage = "failed to calculate quote"

// calculateQuoteHandler - POST /api/v1/quotes/calculate
func (s *Server) calculateQuoteHandler(c *gin.Context) {
	logger := s.requestLogger(c, "calculateQuoteHandler")

	result, ok := s.calculate(c, logger)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newQuoteResponse(result))
}

// exportQuoteHandler - POST /api/v1/quotes/export?format=xlsx|pdf
// Тело такое же, как у calculate; ответ - файл с тремя вариантами.
func (s *Server) exportQuoteHandler(c *gin.Context) {
	logger := s.requestLogger(c, "exportQuoteHandler")

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, ok := s.calculate(c, logger)
	if !ok {
		return
	}

	now := time.Now()
	// Пишем в буфер: при ошибке рендера заголовки еще не отправлены
	var buf bytes.Buffer
	if err := export.Write(&buf, format, result, export.Meta{GeneratedAt: now}); err != nil {
		logger.Errorf("Ошибка экспорта котировки в %s: %v", format, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export quote"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName(now)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// calculate разбирает тело и считает котировку. При ошибке ответ уже записан.
func (s *Server) calculate(c *gin.Context, logger *logging.Logger) (quote.QuoteResult, bool) {
	var req api_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("Некорректное тело запроса: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid request body: %w", err)))
		return quote.QuoteResult{}, false
	}

	result, err := s.pricingService.CalculateQuote(c.Request.Context(), req)
	if err != nil {
		var validationErr *apierrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return quote.QuoteResult{}, false
		}

		logger.Errorf("Ошибка расчета котировки: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": quoteFailedMessage})
		return quote.QuoteResult{}, false
	}

	return result, true
}

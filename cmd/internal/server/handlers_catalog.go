package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/api_models"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

// listMaterialsHandler - GET /api/v1/materials, источник для конструктора котировок
func (s *Server) listMaterialsHandler(c *gin.Context) {
	logger := s.requestLogger(c, "listMaterialsHandler")

	materials, err := s.catalogService.ListMaterials(c.Request.Context())
	if err != nil {
		logger.Errorf("Ошибка ListMaterials: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(errCatalogUnavailable))
		return
	}

	// Пустой массив вместо null, фронт не должен ломаться на пустом каталоге
	if materials == nil {
		materials = make([]api_models.MaterialResponse, 0)
	}
	c.JSON(http.StatusOK, materials)
}

// listSuppliersHandler - GET /api/v1/suppliers
func (s *Server) listSuppliersHandler(c *gin.Context) {
	logger := s.requestLogger(c, "listSuppliersHandler")

	suppliers, err := s.catalogService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Errorf("Ошибка ListSuppliers: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(errCatalogUnavailable))
		return
	}

	if suppliers == nil {
		suppliers = make([]api_models.SupplierResponse, 0)
	}
	c.JSON(http.StatusOK, suppliers)
}

// listPricesHandler - GET /api/v1/prices?category=&search=&limit=
func (s *Server) listPricesHandler(c *gin.Context) {
	logger := s.requestLogger(c, "listPricesHandler")

	var filter api_models.PriceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(errors.New("limit must be an integer")))
		return
	}

	prices, err := s.catalogService.GetLatestPrices(c.Request.Context(), filter)
	if err != nil {
		s.respondCatalogError(c, logger, "GetLatestPrices", err)
		return
	}

	if prices == nil {
		prices = make([]api_models.PriceResponse, 0)
	}
	c.JSON(http.StatusOK, prices)
}

// dashboardHandler - GET /api/v1/dashboard: статистика, последние цены и категории
func (s *Server) dashboardHandler(c *gin.Context) {
	logger := s.requestLogger(c, "dashboardHandler")

	var filter api_models.PriceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(errors.New("limit must be an integer")))
		return
	}

	dashboard, err := s.catalogService.GetDashboard(c.Request.Context(), filter)
	if err != nil {
		s.respondCatalogError(c, logger, "GetDashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// errCatalogUnavailable - тело ответа 500: текст ошибки БД остается только в логе.
var errCatalogUnavailable = errors.New("failed to load catalog")

// respondCatalogError: ValidationError -> 400, остальное -> 500 с общим текстом.
func (s *Server) respondCatalogError(c *gin.Context, logger *logging.Logger, op string, err error) {
	logger.Errorf("Ошибка %s: %v", op, err)

	var validationErr *apierrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse(errCatalogUnavailable))
}

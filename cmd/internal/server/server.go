package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/config"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/metrics"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/buildprice-go/cmd/internal/services/pricing"
	"github.com/zhukovvlad/buildprice-go/cmd/pkg/logging"
)

type Server struct {
	router         *gin.Engine
	logger         *logging.Logger
	catalogService *catalog.CatalogService
	pricingService *pricing.PricingService
}

// NewServer собирает роутер. metrics может быть nil, тогда /metrics не регистрируется.
func NewServer(
	logger *logging.Logger,
	catalogService *catalog.CatalogService,
	pricingService *pricing.PricingService,
	m *metrics.Registry,
	cfg *config.Config,
) *Server {
	server := &Server{
		logger:         logger,
		catalogService: catalogService,
		pricingService: pricingService,
	}

	if cfg.IsDebug == nil || !*cfg.IsDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware(logger))

	// Настройка CORS
	corsConfig := cors.DefaultConfig()
	if cfg.IsDebug != nil && *cfg.IsDebug {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
		}
	} else if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		// В production origins должны быть явно настроены
		logger.Warn("CORS allowed_origins not configured in production - cross-origin requests are rejected")
		// cors.New паникует на пустом списке без AllowOriginFunc
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition", requestIDHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/home", server.HomeHandler)
	router.GET("/health", server.HealthHandler)
	router.GET("/api/stats", server.getStatsHandler)
	if m != nil && cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// --- API V1 ---
	v1 := router.Group("/api/v1")
	{
		v1.GET("/materials", server.listMaterialsHandler)
		v1.GET("/suppliers", server.listSuppliersHandler)
		v1.GET("/prices", server.listPricesHandler)
		v1.GET("/dashboard", server.dashboardHandler)

		// Расчет ходит в каталог на каждый запрос, поэтому ограничен отдельно
		quotes := v1.Group("/quotes")
		quotes.Use(RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		{
			quotes.POST("/calculate", server.calculateQuoteHandler)
			quotes.POST("/export", server.exportQuoteHandler)
		}
	}

	server.router = router
	return server
}

func (s *Server) Start(address string) error {
	return s.router.Run(address)
}

// Handler отдает роутер для http.Server и тестов.
func (s *Server) Handler() http.Handler {
	return s.router
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

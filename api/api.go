package api

import (
	"database/sql"
	"etfbuilder/internal/logger"
	"etfbuilder/internal/metrics"
	"etfbuilder/internal/service"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ApiHandler struct {
	// nil unless the catalog is backed by postgres
	Db               *sql.DB
	PortfolioService service.PortfolioService
	Metrics          *metrics.Registry
	Gatherer         prometheus.Gatherer
	Logger           *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to etfbuilder"})
	})
	router.GET("/assets", m.listAssets)
	router.POST("/portfolio/calculate", m.calculatePortfolio)
	if m.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Errorw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	lg := m.Logger
	if lg == nil {
		lg = zap.S()
	}
	lg = lg.With("requestID", uuid.NewString())
	c.Set(logger.ContextKey, lg)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), lg))

	start := time.Now().UTC()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()

	if m.Metrics != nil {
		m.Metrics.HttpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
	}
	lg.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", route,
		"status", status,
		"ip", c.ClientIP(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

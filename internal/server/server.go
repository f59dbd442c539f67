package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/Dhanush8/workers-assignment/internal/api/v1"
	"github.com/Dhanush8/workers-assignment/internal/config"
	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/metrics"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
	"github.com/Dhanush8/workers-assignment/internal/service/store"
)

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	store    *store.MemoryStore
	v1       *v1.Handler
	registry *prometheus.Registry
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	memStore := store.NewMemoryStore(assigner.Policy{DoubleBookOffset: cfg.Policy.DoubleBookOffset})

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	s := &Server{
		router:   gin.New(),
		store:    memStore,
		v1:       v1.NewHandler(memStore, cfg.Excel.Sheet),
		registry: registry,
	}

	s.setupRoutes()

	return s
}

// requestLogger 使用 zerolog 记录请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logx.Log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logx.Log.Error()
		}
		event.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestLogger())

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	s.router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// Handler 返回底层 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetArchiveDir 设置导出结果归档目录
func (s *Server) SetArchiveDir(dir string) {
	s.v1.SetArchiveDir(dir)
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-extractor/internal/api/handlers/health"
	recipeHandler "recipe-extractor/internal/api/handlers/recipe"
	"recipe-extractor/internal/api/middleware"
	"recipe-extractor/internal/core/ai"
	"recipe-extractor/internal/core/ai/cache"
	"recipe-extractor/internal/core/ai/openrouter"
	"recipe-extractor/internal/core/ai/service"
	"recipe-extractor/internal/core/extract"
	"recipe-extractor/internal/core/scrape"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置（抓取加 AI 推論可能偏慢）
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，請求只含網址與選項
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 請求去重與限流
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("queue_workers", cfg.Queue.Workers),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化 AI 服務
	provider := openrouter.NewClient(cfg)
	aiService, err := service.NewService(cfg, provider, cacheManager)
	if err != nil || aiService == nil {
		common.LogError("Failed to initialize AI service", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	// 初始化結果快取（Redis 不可用時降級為不快取）
	var resultCache *cache.Service
	if cfg.Cache.Enabled && cfg.Cache.RedisAddr != "" {
		resultCache, err = cache.NewService(&cfg.Cache)
		if err != nil {
			common.LogWarn("Redis 結果快取不可用，改為直接提取", zap.Error(err))
			resultCache = nil
		}
	}

	// 初始化提取服務
	fetcher := scrape.NewFetcher(&cfg.Fetch)
	extractor := ai.NewExtractor(cfg, aiService)
	extractService := extract.NewService(cfg, fetcher, extractor, resultCache)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置與服務，健康檢查會用到
		c.Set("config", cfg)
		c.Set("ai_service", aiService)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(extractService, cfg)

		recipeGroup := api.Group("/recipe")
		{
			// 從網址提取食譜與購物清單
			recipeGroup.POST("/extract", handler.HandleExtract)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("result_cache_enabled", resultCache != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

package api

import (
	"context"
	"net/http"
	"time"

	"shopping-list-api/internal/api/handlers/health"
	listHandler "shopping-list-api/internal/api/handlers/shoppinglist"
	"shopping-list-api/internal/api/middleware"
	"shopping-list-api/internal/core/cache"
	"shopping-list-api/internal/core/mealplan"
	listService "shopping-list-api/internal/core/shoppinglist"
	"shopping-list-api/internal/core/shoppinglist/category"
	"shopping-list-api/internal/infrastructure/config"
	"shopping-list-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (2MB)，清單聚合請求都是純 JSON
	maxBodySize = 2 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager, planCache *cache.Service) (*gin.Engine, error) {
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

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("upstream_enabled", cfg.Upstream.Enabled),
	)

	// 初始化聚合器（內建詞彙表與分區查表）
	aggregator := listService.NewAggregator(
		listService.DefaultCanonicalizer(),
		category.Categorize,
		category.AisleOrder,
	)

	// 初始化上游餐點規劃客戶端
	planClient := mealplan.NewClient(cfg, planCache)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置與快取，供健康檢查使用
		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)

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
				"code":  common.ErrCodeRequestTimeout,
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
		handler := listHandler.NewHandler(aggregator, cacheManager, planClient)

		// 註冊購物清單相關路由
		listGroup := api.Group("/shopping-list")
		{
			// 聚合多份餐點的食材
			listGroup.POST("/aggregate", handler.HandleAggregate)

			// 依餐點規劃編號產生清單
			listGroup.POST("/from-plan", handler.HandleFromPlan)

			// 解析自由文字數量
			listGroup.POST("/parse-amount", handler.HandleParseAmount)

			// 純文字渲染（複製到剪貼簿用）
			listGroup.POST("/format", handler.HandleFormat)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

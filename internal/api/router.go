package api

import (
	"time"

	healthHandler "chefs-thesaurus/internal/api/handlers/health"
	storeHandler "chefs-thesaurus/internal/api/handlers/store"
	substitutionHandler "chefs-thesaurus/internal/api/handlers/substitution"
	"chefs-thesaurus/internal/api/middleware"
	"chefs-thesaurus/internal/core/subcache"
	"chefs-thesaurus/internal/core/substitution"
	"chefs-thesaurus/internal/infrastructure/config"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求體大小限制 (64KB)：所有請求都是小型 JSON
const maxBodySize = 64 << 10

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, catalog *substitution.Catalog, cacheManager *subcache.Manager) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("catalog_entries", catalog.Len()),
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
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
	if cfg.DedupWindow > 0 {
		router.Use(middleware.Deduplication(cfg))
	}

	// 初始化引擎與處理器：目錄以建構參數注入，不走隱藏全域
	engine := substitution.NewEngine(catalog)
	subHandler := substitutionHandler.NewHandler(engine, cacheManager)
	hHandler := healthHandler.NewHandler(cfg, catalog)

	// 健康檢查路由
	router.GET("/health", hHandler.HealthCheck)
	router.GET("/ready", hHandler.ReadinessCheck)
	router.GET("/live", hHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		substitutionGroup := api.Group("/substitution")
		{
			// 查詢替代品（可附帶量與單位換算）
			substitutionGroup.POST("/search", subHandler.HandleSearch)

			// 查詢替代影響摘要
			substitutionGroup.POST("/effects", subHandler.HandleEffects)
		}

		storeGroup := api.Group("/store")
		{
			// 附近商店（佔位資料）
			storeGroup.POST("/search", storeHandler.HandleSearch)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Bool("cache_enabled", cacheManager.Enabled()),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router
}

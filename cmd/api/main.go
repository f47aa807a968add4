package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefs-thesaurus/internal/api"
	"chefs-thesaurus/internal/core/subcache"
	"chefs-thesaurus/internal/core/substitution"
	"chefs-thesaurus/internal/infrastructure/config"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 載入替代品目錄：資料錯誤直接拒絕啟動
	var catalog *substitution.Catalog
	if cfg.Catalog.DataPath != "" {
		catalog, err = substitution.LoadFile(cfg.Catalog.DataPath)
	} else {
		catalog, err = substitution.LoadEmbedded()
	}
	if err != nil {
		common.LogFatal("Failed to load substitution catalog", zap.Error(err))
	}

	volumeCount, unitCount := catalog.Stats()
	common.LogInfo("目錄載入完成",
		zap.Int("entries", catalog.Len()),
		zap.Int("volume_mappings", volumeCount),
		zap.Int("unit_mappings", unitCount),
		zap.String("data_path", cfg.Catalog.DataPath),
	)

	// 初始化查詢結果緩存
	cacheManager, err := subcache.NewManager(&cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache manager", zap.Error(err))
	}
	defer cacheManager.Close()

	// 設置路由
	router := api.SetupRouter(cfg, catalog, cacheManager)

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

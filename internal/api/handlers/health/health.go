package health

import (
	"net/http"
	"runtime"
	"time"

	"chefs-thesaurus/internal/core/substitution"
	"chefs-thesaurus/internal/infrastructure/config"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalog   CatalogStatus          `json:"catalog"`
}

// CatalogStatus 目錄載入狀態
type CatalogStatus struct {
	Entries        int `json:"entries"`
	VolumeMappings int `json:"volume_mappings"`
	UnitMappings   int `json:"unit_mappings"`
}

// Handler 健康檢查處理器
type Handler struct {
	cfg     *config.Config
	catalog *substitution.Catalog
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, catalog *substitution.Catalog) *Handler {
	return &Handler{cfg: cfg, catalog: catalog}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	volumeCount, unitCount := h.catalog.Stats()

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Catalog: CatalogStatus{
			Entries:        h.catalog.Len(),
			VolumeMappings: volumeCount,
			UnitMappings:   unitCount,
		},
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器
// 目錄在啟動時載入失敗即不會開始服務，載入成功就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.catalog == nil || h.catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

package substitution

import (
	"net/http"

	"chefs-thesaurus/internal/core/subcache"
	subst "chefs-thesaurus/internal/core/substitution"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 替代查詢處理器
type Handler struct {
	engine *subst.Engine
	cache  *subcache.Manager
}

// NewHandler 創建替代查詢處理器
func NewHandler(engine *subst.Engine, cache *subcache.Manager) *Handler {
	return &Handler{
		engine: engine,
		cache:  cache,
	}
}

// SearchRequest 查詢替代品請求
type SearchRequest struct {
	Ingredient string   `json:"ingredient" binding:"required"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	Dish       string   `json:"dish,omitempty"`
}

// EffectsRequest 查詢替代影響請求
type EffectsRequest struct {
	Base       string `json:"base" binding:"required"`
	Substitute string `json:"substitute" binding:"required"`
	Dish       string `json:"dish,omitempty"`
}

// HandleSearch 處理替代品查詢
// 缺少必填欄位是傳輸層的用戶端錯誤（400）；
// 「食材不支援」是資料結果，一律以 200 回傳 supported=false
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	// 解析請求
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid search request",
			zap.Error(err),
			zap.String("request_id", requestID))
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "ingredient is required",
		})
		return
	}

	// 數量必須為非負數
	if req.Quantity != nil && *req.Quantity < 0 {
		common.LogWarn("Negative quantity rejected",
			zap.Float64("quantity", *req.Quantity),
			zap.String("request_id", requestID))
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    "INVALID_QUANTITY",
			Message: "quantity must be non-negative",
		})
		return
	}

	args := subst.SearchArgs{
		Ingredient: req.Ingredient,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Dish:       req.Dish,
	}

	// 先查緩存
	if cached, ok := h.cache.GetSearch(c.Request.Context(), args); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := h.engine.SearchSubstitutions(args)

	common.LogInfo("替代品查詢",
		zap.String("ingredient", req.Ingredient),
		zap.Bool("supported", result.Supported),
		zap.String("request_id", requestID),
	)

	h.cache.SetSearch(c.Request.Context(), args, result)
	c.JSON(http.StatusOK, result)
}

// HandleEffects 處理替代影響查詢
func (h *Handler) HandleEffects(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	// 解析請求
	var req EffectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid effects request",
			zap.Error(err),
			zap.String("request_id", requestID))
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "base and substitute are required",
		})
		return
	}

	args := subst.EffectsArgs{
		Base:       req.Base,
		Substitute: req.Substitute,
		Dish:       req.Dish,
	}

	// 先查緩存
	if cached, ok := h.cache.GetEffects(c.Request.Context(), args); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := h.engine.DescribeEffects(args)

	common.LogInfo("替代影響查詢",
		zap.String("base", req.Base),
		zap.String("substitute", req.Substitute),
		zap.Bool("supported", result.Supported),
		zap.String("request_id", requestID),
	)

	h.cache.SetEffects(c.Request.Context(), args, result)
	c.JSON(http.StatusOK, result)
}

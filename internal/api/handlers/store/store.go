package store

import (
	"net/http"

	corestore "chefs-thesaurus/internal/core/store"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchRequest 商店查詢請求
type SearchRequest struct {
	Query   string   `json:"query" binding:"required"`
	Lat     *float64 `json:"lat" binding:"required"`
	Lon     *float64 `json:"lon" binding:"required"`
	RadiusM int      `json:"radius_m,omitempty"`
}

// SearchResponse 商店查詢響應
type SearchResponse struct {
	Stores []corestore.Store `json:"stores"`
}

// HandleSearch 處理附近商店查詢（佔位資料）
func HandleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid store request", zap.Error(err))
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "query, lat and lon are required",
		})
		return
	}

	stores := corestore.Lookup(corestore.LookupArgs{
		Query:   req.Query,
		Lat:     *req.Lat,
		Lon:     *req.Lon,
		RadiusM: req.RadiusM,
	})

	c.JSON(http.StatusOK, SearchResponse{Stores: stores})
}

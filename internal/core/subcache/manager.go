package subcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"chefs-thesaurus/internal/core/substitution"
	"chefs-thesaurus/internal/infrastructure/config"
	"chefs-thesaurus/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Manager 查詢結果緩存（Redis）
// 只緩存對外回應，替代資料本身不可變、永遠不寫回
// 關閉或連不上 Redis 時安靜退化為直接查詢
type Manager struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

// NewManager 建立緩存管理器
// 緩存關閉時回傳停用的 Manager；連線失敗視為致命錯誤交由呼叫端處理
func NewManager(cfg *config.CacheConfig) (*Manager, error) {
	if cfg == nil || !cfg.Enabled {
		return &Manager{cfg: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Manager{
		client: client,
		cfg:    cfg,
	}, nil
}

// Enabled 緩存是否啟用
func (m *Manager) Enabled() bool {
	return m != nil && m.cfg != nil && m.cfg.Enabled && m.client != nil
}

// Close 關閉連線
func (m *Manager) Close() {
	if m != nil && m.client != nil {
		_ = m.client.Close()
	}
}

// searchKey 由查詢參數組出緩存鍵
func searchKey(args substitution.SearchArgs) string {
	qty := "-"
	if args.Quantity != nil {
		qty = fmt.Sprintf("%g", *args.Quantity)
	}
	parts := []string{
		"sub:search",
		common.NormalizeName(args.Ingredient),
		qty,
		common.NormalizeName(args.Unit),
		common.NormalizeName(args.Dish),
	}
	return strings.Join(parts, ":")
}

// effectsKey 由影響查詢參數組出緩存鍵
func effectsKey(args substitution.EffectsArgs) string {
	parts := []string{
		"sub:effects",
		common.NormalizeName(args.Base),
		common.NormalizeName(args.Substitute),
		common.NormalizeName(args.Dish),
	}
	return strings.Join(parts, ":")
}

// GetSearch 取出查詢結果緩存
func (m *Manager) GetSearch(ctx context.Context, args substitution.SearchArgs) (*substitution.SearchResult, bool) {
	if !m.Enabled() {
		return nil, false
	}

	key := searchKey(args)
	data, err := m.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("緩存讀取失敗", zap.Error(err), zap.String("key", key))
		}
		common.LogCacheMiss("search", key)
		return nil, false
	}

	var res substitution.SearchResult
	if err := json.Unmarshal(data, &res); err != nil {
		common.LogWarn("緩存資料解析失敗", zap.Error(err), zap.String("key", key))
		return nil, false
	}

	common.LogCacheHit("search", key)
	return &res, true
}

// SetSearch 寫入查詢結果緩存
func (m *Manager) SetSearch(ctx context.Context, args substitution.SearchArgs, res substitution.SearchResult) {
	if !m.Enabled() {
		return
	}

	data, err := json.Marshal(res)
	if err != nil {
		common.LogWarn("緩存序列化失敗", zap.Error(err))
		return
	}
	if err := m.client.Set(ctx, searchKey(args), data, m.cfg.TTL).Err(); err != nil {
		common.LogWarn("緩存寫入失敗", zap.Error(err))
	}
}

// GetEffects 取出影響摘要緩存
func (m *Manager) GetEffects(ctx context.Context, args substitution.EffectsArgs) (*substitution.EffectsResult, bool) {
	if !m.Enabled() {
		return nil, false
	}

	key := effectsKey(args)
	data, err := m.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("緩存讀取失敗", zap.Error(err), zap.String("key", key))
		}
		common.LogCacheMiss("effects", key)
		return nil, false
	}

	var res substitution.EffectsResult
	if err := json.Unmarshal(data, &res); err != nil {
		common.LogWarn("緩存資料解析失敗", zap.Error(err), zap.String("key", key))
		return nil, false
	}

	common.LogCacheHit("effects", key)
	return &res, true
}

// SetEffects 寫入影響摘要緩存
func (m *Manager) SetEffects(ctx context.Context, args substitution.EffectsArgs, res substitution.EffectsResult) {
	if !m.Enabled() {
		return
	}

	data, err := json.Marshal(res)
	if err != nil {
		common.LogWarn("緩存序列化失敗", zap.Error(err))
		return
	}
	if err := m.client.Set(ctx, effectsKey(args), data, m.cfg.TTL).Err(); err != nil {
		common.LogWarn("緩存寫入失敗", zap.Error(err))
	}
}

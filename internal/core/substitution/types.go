package substitution

import (
	"chefs-thesaurus/internal/core/units"
)

// Basis 替代比例的計算基準，封閉型別：只有 volume 與 unit 兩種
// 新增基準時 engine.go 的分派 switch 必須同步更新
type Basis string

const (
	BasisVolume Basis = "volume" // 以容量互換，經毫升中介換算
	BasisUnit   Basis = "unit"   // 以個數互換，直接乘上倍率
)

// Valid 檢查是否為已知基準
func (b Basis) Valid() bool {
	return b == BasisVolume || b == BasisUnit
}

// RatioModeMultiplier Ratio.Mode 目前唯一合法值
const RatioModeMultiplier = "multiplier"

// Ratio 替代比例
type Ratio struct {
	Mode  string  `json:"mode"`
	Value float64 `json:"value"`
	Basis Basis   `json:"basis"`
}

// Alternative 一個候選替代品
// Tips/Tags/Allergens 僅供呈現，換算邏輯不使用
type Alternative struct {
	Substitute string   `json:"substitute"`
	Ratio      Ratio    `json:"ratio"`
	Notes      string   `json:"notes,omitempty"`
	Tips       []string `json:"tips,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Allergens  []string `json:"allergens,omitempty"`
}

// Entry 單一基底食材的所有替代資料
// Alternatives 順序有意義：index 0 為首選
type Entry struct {
	Base         string        `json:"base"`
	Synonyms     []string      `json:"synonyms,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// SearchArgs 查詢替代品的參數
type SearchArgs struct {
	Ingredient string
	Quantity   *float64
	Unit       string
	Dish       string
}

// AltOption 次要替代選項（只含名稱與倍率，不做換算）
type AltOption struct {
	Substitute      string  `json:"substitute"`
	RatioMultiplier float64 `json:"ratio_multiplier"`
}

// SearchResult 查詢結果
// Supported=false 是預期中的資料結果，不是錯誤
type SearchResult struct {
	Supported  bool        `json:"supported"`
	Base       string      `json:"base,omitempty"`
	Substitute string      `json:"substitute,omitempty"`
	Quantity   *float64    `json:"quantity,omitempty"`
	Unit       units.Unit  `json:"unit,omitempty"`
	Basis      Basis       `json:"basis,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Alts       []AltOption `json:"alts,omitempty"`
	Message    string      `json:"message,omitempty"`
	Examples   []string    `json:"examples,omitempty"`
}

// EffectsArgs 查詢替代影響的參數
type EffectsArgs struct {
	Base       string
	Substitute string
	Dish       string
}

// EffectsResult 替代影響摘要
type EffectsResult struct {
	Supported bool   `json:"supported"`
	Summary   string `json:"summary"`
}

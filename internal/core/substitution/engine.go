package substitution

import (
	"chefs-thesaurus/internal/core/canonical"
	"chefs-thesaurus/internal/core/units"
)

// 所有不支援情境共用同一訊息：呼叫端無法（也不需要）區分
// 「不認識的食材」與「沒有替代資料」
const unsupportedMessage = "not supported"

// Engine 替代查詢引擎
// 純函數式：不持有可變狀態，目錄在建構時注入
type Engine struct {
	catalog *Catalog
}

// NewEngine 建立引擎
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// unsupported 組出統一的不支援結果
func unsupported() SearchResult {
	return SearchResult{
		Supported: false,
		Message:   unsupportedMessage,
		Examples:  canonical.Examples(),
	}
}

// altOptions 將次要替代品（index >= 1）轉為輸出選項
func altOptions(alternatives []Alternative) []AltOption {
	if len(alternatives) <= 1 {
		return nil
	}
	out := make([]AltOption, 0, len(alternatives)-1)
	for _, a := range alternatives[1:] {
		out = append(out, AltOption{
			Substitute:      a.Substitute,
			RatioMultiplier: a.Ratio.Value,
		})
	}
	return out
}

// SearchSubstitutions 查詢替代品，並在有量與單位時換算等量
func (e *Engine) SearchSubstitutions(args SearchArgs) SearchResult {
	// 1. 解析食材名稱
	base, ok := canonical.Resolve(args.Ingredient)
	if !ok {
		return unsupported()
	}

	// 2. 查目錄
	entry, ok := e.catalog.Lookup(base)
	if !ok || len(entry.Alternatives) == 0 {
		return unsupported()
	}

	// 3. 首選替代品為第一筆，其餘列入 alts
	primary := entry.Alternatives[0]

	// 4. 沒有量或單位時只回傳替代品身分，不做換算
	if args.Quantity == nil || args.Unit == "" {
		return SearchResult{
			Supported:  true,
			Base:       entry.Base,
			Substitute: primary.Substitute,
			Basis:      primary.Ratio.Basis,
			Notes:      primary.Notes,
			Alts:       altOptions(entry.Alternatives),
		}
	}

	// 5. 正規化單位；帶了數量卻配上不認識的單位，不能靜默忽略
	unit, ok := units.Canon(args.Unit)
	if !ok {
		return unsupported()
	}

	// 6. 依基準分派換算
	var outQty float64
	switch primary.Ratio.Basis {
	case BasisVolume:
		// 質量單位無法與容量互換，明確拒絕而不是算出錯的數字
		if !units.IsVolume(unit) {
			return unsupported()
		}
		baseMl, err := units.ToMilliliters(*args.Quantity, unit)
		if err != nil {
			return unsupported()
		}
		converted, err := units.FromMilliliters(baseMl*primary.Ratio.Value, unit)
		if err != nil {
			return unsupported()
		}
		outQty = units.Round(converted, 2)
	case BasisUnit:
		// 個數替代直接乘倍率；單位照呼叫端給的回傳
		outQty = units.Round(*args.Quantity*primary.Ratio.Value, 3)
	default:
		return unsupported()
	}

	// 7. 成功路徑帶上備註與次要替代清單
	return SearchResult{
		Supported:  true,
		Base:       entry.Base,
		Substitute: primary.Substitute,
		Quantity:   &outQty,
		Unit:       unit,
		Basis:      primary.Ratio.Basis,
		Notes:      primary.Notes,
		Alts:       altOptions(entry.Alternatives),
	}
}

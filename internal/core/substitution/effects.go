package substitution

import (
	"strings"

	"chefs-thesaurus/internal/core/canonical"
)

// 沒有備註可用時的通用摘要
const genericEffectSummary = "Comparable outcome for most dishes."

// effectOverride 特例覆寫：目錄備註對少數組合不夠精確，
// 以 (base, substitute 條件) 為鍵的資料表呈現，新增特例不需改動控制流程
type effectOverride struct {
	base    string
	matches func(substitute string) bool
	summary string
}

var effectOverrides = []effectOverride{
	{
		base:    "heavy cream",
		matches: func(sub string) bool { return sub == "evaporated milk" },
		summary: "+1 tbsp butter per cup for richness.",
	},
	{
		base:    "mirin",
		matches: func(sub string) bool { return strings.Contains(sub, "sake") },
		summary: "Add sugar to approximate sweetness.",
	},
}

// DescribeEffects 描述以 substitute 取代 base 對成品的影響
// dish 參數目前保留，尚未用於調整摘要
func (e *Engine) DescribeEffects(args EffectsArgs) EffectsResult {
	base, ok := canonical.Resolve(args.Base)
	if !ok {
		return EffectsResult{Supported: false, Summary: unsupportedMessage}
	}
	sub, ok := canonical.Resolve(args.Substitute)
	if !ok {
		return EffectsResult{Supported: false, Summary: unsupportedMessage}
	}

	entry, ok := e.catalog.Lookup(base)
	if !ok {
		return EffectsResult{Supported: false, Summary: unsupportedMessage}
	}

	// 特例覆寫優先於目錄備註
	for _, o := range effectOverrides {
		if o.base == base && o.matches(sub) {
			return EffectsResult{Supported: true, Summary: o.summary}
		}
	}

	// 替代品名稱是自由文字，用不分大小寫的子字串比對定位；
	// 依清單順序取第一個命中（例如 "evaporated milk (undiluted)" 可命中 "evaporated milk"）
	summary := genericEffectSummary
	for _, alt := range entry.Alternatives {
		if strings.Contains(strings.ToLower(alt.Substitute), sub) {
			if alt.Notes != "" {
				summary = alt.Notes
			}
			break
		}
	}

	return EffectsResult{Supported: true, Summary: summary}
}

package canonical

import (
	"chefs-thesaurus/internal/pkg/common"
)

// 固定食材白名單：Resolve 只會回傳這裡面的值
var allowlist = []string{
	"sour cream",
	"greek yogurt (full-fat)",
	"crème fraîche",
	"butter",
	"neutral oil",
	"garlic clove",
	"garlic powder",
	"fresh basil",
	"dried basil",
	"buttermilk",
	"plain yogurt (thinned)",
	"heavy cream",
	"evaporated milk",
	"brown sugar",
	"white sugar",
	"rice vinegar",
	"apple cider vinegar",
	"shaoxing wine",
	"dry sherry",
	"mirin",
	"sake",
	"fresh ginger",
	"ground ginger",
	"cream cheese",
	"strained greek yogurt",
	"eggs",
	"all-purpose flour",
	"sugar",
	"milk",
	"fresh herbs",
	"wine",
	"tomato paste",
	"cornstarch",
	"baking powder",
	"lemon juice",
}

// 同義詞表：每個目標都必須在白名單內，不允許同義詞鏈
var synonyms = map[string]string{
	// sour cream 系列
	"soured cream": "sour cream",
	"crema agria":  "sour cream",
	// butter 系列
	"unsalted butter": "butter",
	"salted butter":   "butter",
	// greek yogurt
	"greek yoghurt": "greek yogurt (full-fat)",
	// sugar（糖粉等細項併入 white sugar，備註由目錄提供）
	"powdered sugar":      "white sugar",
	"confectioners sugar": "white sugar",
	"caster sugar":        "white sugar",
	// vinegar
	"acv": "apple cider vinegar",
	// ginger
	"fresh ginger root": "fresh ginger",
	// eggs
	"egg":        "eggs",
	"whole eggs": "eggs",
}

var allowSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(allowlist))
	for _, name := range allowlist {
		set[name] = struct{}{}
	}
	return set
}()

// Resolve 將任意輸入字串解析為標準食材名稱
// 先比對白名單本身，再查同義詞表；只做正規化後的完全比對，不做模糊匹配
func Resolve(input string) (string, bool) {
	key := common.NormalizeName(input)
	if _, ok := allowSet[key]; ok {
		return key, true
	}
	if target, ok := synonyms[key]; ok {
		return target, true
	}
	return "", false
}

// Examples 固定的示範食材，解析失敗時回給呼叫端當提示
// 順序固定，供快照測試使用
func Examples() []string {
	return []string{
		"sour cream",
		"butter",
		"garlic clove",
		"fresh basil",
		"buttermilk",
	}
}

// Allowlist 回傳完整白名單副本
func Allowlist() []string {
	out := make([]string, len(allowlist))
	copy(out, allowlist)
	return out
}

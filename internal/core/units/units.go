package units

import (
	"fmt"
	"math"
	"strings"
)

// Unit 正規化後的單位
type Unit string

const (
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	Cup        Unit = "cup"
	Milliliter Unit = "ml"
	Gram       Unit = "g"
	Count      Unit = "unit"
)

// 毫升換算常數
const (
	mlPerTeaspoon   = 4.92892
	mlPerTablespoon = 14.7868
	mlPerCup        = 236.588
)

// 單位別名表（鍵為小寫）
var unitAliases = map[string]Unit{
	"tsp":       Teaspoon,
	"teaspoon":  Teaspoon,
	"teaspoons": Teaspoon,

	"tbsp":        Tablespoon,
	"tablespoon":  Tablespoon,
	"tablespoons": Tablespoon,

	"cup":  Cup,
	"cups": Cup,

	"ml":          Milliliter,
	"milliliter":  Milliliter,
	"milliliters": Milliliter,

	"g":     Gram,
	"gram":  Gram,
	"grams": Gram,

	"unit":   Count,
	"units":  Count,
	"piece":  Count,
	"pieces": Count,
}

// Canon 正規化單位字串；無法識別時回傳 false，不回傳錯誤
func Canon(input string) (Unit, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(input))]
	return u, ok
}

// IsVolume 是否為容量單位
func IsVolume(u Unit) bool {
	return u == Teaspoon || u == Tablespoon || u == Cup || u == Milliliter
}

// IsMass 是否為質量單位
func IsMass(u Unit) bool {
	return u == Gram
}

// IsCount 是否為計數單位
func IsCount(u Unit) bool {
	return u == Count
}

// ToMilliliters 將容量單位換算為毫升
// 非容量單位屬於呼叫端錯誤：引擎在基準分派時就該擋下
func ToMilliliters(quantity float64, u Unit) (float64, error) {
	switch u {
	case Milliliter:
		return quantity, nil
	case Teaspoon:
		return quantity * mlPerTeaspoon, nil
	case Tablespoon:
		return quantity * mlPerTablespoon, nil
	case Cup:
		return quantity * mlPerCup, nil
	default:
		return 0, fmt.Errorf("ToMilliliters only supports volume units; got %q", u)
	}
}

// FromMilliliters 將毫升換算回目標容量單位
func FromMilliliters(ml float64, target Unit) (float64, error) {
	switch target {
	case Milliliter:
		return ml, nil
	case Teaspoon:
		return ml / mlPerTeaspoon, nil
	case Tablespoon:
		return ml / mlPerTablespoon, nil
	case Cup:
		return ml / mlPerCup, nil
	default:
		return 0, fmt.Errorf("FromMilliliters only supports volume units; got %q", target)
	}
}

// Round 四捨五入到指定小數位（half away from zero）
// 所有對外輸出的計算量都必須先經過這裡，避免浮點雜訊
func Round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

package substitution

import (
	"testing"

	"chefs-thesaurus/internal/core/units"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v float64) *float64 { return &v }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := LoadEmbedded()
	require.NoError(t, err)
	return NewEngine(catalog)
}

func TestSearchVolumeConversion(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "sour cream",
		Quantity:   qty(1),
		Unit:       "cup",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "sour cream", res.Base)
	assert.Equal(t, "greek yogurt (full-fat)", res.Substitute)
	assert.Equal(t, BasisVolume, res.Basis)
	require.NotNil(t, res.Quantity)
	assert.InDelta(t, 1.0, *res.Quantity, 1e-9)
	// 輸出單位永遠跟呼叫端要求的單位一致
	assert.Equal(t, units.Cup, res.Unit)
	assert.NotEmpty(t, res.Notes)
	// 次要替代品只含名稱與倍率
	require.Len(t, res.Alts, 1)
	assert.Equal(t, "crème fraîche", res.Alts[0].Substitute)
	assert.Equal(t, 1.0, res.Alts[0].RatioMultiplier)
}

func TestSearchSynonymMatchesCanonical(t *testing.T) {
	engine := newTestEngine(t)

	direct := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "sour cream",
		Quantity:   qty(1),
		Unit:       "cup",
	})
	viaSynonym := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "crema agria",
		Quantity:   qty(1),
		Unit:       "cup",
	})

	assert.Equal(t, direct, viaSynonym)
}

func TestSearchScaledRatio(t *testing.T) {
	engine := newTestEngine(t)

	// butter -> neutral oil，倍率 0.75
	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "butter",
		Quantity:   qty(4),
		Unit:       "tbsp",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "neutral oil", res.Substitute)
	require.NotNil(t, res.Quantity)
	assert.InDelta(t, 3.0, *res.Quantity, 1e-9)
	assert.Equal(t, units.Tablespoon, res.Unit)
}

func TestSearchUnitBasis(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "garlic clove",
		Quantity:   qty(2),
		Unit:       "unit",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "garlic clove", res.Base)
	assert.Equal(t, "garlic powder", res.Substitute)
	assert.Equal(t, BasisUnit, res.Basis)
	require.NotNil(t, res.Quantity)
	// 2 × 0.125，取三位小數
	assert.Equal(t, 0.25, *res.Quantity)
	// 個數替代不改變呼叫端給的單位
	assert.Equal(t, units.Count, res.Unit)
}

func TestSearchUnitBasisEchoesCallerUnit(t *testing.T) {
	engine := newTestEngine(t)

	// 個數基準配上非 unit 單位：倍率照乘，單位照原樣回傳
	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "eggs",
		Quantity:   qty(2),
		Unit:       "cup",
	})

	require.True(t, res.Supported)
	assert.Equal(t, BasisUnit, res.Basis)
	require.NotNil(t, res.Quantity)
	assert.Equal(t, 0.5, *res.Quantity)
	assert.Equal(t, units.Cup, res.Unit)
}

func TestSearchRatioMonotonic(t *testing.T) {
	engine := newTestEngine(t)

	// 輸入量放大 k 倍，輸出量也放大 k 倍（到捨入誤差內）
	base := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "fresh basil",
		Quantity:   qty(1),
		Unit:       "cup",
	})
	scaled := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "fresh basil",
		Quantity:   qty(4),
		Unit:       "cup",
	})

	require.True(t, base.Supported)
	require.True(t, scaled.Supported)
	require.NotNil(t, base.Quantity)
	require.NotNil(t, scaled.Quantity)
	assert.InDelta(t, 4*(*base.Quantity), *scaled.Quantity, 0.05)
}

func TestSearchWithoutQuantityReturnsIdentityOnly(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.SearchSubstitutions(SearchArgs{Ingredient: "sour cream"})

	require.True(t, res.Supported)
	assert.Equal(t, "sour cream", res.Base)
	assert.Equal(t, "greek yogurt (full-fat)", res.Substitute)
	assert.Equal(t, BasisVolume, res.Basis)
	// 沒帶量與單位就不做換算
	assert.Nil(t, res.Quantity)
	assert.Empty(t, res.Unit)
	assert.NotEmpty(t, res.Alts)
}

func TestSearchQuantityWithoutUnit(t *testing.T) {
	engine := newTestEngine(t)

	// 只帶量沒帶單位同樣只回傳替代品身分
	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "sour cream",
		Quantity:   qty(1),
	})

	require.True(t, res.Supported)
	assert.Nil(t, res.Quantity)
}

func TestSearchUnknownIngredient(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.SearchSubstitutions(SearchArgs{Ingredient: "unicorn tears"})

	assert.False(t, res.Supported)
	assert.Equal(t, "not supported", res.Message)
	assert.NotEmpty(t, res.Examples)
	// 示範清單固定
	assert.Equal(t, []string{"sour cream", "butter", "garlic clove", "fresh basil", "buttermilk"}, res.Examples)
}

func TestSearchResolvedButNoEntry(t *testing.T) {
	engine := newTestEngine(t)

	// "neutral oil" 在白名單內但目錄沒有條目：與不認識的食材同樣回不支援
	res := engine.SearchSubstitutions(SearchArgs{Ingredient: "neutral oil"})

	assert.False(t, res.Supported)
	assert.Equal(t, "not supported", res.Message)
	assert.NotEmpty(t, res.Examples)
}

func TestSearchUnknownUnit(t *testing.T) {
	engine := newTestEngine(t)

	// 帶了數量卻配上不認識的單位：不能靜默忽略
	res := engine.SearchSubstitutions(SearchArgs{
		Ingredient: "sour cream",
		Quantity:   qty(1),
		Unit:       "handful",
	})

	assert.False(t, res.Supported)
}

func TestSearchMassUnitRejectedForVolumeBasis(t *testing.T) {
	engine := newTestEngine(t)
	catalog, err := LoadEmbedded()
	require.NoError(t, err)

	// 目錄中所有容量基準的條目，配上質量單位都必須拒絕
	for _, e := range catalog.Entries() {
		if e.Alternatives[0].Ratio.Basis != BasisVolume {
			continue
		}
		res := engine.SearchSubstitutions(SearchArgs{
			Ingredient: e.Base,
			Quantity:   qty(100),
			Unit:       "g",
		})
		assert.False(t, res.Supported, "base %q must reject mass units", e.Base)
	}
}

package substitution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeEffectsOverrideRichness(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.DescribeEffects(EffectsArgs{
		Base:       "heavy cream",
		Substitute: "evaporated milk",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "+1 tbsp butter per cup for richness.", res.Summary)
}

func TestDescribeEffectsOverrideSweetness(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.DescribeEffects(EffectsArgs{
		Base:       "mirin",
		Substitute: "sake",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "Add sugar to approximate sweetness.", res.Summary)
}

func TestDescribeEffectsUsesAlternativeNotes(t *testing.T) {
	engine := newTestEngine(t)

	// 子字串比對：解析後的 "crème fraîche" 命中同名替代品，取其備註
	res := engine.DescribeEffects(EffectsArgs{
		Base:       "sour cream",
		Substitute: "crème fraîche",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "Richer and less tangy; holds up to heat without curdling.", res.Summary)
}

func TestDescribeEffectsSubstringMatchOnFreeText(t *testing.T) {
	engine := newTestEngine(t)

	// "greek yoghurt" 經同義詞解析成 "greek yogurt (full-fat)"，
	// 與替代品自由文字做不分大小寫子字串比對
	res := engine.DescribeEffects(EffectsArgs{
		Base:       "sour cream",
		Substitute: "greek yoghurt",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "Slightly tangier; great for dips and toppings.", res.Summary)
}

func TestDescribeEffectsGenericFallback(t *testing.T) {
	engine := newTestEngine(t)

	// 替代品可解析但不在該條目的替代清單中：退回通用摘要
	res := engine.DescribeEffects(EffectsArgs{
		Base:       "butter",
		Substitute: "milk",
	})

	require.True(t, res.Supported)
	assert.Equal(t, "Comparable outcome for most dishes.", res.Summary)
}

func TestDescribeEffectsUnknownBase(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.DescribeEffects(EffectsArgs{
		Base:       "unicorn tears",
		Substitute: "butter",
	})

	assert.False(t, res.Supported)
	assert.Equal(t, "not supported", res.Summary)
}

func TestDescribeEffectsUnknownSubstitute(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.DescribeEffects(EffectsArgs{
		Base:       "sour cream",
		Substitute: "stardust",
	})

	assert.False(t, res.Supported)
	assert.Equal(t, "not supported", res.Summary)
}

func TestDescribeEffectsBaseWithoutEntry(t *testing.T) {
	engine := newTestEngine(t)

	// 白名單成員但目錄沒有條目
	res := engine.DescribeEffects(EffectsArgs{
		Base:       "neutral oil",
		Substitute: "butter",
	})

	assert.False(t, res.Supported)
	assert.Equal(t, "not supported", res.Summary)
}

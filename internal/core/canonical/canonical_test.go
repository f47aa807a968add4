package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIdempotent(t *testing.T) {
	// 已是標準名稱的輸入必須解析回自己
	for _, name := range Allowlist() {
		got, ok := Resolve(name)
		require.True(t, ok, "allowlist member %q must resolve", name)
		assert.Equal(t, name, got)

		again, ok := Resolve(got)
		require.True(t, ok)
		assert.Equal(t, got, again)
	}
}

func TestSynonymClosure(t *testing.T) {
	// 每個同義詞都解析到白名單成員，不允許同義詞鏈
	allow := make(map[string]struct{})
	for _, name := range Allowlist() {
		allow[name] = struct{}{}
	}

	for alias, target := range synonyms {
		got, ok := Resolve(alias)
		require.True(t, ok, "synonym %q must resolve", alias)
		assert.Equal(t, target, got)

		_, inAllow := allow[got]
		assert.True(t, inAllow, "synonym %q resolves to %q which is not in allowlist", alias, got)
	}
}

func TestResolveNormalization(t *testing.T) {
	got, ok := Resolve("  Sour Cream  ")
	require.True(t, ok)
	assert.Equal(t, "sour cream", got)

	got, ok = Resolve("CREMA AGRIA")
	require.True(t, ok)
	assert.Equal(t, "sour cream", got)

	got, ok = Resolve("ACV")
	require.True(t, ok)
	assert.Equal(t, "apple cider vinegar", got)
}

func TestResolveExactOnly(t *testing.T) {
	// 不做模糊或部分比對
	_, ok := Resolve("sour")
	assert.False(t, ok)

	_, ok = Resolve("sour cream extra")
	assert.False(t, ok)

	_, ok = Resolve("unicorn tears")
	assert.False(t, ok)
}

func TestExamplesFixed(t *testing.T) {
	want := []string{"sour cream", "butter", "garlic clove", "fresh basil", "buttermilk"}
	assert.Equal(t, want, Examples())
	// 順序固定：連續兩次呼叫結果一致
	assert.Equal(t, Examples(), Examples())

	for _, name := range Examples() {
		_, ok := Resolve(name)
		assert.True(t, ok, "example %q must resolve", name)
	}
}

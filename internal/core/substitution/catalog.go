package substitution

import (
	_ "embed"
	"fmt"
	"os"

	"chefs-thesaurus/internal/pkg/common"
)

//go:embed data/substitutions.json
var embeddedData []byte

// Catalog 不可變的替代品目錄
// 啟動時載入一次，之後只讀；以明確建構的方式注入引擎，不使用套件全域狀態
type Catalog struct {
	entries   []Entry
	byBase    map[string]*Entry
	bySynonym map[string]*Entry
}

// NewCatalog 從條目建立目錄並做完整性驗證
// 資料錯誤（重複 base、空 alternatives、非正倍率、未知基準）一律拒絕，
// 讓程序在啟動階段就失敗，而不是執行期算出錯的數字
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries:   entries,
		byBase:    make(map[string]*Entry, len(entries)),
		bySynonym: make(map[string]*Entry),
	}

	for i := range entries {
		e := &entries[i]
		base := common.NormalizeName(e.Base)
		if base == "" {
			return nil, fmt.Errorf("entry %d: base is empty", i)
		}
		if _, dup := c.byBase[base]; dup {
			return nil, fmt.Errorf("duplicate base %q", base)
		}
		if len(e.Alternatives) == 0 {
			return nil, fmt.Errorf("base %q: alternatives is empty", base)
		}
		for j, alt := range e.Alternatives {
			if common.NormalizeName(alt.Substitute) == "" {
				return nil, fmt.Errorf("base %q alternative %d: substitute is empty", base, j)
			}
			if alt.Ratio.Mode != RatioModeMultiplier {
				return nil, fmt.Errorf("base %q alternative %d: unknown ratio mode %q", base, j, alt.Ratio.Mode)
			}
			if alt.Ratio.Value <= 0 {
				return nil, fmt.Errorf("base %q alternative %d: ratio value must be positive, got %v", base, j, alt.Ratio.Value)
			}
			if !alt.Ratio.Basis.Valid() {
				return nil, fmt.Errorf("base %q alternative %d: unknown basis %q", base, j, alt.Ratio.Basis)
			}
		}
		c.byBase[base] = e
	}

	// 同義詞索引在 base 索引完成後建立：
	// 同義詞不得與任何 base 衝突，避免同一個標準名稱命中多個條目
	for i := range entries {
		e := &entries[i]
		for _, syn := range e.Synonyms {
			key := common.NormalizeName(syn)
			if key == "" {
				continue
			}
			if _, clash := c.byBase[key]; clash {
				return nil, fmt.Errorf("synonym %q of base %q collides with another base", key, e.Base)
			}
			if prev, dup := c.bySynonym[key]; dup && prev != e {
				return nil, fmt.Errorf("synonym %q appears under multiple bases", key)
			}
			c.bySynonym[key] = e
		}
	}

	return c, nil
}

// ParseCatalog 從 JSON 資料解析並建立目錄
func ParseCatalog(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := common.ParseJSONBytesStrict(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}
	return NewCatalog(entries)
}

// LoadEmbedded 載入內嵌的預設目錄
func LoadEmbedded() (*Catalog, error) {
	return ParseCatalog(embeddedData)
}

// LoadFile 從外部檔案載入目錄（設定了 catalog.data_path 時使用）
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// Lookup 以標準食材名稱查找條目
// 先比對 base，再比對條目同義詞；建構時已保證至多一個條目會命中
func (c *Catalog) Lookup(canonicalBase string) (*Entry, bool) {
	key := common.NormalizeName(canonicalBase)
	if e, ok := c.byBase[key]; ok {
		return e, true
	}
	if e, ok := c.bySynonym[key]; ok {
		return e, true
	}
	return nil, false
}

// Len 條目數量
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries 回傳條目副本，供測試與健康檢查使用
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Stats 統計各基準的替代筆數
func (c *Catalog) Stats() (volumeCount, unitCount int) {
	for _, e := range c.entries {
		for _, alt := range e.Alternatives {
			switch alt.Ratio.Basis {
			case BasisVolume:
				volumeCount++
			case BasisUnit:
				unitCount++
			}
		}
	}
	return volumeCount, unitCount
}

package store

import (
	"fmt"

	"chefs-thesaurus/internal/pkg/common"
)

// 預設搜尋半徑（公尺）
const defaultRadiusM = 5000

// Store 附近商店
type Store struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	DistanceM int     `json:"distance_m"`
}

// LookupArgs 商店查詢參數
type LookupArgs struct {
	Query   string
	Lat     float64
	Lon     float64
	RadiusM int
}

// Lookup 回傳查詢字串附近的商店清單
// 佔位實作：不做真實地理查詢，結果由查詢字串的雜湊決定，
// 同樣輸入永遠得到同樣輸出（決定性是此元件的約定，重寫時必須保留）
func Lookup(args LookupArgs) []Store {
	radius := args.RadiusM
	if radius <= 0 {
		radius = defaultRadiusM
	}

	norm := common.NormalizeName(args.Query)
	seed := hashString(norm) % 1000
	if seed < 0 {
		seed = -seed
	}

	const count = 3
	out := make([]Store, 0, count)
	for i := 0; i < count; i++ {
		offset := (seed + int32(i)*37) % 997
		d := int(offset)%radius + 100
		out = append(out, Store{
			Name:      fmt.Sprintf("%s Market #%d", capitalize(norm), i+1),
			Lat:       args.Lat + float64(i)*0.001,
			Lon:       args.Lon - float64(i)*0.001,
			DistanceM: d,
		})
	}
	return out
}

// hashString 31 進位字串雜湊，保留 32 位元溢位語義
func hashString(s string) int32 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	return h
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

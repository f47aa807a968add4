package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chefs-thesaurus/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// searchCase 一筆替代品查詢案例
type searchCase struct {
	Ingredient string   `json:"ingredient"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Unit       string   `json:"unit,omitempty"`
}

// effectsCase 一筆替代影響查詢案例
type effectsCase struct {
	Base       string `json:"base"`
	Substitute string `json:"substitute"`
}

// searchResponse 伺服器查詢回應（只解出冒煙測試需要的欄位）
type searchResponse struct {
	Supported  bool     `json:"supported"`
	Base       string   `json:"base"`
	Substitute string   `json:"substitute"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit"`
	Message    string   `json:"message"`
	Examples   []string `json:"examples"`
}

// effectsResponse 伺服器影響查詢回應
type effectsResponse struct {
	Supported bool   `json:"supported"`
	Summary   string `json:"summary"`
}

func qty(v float64) *float64 { return &v }

func main() {
	addr := flag.String("addr", "http://localhost:8080", "API server address")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*addr).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	searches := []searchCase{
		{Ingredient: "sour cream", Quantity: qty(1), Unit: "cup"},
		{Ingredient: "butter", Quantity: qty(4), Unit: "tbsp"},
		{Ingredient: "garlic clove", Quantity: qty(2), Unit: "unit"},
		{Ingredient: "crema agria", Quantity: qty(1), Unit: "cup"},
		{Ingredient: "unicorn tears"},
	}

	effects := []effectsCase{
		{Base: "heavy cream", Substitute: "evaporated milk"},
		{Base: "mirin", Substitute: "sake"},
	}

	failed := 0

	for i, tc := range searches {
		var res searchResponse
		resp, err := client.R().
			SetHeader("X-Request-ID", common.GenerateUUID()).
			SetBody(tc).
			SetResult(&res).
			Post("/api/v1/substitution/search")
		if err != nil {
			fmt.Printf("search %d (%s): request failed: %v\n", i+1, tc.Ingredient, err)
			failed++
			continue
		}
		if resp.IsError() {
			fmt.Printf("search %d (%s): HTTP %d\n", i+1, tc.Ingredient, resp.StatusCode())
			failed++
			continue
		}
		if res.Supported {
			fmt.Printf("search %d (%s): %s -> %s", i+1, tc.Ingredient, res.Base, res.Substitute)
			if res.Quantity != nil && res.Unit != "" {
				fmt.Printf(" (%g %s)", *res.Quantity, res.Unit)
			}
			fmt.Println()
		} else {
			fmt.Printf("search %d (%s): not supported, examples: %v\n", i+1, tc.Ingredient, res.Examples)
		}
	}

	for i, tc := range effects {
		var res effectsResponse
		resp, err := client.R().
			SetHeader("X-Request-ID", common.GenerateUUID()).
			SetBody(tc).
			SetResult(&res).
			Post("/api/v1/substitution/effects")
		if err != nil {
			fmt.Printf("effects %d (%s -> %s): request failed: %v\n", i+1, tc.Base, tc.Substitute, err)
			failed++
			continue
		}
		if resp.IsError() {
			fmt.Printf("effects %d (%s -> %s): HTTP %d\n", i+1, tc.Base, tc.Substitute, resp.StatusCode())
			failed++
			continue
		}
		fmt.Printf("effects %d (%s -> %s): %s\n", i+1, tc.Base, tc.Substitute, res.Summary)
	}

	if failed > 0 {
		fmt.Printf("%d request(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("all smoke cases passed")
}

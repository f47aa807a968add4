package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// NormalizeName 正規化名稱（去空白、轉小寫），供食材與單位查表使用
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

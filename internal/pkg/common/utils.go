package common

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateUUID 生成請求追蹤用的 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// SafeFilename 將食譜標題轉換為安全的檔案名稱
// 只保留英數字、空格、連字號與底線，空格轉底線並轉小寫
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	name := strings.TrimSpace(b.String())
	name = strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	if name == "" {
		name = "recipe"
	}
	return name
}

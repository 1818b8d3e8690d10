package recipe

import (
	"strings"

	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// isNullMarker AI 回應偶爾會把字面 "null"/"None" 當成值塞進欄位
func isNullMarker(s string) bool {
	return s == "null" || s == "None"
}

// FormatForTodo 將食材列表渲染為待辦清單項目
// 名稱無效的食材直接跳過；單筆換算失敗不影響整批，保留原值
// 輸出順序與輸入順序一致
func FormatForTodo(ingredients []Ingredient, convertUnits bool) []string {
	items := make([]string, 0, len(ingredients))

	for idx, ing := range ingredients {
		name := ing.Name
		quantity := ing.Quantity
		unit := ing.Unit

		// 跳過無效名稱
		if name == "" || isNullMarker(name) {
			common.LogDebug("跳過無效食材", zap.Int("序號", idx+1))
			continue
		}

		// 把字面 null 標記還原為真正的缺值
		if isNullMarker(unit) {
			unit = ""
		}

		// 換算單位（若開啟且數量與單位都存在）
		if convertUnits && quantity != nil && unit != "" {
			q, u := ConvertToMetric(*quantity, unit)
			quantity, unit = &q, u
		}

		parts := []string{name}
		if quantity != nil {
			if formatted := FormatQuantity(*quantity); formatted != "" {
				parts = append(parts, formatted)
			}
		}
		if unit != "" {
			parts = append(parts, unit)
		}

		items = append(items, strings.Join(parts, " "))
	}

	return items
}

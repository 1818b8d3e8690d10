package recipe

import (
	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// ScaleIngredients 依份量等比例縮放食材數量
// 原始份量缺失或無效、目標份量無效時視為 no-op（份量資訊經常缺漏，不是錯誤）
// 一律回傳複本，不改動輸入
func ScaleIngredients(ingredients []Ingredient, originalServings int, targetServings float64) []Ingredient {
	if originalServings <= 0 {
		common.LogWarn("無法縮放食譜：原始份量缺失或無效")
		return ingredients
	}
	if targetServings <= 0 {
		common.LogWarn("無法縮放食譜：目標份量必須為正數")
		return ingredients
	}

	factor := targetServings / float64(originalServings)
	common.LogInfo("縮放食材份量",
		zap.Int("原始份量", originalServings),
		zap.Float64("目標份量", targetServings),
		zap.Float64("倍率", factor),
	)

	scaled := make([]Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out := ing.Clone()
		if out.Quantity != nil {
			*out.Quantity *= factor
		}
		scaled = append(scaled, out)
	}

	return scaled
}

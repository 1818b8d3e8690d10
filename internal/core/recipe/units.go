package recipe

import (
	"math"
	"strconv"
	"strings"
)

// spoonToStandard 多語言匙類單位對應英文標準縮寫
// 匙是「數個」型的單位，不換算成毫升
var spoonToStandard = map[string]struct {
	unit       string
	multiplier float64
}{
	// 德文茶匙
	"tl":        {"tsp", 1},
	"teelöffel": {"tsp", 1},
	// 德文湯匙
	"el":        {"tbsp", 1},
	"esslöffel": {"tbsp", 1},
	// 丹麥文茶匙
	"tsk": {"tsp", 1},
	// 丹麥文湯匙
	"spsk": {"tbsp", 1},
	// 瑞典/挪威文湯匙
	"msk": {"tbsp", 1},
	// 一小撮（刀尖）
	"knsp":         {"pinch", 1}, // 丹麥文 knivspids
	"messerspitze": {"pinch", 1}, // 德文刀尖
}

// englishSpoonUnits 英文匙類單位維持原樣，不進行體積換算
var englishSpoonUnits = map[string]bool{
	"tsp":         true,
	"teaspoon":    true,
	"teaspoons":   true,
	"tbsp":        true,
	"tablespoon":  true,
	"tablespoons": true,
	"pinch":       true,
	"dash":        true,
}

// volumeToML 體積單位換算成毫升
var volumeToML = map[string]float64{
	// 英制/美制
	"cup":          240,
	"cups":         240,
	"c":            240,
	"tablespoon":   15,
	"tablespoons":  15,
	"tbsp":         15,
	"tbs":          15,
	"tb":           15,
	"teaspoon":     5,
	"teaspoons":    5,
	"tsp":          5,
	"fluid ounce":  30,
	"fluid ounces": 30,
	"fl oz":        30,
	"fl. oz":       30,
	"floz":         30,
	"pint":         473,
	"pints":        473,
	"pt":           473,
	"quart":        946,
	"quarts":       946,
	"qt":           946,
	"gallon":       3785,
	"gallons":      3785,
	"gal":          3785,
	// 公制（已標準化）
	"milliliter":  1,
	"milliliters": 1,
	"ml":          1,
	"liter":       1000,
	"liters":      1000,
	"l":           1000,
	"dl":          100,
	"deciliter":   100,
	"deciliters":  100,
}

// weightToG 重量單位換算成公克
var weightToG = map[string]float64{
	// 英制/美制
	"ounce":  28.35,
	"ounces": 28.35,
	"oz":     28.35,
	"pound":  453.592,
	"pounds": 453.592,
	"lb":     453.592,
	"lbs":    453.592,
	// 公制（已標準化）
	"gram":      1,
	"grams":     1,
	"g":         1,
	"kilogram":  1000,
	"kilograms": 1000,
	"kg":        1000,
}

// temperatureUnits 溫度單位
var temperatureUnits = map[string]string{
	"fahrenheit": "f",
	"f":          "f",
	"°f":         "f",
	"celsius":    "c",
	"c":          "c",
	"°c":         "c",
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeSpoon 將多語言匙類單位標準化為 tsp/tbsp/pinch
func NormalizeSpoon(unit string) (string, float64, bool) {
	s, ok := spoonToStandard[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return "", 0, false
	}
	return s.unit, s.multiplier, true
}

// ConvertToMetric 將英制單位換算成公制，並標準化匙類單位
// 未知單位原樣返回（恆等換算），已是公制者為不動點
func ConvertToMetric(quantity float64, unit string) (float64, string) {
	if quantity == 0 || unit == "" {
		return quantity, unit
	}

	unitLower := strings.ToLower(strings.TrimSpace(unit))

	// 先把多語言匙類單位標準化為英文縮寫
	if s, ok := spoonToStandard[unitLower]; ok {
		return quantity * s.multiplier, s.unit
	}

	// 英文匙類單位維持原樣，不換算成毫升
	if englishSpoonUnits[unitLower] {
		return quantity, unit
	}

	// 體積換算
	if factor, ok := volumeToML[unitLower]; ok {
		ml := quantity * factor
		// 大體積改用公升
		if ml >= 1000 {
			return round2(ml / 1000), "l"
		}
		return math.Round(ml), "ml"
	}

	// 重量換算
	if factor, ok := weightToG[unitLower]; ok {
		grams := quantity * factor
		// 大重量改用公斤
		if grams >= 1000 {
			return round2(grams / 1000), "kg"
		}
		return math.Round(grams), "g"
	}

	// 溫度換算
	if tempType, ok := temperatureUnits[unitLower]; ok {
		if tempType == "f" {
			celsius := (quantity - 32) * 5 / 9
			return math.Round(celsius), "°C"
		}
	}

	// 沒有對應的換算，原樣返回
	return quantity, unit
}

// FormatQuantity 格式化數量，去除不必要的小數
// 整數不帶小數點，其餘四捨五入到兩位小數並去除尾端零
func FormatQuantity(quantity float64) string {
	if quantity == math.Trunc(quantity) {
		return strconv.FormatInt(int64(quantity), 10)
	}

	// math.Round 逢五進位，避免 FormatFloat 的銀行家捨入把 2.125 變成 2.12
	rounded := math.Round(quantity*100) / 100
	if rounded == math.Trunc(rounded) {
		return strconv.FormatInt(int64(rounded), 10)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

package recipe

import (
	"regexp"
	"strings"
)

// unitVocabulary 可辨識的單位詞彙（英文 + 德文 + 丹麥/瑞典/挪威文）
// 後面一律接 \b，避免把 "große" 裡的 g 誤認成公克
const unitVocabulary = `(?:cups?|tablespoons?|tbsp?|teaspoons?|tsp?|ounces?|oz|pounds?|lbs?|grams?|g|kilograms?|kg|milliliters?|ml|liters?|l|pinch|dash|clove|piece|slice|tl|el|teelöffel|esslöffel|messerspitze|tsk|spsk|knsp|msk|dl)`

// numberToken 數字 token，含 ASCII 分數與 Unicode 分數字元
const numberToken = `[\d./½⅓⅔¼¾⅛⅜⅝⅞]+`

// numberGroup 一到兩個以空白分隔的數字 token（支援 "2 1/2"）
const numberGroup = numberToken + `(?:\s+` + numberToken + `)?`

// lineMatcher 單一樣式的匹配器
// 依嚴格優先順序嘗試，先匹配者勝出，不做回溯或評分
type lineMatcher struct {
	name  string
	re    *regexp.Regexp
	build func(groups []string) Ingredient
}

var lineMatchers = []lineMatcher{
	{
		// 緊湊格式："250g flour"
		name: "compact",
		re:   regexp.MustCompile(`(?i)^(` + numberToken + `)(` + unitVocabulary + `)\b\s+(.+)$`),
		build: func(g []string) Ingredient {
			return Ingredient{
				Name:     strings.TrimSpace(g[3]),
				Quantity: ParseQuantity(g[1]),
				Unit:     strings.TrimSpace(g[2]),
			}
		},
	},
	{
		// 英文標準格式："1 cup butter, softened"、"2 1/2 cups flour"
		name: "quantity-unit-name",
		re:   regexp.MustCompile(`(?i)^(` + numberGroup + `)\s+(` + unitVocabulary + `)\b\s+(.+)$`),
		build: func(g []string) Ingredient {
			return Ingredient{
				Name:     strings.TrimSpace(g[3]),
				Quantity: ParseQuantity(g[1]),
				Unit:     strings.TrimSpace(g[2]),
			}
		},
	},
	{
		// 德文/丹麥文格式、單位先行："TL Korianderpulver 0.5"
		name: "unit-name-quantity",
		re:   regexp.MustCompile(`(?i)^(` + unitVocabulary + `)\b\s+(.+?)\s+(` + numberGroup + `)$`),
		build: func(g []string) Ingredient {
			return Ingredient{
				Name:     strings.TrimSpace(g[2]),
				Quantity: ParseQuantity(g[3]),
				Unit:     strings.TrimSpace(g[1]),
			}
		},
	},
	{
		// 名稱後置數量、無單位："Große Zwiebel(n) 1"
		name: "name-quantity",
		re:   regexp.MustCompile(`^(.+?)\s+(` + numberGroup + `)$`),
		build: func(g []string) Ingredient {
			return Ingredient{
				Name:     strings.TrimSpace(g[1]),
				Quantity: ParseQuantity(g[2]),
			}
		},
	},
	{
		// 數量先行、無單位："2 eggs"、"1 große Zwiebel"
		name: "quantity-name",
		re:   regexp.MustCompile(`^(` + numberGroup + `)\s+(.+)$`),
		build: func(g []string) Ingredient {
			return Ingredient{
				Name:     strings.TrimSpace(g[2]),
				Quantity: ParseQuantity(g[1]),
			}
		},
	},
}

// ParseIngredientLine 將一行原始食材字串解析為結構化食材
// 永不失敗：沒有任何樣式匹配時，整行作為名稱
func ParseIngredientLine(line string) Ingredient {
	trimmed := strings.TrimSpace(line)

	for _, m := range lineMatchers {
		if groups := m.re.FindStringSubmatch(trimmed); groups != nil {
			return m.build(groups)
		}
	}

	return Ingredient{Name: trimmed}
}

package recipe

import (
	"encoding/json"
	"regexp"

	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// StringOrList JSON-LD 欄位可能是字串也可能是字串陣列（如 recipeYield）
type StringOrList []string

// UnmarshalJSON 實現 json.Unmarshaler，單一字串與陣列都接受
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = StringOrList(list)
	return nil
}

// First 取第一個元素，空列表回傳空字串
func (s StringOrList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// StructuredFields 外部定位器取出的機器可讀食譜欄位
type StructuredFields struct {
	Name            string       `json:"name"`
	Yield           StringOrList `json:"yield"`
	IngredientLines []string     `json:"ingredient_lines"`
}

var digitRunPattern = regexp.MustCompile(`\d+`)

// ParseServings 從 yield 字串取出第一段數字（"Makes 10"、"6 servings"、"48"）
// 找不到數字時回傳 0（視為缺值）
func ParseServings(yield string) int {
	match := digitRunPattern.FindString(yield)
	if match == "" {
		return 0
	}
	servings := 0
	for _, c := range match {
		servings = servings*10 + int(c-'0')
	}
	return servings
}

// ParseStructured 從結構化欄位建立食譜，不經過 AI
// 標題為空時回傳 nil；groupText 供群組後備比對（可為空字串）
func ParseStructured(fields StructuredFields, groupText string) *Recipe {
	if fields.Name == "" {
		common.LogWarn("結構化資料缺少食譜標題")
		return nil
	}

	groups := ExtractGroups(groupText)

	ingredients := make([]Ingredient, 0, len(fields.IngredientLines))
	for _, line := range fields.IngredientLines {
		ing := ParseIngredientLine(line)
		if ing.Group == "" {
			ing.Group = groups.Lookup(ing.Name)
		}
		ingredients = append(ingredients, ing)
	}

	recipe := &Recipe{
		Title:       fields.Name,
		Servings:    ParseServings(fields.Yield.First()),
		Ingredients: ingredients,
	}

	common.LogInfo("結構化解析完成",
		zap.String("標題", recipe.Title),
		zap.Int("食材數", len(recipe.Ingredients)),
		zap.Int("份量", recipe.Servings),
	)

	return recipe
}

package ai

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"recipe-extractor/internal/core/ai/service"
	"recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

// LooseNumber 容錯數值欄位
// 模型有時回傳字串形式的數字，null 或壞值一律視為未指定
type LooseNumber struct {
	value *float64
}

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		n.value = nil
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n.value = nil
		return nil
	}
	n.value = &f
	return nil
}

// Value 回傳解析後的數值，未指定時為 nil
func (n LooseNumber) Value() *float64 {
	return n.value
}

// modelIngredient 模型輸出的單一食材
type modelIngredient struct {
	Name     string      `json:"name"`
	Quantity LooseNumber `json:"quantity"`
	Unit     string      `json:"unit"`
	Group    string      `json:"group"`
}

// modelRecipe 模型輸出的整體結構
type modelRecipe struct {
	Title       string            `json:"title"`
	Servings    LooseNumber       `json:"servings"`
	Ingredients []modelIngredient `json:"ingredients"`
}

// Extractor AI 食譜抽取器
// 將頁面純文字組成提示詞送給模型，解析回傳的 JSON 成 Recipe
type Extractor struct {
	config *config.Config
	ai     *service.Service
}

// NewExtractor 創建抽取器
func NewExtractor(cfg *config.Config, aiService *service.Service) *Extractor {
	return &Extractor{
		config: cfg,
		ai:     aiService,
	}
}

// ExtractRecipe 從純文字抽取食譜
// 文字過短或模型輸出不合格時回傳 (nil, nil)，服務層錯誤原樣傳回
func (e *Extractor) ExtractRecipe(ctx context.Context, text string) (*recipe.Recipe, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < e.config.Extract.MinTextLength {
		common.LogWarn("文字過短，跳過 AI 抽取",
			zap.Int("length", len(trimmed)),
			zap.Int("min_length", e.config.Extract.MinTextLength))
		return nil, nil
	}

	common.LogInfo("開始 AI 食譜抽取", zap.Int("text_length", len(text)))

	resp, err := e.ai.ProcessRequest(ctx, buildPrompt(text))
	if err != nil {
		return nil, err
	}

	parsed, ok := parseModelOutput(resp.Content)
	if !ok {
		return nil, nil
	}

	// 模型沒給分組時退回標記式分組比對
	groups := recipe.ExtractGroups(text)

	result := &recipe.Recipe{
		Title:       strings.TrimSpace(parsed.Title),
		Ingredients: make([]recipe.Ingredient, 0, len(parsed.Ingredients)),
	}
	if sv := parsed.Servings.Value(); sv != nil && *sv > 0 {
		result.Servings = int(*sv)
	}

	for _, ing := range parsed.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		group := strings.TrimSpace(ing.Group)
		if group == "" {
			group = groups.Lookup(name)
		}
		result.Ingredients = append(result.Ingredients, recipe.Ingredient{
			Name:     name,
			Quantity: ing.Quantity.Value(),
			Unit:     strings.TrimSpace(ing.Unit),
			Group:    group,
		})
	}

	// 沒有標題或一項食材都沒有就視為抽取失敗
	if result.Title == "" {
		common.LogWarn("AI 抽取完成但沒有標題")
		return nil, nil
	}
	if len(result.Ingredients) == 0 {
		common.LogWarn("AI 抽取完成但沒有食材")
		return nil, nil
	}

	common.LogInfo("AI 食譜抽取成功",
		zap.String("title", result.Title),
		zap.Int("ingredients", len(result.Ingredients)),
		zap.Int("servings", result.Servings))
	return result, nil
}

// parseModelOutput 解析模型回應中的 JSON 物件
func parseModelOutput(content string) (*modelRecipe, bool) {
	raw := common.ExtractJSONObject(content)
	if raw == "" {
		common.LogWarn("模型回應中找不到 JSON 物件")
		return nil, false
	}

	var parsed modelRecipe
	if err := common.ParseJSON(raw, &parsed); err != nil {
		// 模型偶爾輸出未加引號的鍵，補上引號後再試一次
		if retryErr := common.ParseJSON(common.QuoteJSONKeys(raw), &parsed); retryErr != nil {
			common.LogWarn("模型回應 JSON 解析失敗", zap.Error(err))
			return nil, false
		}
	}
	return &parsed, true
}

// buildPrompt 組合指令、示範與頁面文字
func buildPrompt(text string) string {
	var b strings.Builder
	b.WriteString(extractionInstructions)
	b.WriteString("\n\n")
	for i, ex := range recipeExamples {
		b.WriteString("Example ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" input:\n")
		b.WriteString(ex.Input)
		b.WriteString("\n\nExample ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" output:\n")
		b.WriteString(ex.Output)
		b.WriteString("\n\n")
	}
	b.WriteString("Now extract the recipe from the following text:\n\n")
	b.WriteString(text)
	return b.String()
}

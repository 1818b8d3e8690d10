package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-extractor/internal/core/ai/provider"
	"recipe-extractor/internal/core/ai/service"
	"recipe-extractor/internal/infrastructure/config"
)

// fakeProvider 回傳固定內容或固定錯誤的測試用提供者
type fakeProvider struct {
	content string
	err     error
}

func (f *fakeProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &provider.Response{Content: f.content}, nil
}

func (f *fakeProvider) GetModel() string          { return "fake-model" }
func (f *fakeProvider) GetTimeout() time.Duration { return time.Second }
func (f *fakeProvider) Close() error              { return nil }

func testConfig() *config.Config {
	return &config.Config{
		OpenRouter: config.OpenRouterConfig{MaxTokens: 4000},
		Extract:    config.ExtractConfig{MaxTextLength: 8000, MinTextLength: 100},
		Queue:      config.QueueConfig{Workers: 1, MaxSize: 10},
	}
}

func newTestExtractor(t *testing.T, p provider.Provider) *Extractor {
	t.Helper()
	cfg := testConfig()
	svc, err := service.NewService(cfg, p, nil)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return NewExtractor(cfg, svc)
}

const sampleRecipeText = `Chocolate Chip Cookies

A classic homemade cookie recipe that everyone loves. Preheat the oven to 375 degrees
and prepare two baking sheets with parchment paper before you start mixing.

Makes 48 cookies

2 1/4 cups all-purpose flour
1 cup butter, softened
2 eggs
`

func TestExtractRecipe_ParsesModelOutput(t *testing.T) {
	model := map[string]interface{}{
		"title":    "Chocolate Chip Cookies",
		"servings": 48,
		"ingredients": []map[string]interface{}{
			{"name": "all-purpose flour", "quantity": 2.25, "unit": "cups", "group": nil},
			{"name": "butter, softened", "quantity": 1, "unit": "cup", "group": nil},
			{"name": "eggs", "quantity": 2, "unit": nil, "group": nil},
		},
	}
	raw, err := json.Marshal(model)
	require.NoError(t, err)

	extractor := newTestExtractor(t, &fakeProvider{content: string(raw)})

	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	require.NoError(t, err)
	require.NotNil(t, recipe)

	assert.Equal(t, "Chocolate Chip Cookies", recipe.Title)
	assert.Equal(t, 48, recipe.Servings)
	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, "all-purpose flour", recipe.Ingredients[0].Name)
	require.NotNil(t, recipe.Ingredients[0].Quantity)
	assert.Equal(t, 2.25, *recipe.Ingredients[0].Quantity)
	assert.Equal(t, "cups", recipe.Ingredients[0].Unit)
	assert.Equal(t, "eggs", recipe.Ingredients[2].Name)
	assert.Equal(t, "", recipe.Ingredients[2].Unit)
}

func TestExtractRecipe_MarkdownFencedOutput(t *testing.T) {
	content := "```json\n{\"title\": \"Beef Stew\", \"servings\": 6, \"ingredients\": [{\"name\": \"beef chuck\", \"quantity\": 2, \"unit\": \"lbs\", \"group\": null}]}\n```"
	extractor := newTestExtractor(t, &fakeProvider{content: content})

	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "Beef Stew", recipe.Title)
	assert.Equal(t, 6, recipe.Servings)
}

func TestExtractRecipe_UnquotedKeysOutput(t *testing.T) {
	// 鍵沒加雙引號的輸出，補引號後重試解析
	content := `{title: "Beef Stew", servings: 6, ingredients: [{name: "beef chuck", quantity: 2, unit: "lbs", group: null}]}`
	extractor := newTestExtractor(t, &fakeProvider{content: content})

	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "Beef Stew", recipe.Title)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "beef chuck", recipe.Ingredients[0].Name)
}

func TestExtractRecipe_TextTooShort(t *testing.T) {
	extractor := newTestExtractor(t, &fakeProvider{content: "{}"})

	recipe, err := extractor.ExtractRecipe(context.Background(), "too short")
	assert.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestExtractRecipe_ProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("rate limited")
	extractor := newTestExtractor(t, &fakeProvider{err: wantErr})

	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	assert.Nil(t, recipe)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestExtractRecipe_UnparseableOutput(t *testing.T) {
	extractor := newTestExtractor(t, &fakeProvider{content: "Sorry, I cannot find a recipe on this page."})

	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	assert.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestExtractRecipe_QualityGates(t *testing.T) {
	// 沒有標題
	extractor := newTestExtractor(t, &fakeProvider{
		content: `{"title": "", "servings": 4, "ingredients": [{"name": "flour", "quantity": 1, "unit": "cup", "group": null}]}`,
	})
	recipe, err := extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	assert.NoError(t, err)
	assert.Nil(t, recipe)

	// 沒有食材
	extractor = newTestExtractor(t, &fakeProvider{
		content: `{"title": "Empty Dish", "servings": 4, "ingredients": []}`,
	})
	recipe, err = extractor.ExtractRecipe(context.Background(), sampleRecipeText)
	assert.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestExtractRecipe_GroupFallbackFromText(t *testing.T) {
	groupedText := `Recipe: Homemade Pizza
Servings: 4
Ingredients:
For the dough:
  - 500g flour
  - 5g salt
For the topping:
  - 200g tomato sauce
  - 250g mozzarella cheese
This structured text block is long enough to pass the minimum length gate for extraction.
`
	// 模型沒回傳分組，從文字的分組標記補上
	content := `{"title": "Homemade Pizza", "servings": 4, "ingredients": [
		{"name": "flour", "quantity": 3, "unit": "cups", "group": null},
		{"name": "tomato sauce", "quantity": 1, "unit": "cup", "group": "From the model"}
	]}`
	extractor := newTestExtractor(t, &fakeProvider{content: content})

	recipe, err := extractor.ExtractRecipe(context.Background(), groupedText)
	require.NoError(t, err)
	require.NotNil(t, recipe)
	require.Len(t, recipe.Ingredients, 2)

	assert.Equal(t, "For the dough", recipe.Ingredients[0].Group)
	// 模型給的分組優先
	assert.Equal(t, "From the model", recipe.Ingredients[1].Group)
}

func TestLooseNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"number", `4`, ptr(4)},
		{"float", `2.5`, ptr(2.5)},
		{"numeric string", `"4"`, ptr(4)},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"garbage string", `"four"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n LooseNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			if tt.want == nil {
				assert.Nil(t, n.Value())
			} else {
				require.NotNil(t, n.Value())
				assert.Equal(t, *tt.want, *n.Value())
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }

package scrape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-extractor/internal/core/recipe"
)

func wrapJSONLD(payload string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<script type="application/ld+json">%s</script>
</head>
<body><h1>Some page</h1></body>
</html>`, payload))
}

func TestLocateRecipe_TopLevelObject(t *testing.T) {
	body := wrapJSONLD(`{
		"@context": "https://schema.org",
		"@type": "Recipe",
		"name": "Chocolate Chip Cookies",
		"recipeYield": "48",
		"recipeIngredient": ["2 1/4 cups all-purpose flour", "1 cup butter, softened", "2 eggs"]
	}`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "Chocolate Chip Cookies", fields.Name)
	assert.Equal(t, "48", fields.Yield.First())
	assert.Equal(t, []string{"2 1/4 cups all-purpose flour", "1 cup butter, softened", "2 eggs"}, fields.IngredientLines)
}

func TestLocateRecipe_TypeArray(t *testing.T) {
	body := wrapJSONLD(`{
		"@type": ["Recipe", "NewsArticle"],
		"name": "Beef Stew",
		"recipeIngredient": ["2 lbs beef chuck"]
	}`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "Beef Stew", fields.Name)
}

func TestLocateRecipe_TopLevelArray(t *testing.T) {
	body := wrapJSONLD(`[
		{"@type": "WebSite", "name": "Food Blog"},
		{"@type": "Recipe", "name": "Pancakes", "recipeIngredient": ["1 cup flour"]}
	]`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "Pancakes", fields.Name)
}

func TestLocateRecipe_Graph(t *testing.T) {
	body := wrapJSONLD(`{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebPage", "name": "Page"},
			{"@type": "Recipe", "name": "Gewürzkuchen", "recipeYield": ["12", "12 pieces"], "recipeIngredient": ["250 g Mehl"]}
		]
	}`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "Gewürzkuchen", fields.Name)
	assert.Equal(t, "12", fields.Yield.First())
}

func TestLocateRecipe_GraphWrapperNotSearchedAsNode(t *testing.T) {
	// 帶 @graph 的物件只搜尋 graph 內容，外層的 @type 不算數
	body := wrapJSONLD(`{
		"@type": "Recipe",
		"name": "Outer Recipe",
		"@graph": [{"@type": "WebPage", "name": "Page"}]
	}`)

	_, found := LocateRecipe(body)
	assert.False(t, found)
}

func TestLocateRecipe_NumericYield(t *testing.T) {
	body := wrapJSONLD(`{"@type": "Recipe", "name": "Soup", "recipeYield": 4, "recipeIngredient": ["1 onion"]}`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "4", fields.Yield.First())
}

func TestLocateRecipe_MultipleScripts(t *testing.T) {
	body := []byte(`<html><head>
<script type="application/ld+json">{"@type": "BreadcrumbList"}</script>
<script type="application/ld+json">{"@type": "Recipe", "name": "Pizza Dough", "recipeIngredient": ["3 cups flour"]}</script>
</head><body></body></html>`)

	fields, found := LocateRecipe(body)
	require.True(t, found)
	assert.Equal(t, "Pizza Dough", fields.Name)
}

func TestLocateRecipe_NoRecipe(t *testing.T) {
	_, found := LocateRecipe(wrapJSONLD(`{"@type": "NewsArticle", "name": "Breaking"}`))
	assert.False(t, found)

	_, found = LocateRecipe([]byte(`<html><body><p>No structured data here.</p></body></html>`))
	assert.False(t, found)

	// 壞掉的 JSON 不可造成失敗
	_, found = LocateRecipe(wrapJSONLD(`{"@type": "Recipe", "name": `))
	assert.False(t, found)
}

func TestRenderStructuredText(t *testing.T) {
	fields := recipe.StructuredFields{
		Name:            "Homemade Pizza",
		Yield:           recipe.StringOrList{"4"},
		IngredientLines: []string{"3 cups flour", "1 tsp salt"},
	}

	want := "Recipe: Homemade Pizza\n\nServings: 4\n\nIngredients:\n- 3 cups flour\n- 1 tsp salt"
	assert.Equal(t, want, RenderStructuredText(fields))
}

func TestRenderStructuredText_MissingFields(t *testing.T) {
	fields := recipe.StructuredFields{Name: "Mystery Dish"}
	assert.Equal(t, "Recipe: Mystery Dish", RenderStructuredText(fields))
}

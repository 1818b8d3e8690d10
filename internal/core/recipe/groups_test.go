package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const groupedRecipeText = `Recipe: Homemade Pizza
Servings: 4
Ingredients:
For the dough:
  - 500g flour
  - 5g salt
  - 300ml warm water
For the topping:
  - 200g tomato sauce
  - 250g mozzarella cheese
Instructions:
  - 1cup this line must be ignored
`

func TestExtractGroups_GroupedText(t *testing.T) {
	groups := ExtractGroups(groupedRecipeText)

	assert.Equal(t, 5, groups.Len())
	assert.Equal(t, "For the dough", groups.Get("flour"))
	assert.Equal(t, "For the dough", groups.Get("salt"))
	assert.Equal(t, "For the dough", groups.Get("warm water"))
	assert.Equal(t, "For the topping", groups.Get("tomato sauce"))
	assert.Equal(t, "For the topping", groups.Get("mozzarella cheese"))

	// instructions 之後的行不可混入
	assert.Equal(t, "", groups.Get("this line must be ignored"))
}

func TestExtractGroups_StripsOnlyLeadingToken(t *testing.T) {
	text := `Recipe: Pancakes
Ingredients:
For the batter:
  - 3 cups flour
  - 1 tsp baking powder
`
	// 只去掉行首的數量 token，單位留在片段裡
	groups := ExtractGroups(text)
	assert.Equal(t, "For the batter", groups.Get("cups flour"))
	assert.Equal(t, "For the batter", groups.Get("tsp baking powder"))
	assert.Equal(t, "", groups.Get("flour"))
}

func TestExtractGroups_NoIngredientsMarker(t *testing.T) {
	assert.Zero(t, ExtractGroups("3 cups flour\n1 tsp salt").Len())
	assert.Zero(t, ExtractGroups("").Len())
}

func TestExtractGroups_UngroupedIngredients(t *testing.T) {
	text := `Recipe: Simple Bread
Ingredients:
  - 500 g flour
  - 1 tsp yeast
`
	// 沒有群組標題時不產生任何映射
	assert.Zero(t, ExtractGroups(text).Len())
}

func TestGroupMap_Lookup(t *testing.T) {
	groups := ExtractGroups(groupedRecipeText)

	// 完整片段包含
	assert.Equal(t, "For the dough", groups.Lookup("flour"))
	// 名稱比片段長
	assert.Equal(t, "For the topping", groups.Lookup("fresh mozzarella cheese"))
	// 大小寫不敏感
	assert.Equal(t, "For the dough", groups.Lookup("Salt"))
	// 無命中
	assert.Equal(t, "", groups.Lookup("olive oil"))
	// 空映射
	assert.Equal(t, "", GroupMap{}.Lookup("flour"))
}

func TestGroupMap_LookupFirstMatchWins(t *testing.T) {
	groups := ExtractGroups(groupedRecipeText)

	// "salt" 與 "mozzarella cheese" 都命中，依出現順序以 salt 為準
	for i := 0; i < 20; i++ {
		assert.Equal(t, "For the dough", groups.Lookup("salted mozzarella cheese"))
	}
}

func TestGroupMap_LookupPrefixBeforeComma(t *testing.T) {
	text := `Recipe: Butter Cake
Ingredients:
For the batter:
  - 100g butter, softened
`
	groups := ExtractGroups(text)

	// 名稱只保留逗號前的部分時也要命中
	assert.Equal(t, "For the batter", groups.Lookup("butter"))
}

package ai

// recipeExample 少樣本示範，輸入文字與期望的 JSON 輸出成對出現
type recipeExample struct {
	Input  string
	Output string
}

var recipeExamples = []recipeExample{
	{
		Input: `Chocolate Chip Cookies

Ingredients:
- 2 1/4 cups all-purpose flour
- 1 tsp baking soda
- 1 tsp salt
- 1 cup butter, softened
- 3/4 cup granulated sugar
- 2 large eggs
- 2 cups chocolate chips
- Powdered Sugar
- Baking paper`,
		Output: `{
  "title": "Chocolate Chip Cookies",
  "servings": null,
  "ingredients": [
    {"name": "all-purpose flour", "quantity": 2.25, "unit": "cups", "group": null},
    {"name": "baking soda", "quantity": 1, "unit": "tsp", "group": null},
    {"name": "salt", "quantity": 1, "unit": "tsp", "group": null},
    {"name": "butter, softened", "quantity": 1, "unit": "cup", "group": null},
    {"name": "granulated sugar", "quantity": 0.75, "unit": "cup", "group": null},
    {"name": "eggs", "quantity": 2, "unit": "large", "group": null},
    {"name": "chocolate chips", "quantity": 2, "unit": "cups", "group": null},
    {"name": "Powdered Sugar", "quantity": null, "unit": null, "group": null},
    {"name": "Baking paper", "quantity": null, "unit": null, "group": null}
  ]
}`,
	},
	{
		Input: `Gewürzkuchen

Zutaten:
- 4 Ei(er)
- 300 g Zucker
- 350 g Mehl
- 1 Pck. Backpulver
- 250 ml Olivenöl
- 1 TL, gehäuft Salz
- 2 Paprikaschote(n), rote
- Petersilie
- Salz und Pfeffer
- Oregano`,
		Output: `{
  "title": "Gewürzkuchen",
  "servings": null,
  "ingredients": [
    {"name": "Ei(er)", "quantity": 4, "unit": null, "group": null},
    {"name": "Zucker", "quantity": 300, "unit": "g", "group": null},
    {"name": "Mehl", "quantity": 350, "unit": "g", "group": null},
    {"name": "Backpulver", "quantity": 1, "unit": "Pck.", "group": null},
    {"name": "Olivenöl", "quantity": 250, "unit": "ml", "group": null},
    {"name": "Salz, gehäuft", "quantity": 1, "unit": "TL", "group": null},
    {"name": "Paprikaschote(n), rote", "quantity": 2, "unit": null, "group": null},
    {"name": "Petersilie", "quantity": null, "unit": null, "group": null},
    {"name": "Salz und Pfeffer", "quantity": null, "unit": null, "group": null},
    {"name": "Oregano", "quantity": null, "unit": null, "group": null}
  ]
}`,
	},
	{
		Input: `Recipe: Pizza Dough

Ingredients:

For the dough:
  - 500g Flour
  - 300ml Water, lukewarm
  - 1TL Salt
  - 7g Yeast

For the topping:
  - 200g Tomato sauce
  - 300g Mozzarella
  - Basil
  - Olive oil`,
		Output: `{
  "title": "Pizza Dough",
  "servings": null,
  "ingredients": [
    {"name": "Flour", "quantity": 500, "unit": "g", "group": "For the dough"},
    {"name": "Water, lukewarm", "quantity": 300, "unit": "ml", "group": "For the dough"},
    {"name": "Salt", "quantity": 1, "unit": "TL", "group": "For the dough"},
    {"name": "Yeast", "quantity": 7, "unit": "g", "group": "For the dough"},
    {"name": "Tomato sauce", "quantity": 200, "unit": "g", "group": "For the topping"},
    {"name": "Mozzarella", "quantity": 300, "unit": "g", "group": "For the topping"},
    {"name": "Basil", "quantity": null, "unit": null, "group": "For the topping"},
    {"name": "Olive oil", "quantity": null, "unit": null, "group": "For the topping"}
  ]
}`,
	},
	{
		Input: `Recipe: Beef Stew

Ingredients:
- 1.5kg/ 3.3lb beef chuck, cubed
- 500ml/ 2 cups beef broth
- 3 tbsp/ 45g butter
- 2 large onions
- Salt and pepper

For serving:
- Fresh parsley`,
		Output: `{
  "title": "Beef Stew",
  "servings": null,
  "ingredients": [
    {"name": "beef chuck, cubed", "quantity": 1.5, "unit": "kg", "group": null},
    {"name": "beef broth", "quantity": 500, "unit": "ml", "group": null},
    {"name": "butter", "quantity": 3, "unit": "tbsp", "group": null},
    {"name": "onions", "quantity": 2, "unit": "large", "group": null},
    {"name": "Salt and pepper", "quantity": null, "unit": null, "group": null},
    {"name": "Fresh parsley", "quantity": null, "unit": null, "group": "For serving"}
  ]
}`,
	},
}

package recipe

// Ingredient 單一食材的結構化表示
// Quantity 與 Unit 各自可缺；單位欄位只放標準計量單位，
// 備註（如 gehäuft、softened）一律併入 Name
type Ingredient struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit,omitempty"`
	Group    string   `json:"group,omitempty"`
}

// Clone 複製食材（Quantity 指針也複製，避免共享）
func (i Ingredient) Clone() Ingredient {
	out := i
	if i.Quantity != nil {
		q := *i.Quantity
		out.Quantity = &q
	}
	return out
}

// Recipe 結構化食譜
// Ingredients 順序即來源文件順序，所有轉換都必須保留
type Recipe struct {
	Title       string       `json:"title"`
	Servings    int          `json:"servings,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}

// 提取方式標記
const (
	MethodJSONLD = "json-ld"
	MethodAI     = "ai"
)

// ExtractionResult 提取結果，附帶使用的提取方式
type ExtractionResult struct {
	Recipe           *Recipe `json:"recipe"`
	ExtractionMethod string  `json:"extraction_method"`
	UsedAI           bool    `json:"used_ai"`
}

// Float 方便建立 *float64 的輔助函數
func Float(v float64) *float64 {
	return &v
}

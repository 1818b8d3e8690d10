package scrape

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/pkg/common"
)

// LocateRecipe 在 HTML 的 JSON-LD 區塊中尋找 schema.org Recipe
// 支援頂層物件、頂層陣列與 @graph 包裝三種形態
func LocateRecipe(htmlBody []byte) (recipe.StructuredFields, bool) {
	doc, err := html.Parse(bytes.NewReader(htmlBody))
	if err != nil {
		common.LogWarn("HTML 解析失敗", zap.Error(err))
		return recipe.StructuredFields{}, false
	}

	scripts := collectJSONLD(doc)
	common.LogDebug("掃描 JSON-LD 區塊", zap.Int("count", len(scripts)))

	for _, raw := range scripts {
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			continue
		}
		node := findRecipeNode(parsed)
		if node == nil {
			continue
		}
		return structuredFieldsFrom(node), true
	}
	return recipe.StructuredFields{}, false
}

// RenderStructuredText 將結構化欄位轉成正規化文字
// 刻意不含做法步驟，避免從做法中重複抽出食材
func RenderStructuredText(fields recipe.StructuredFields) string {
	var parts []string
	if fields.Name != "" {
		parts = append(parts, "Recipe: "+fields.Name)
	}
	if y := fields.Yield.First(); y != "" {
		parts = append(parts, "\nServings: "+y)
	}
	if len(fields.IngredientLines) > 0 {
		parts = append(parts, "\nIngredients:")
		for _, line := range fields.IngredientLines {
			parts = append(parts, "- "+line)
		}
	}
	return strings.Join(parts, "\n")
}

// collectJSONLD 收集所有 application/ld+json script 的內容
func collectJSONLD(doc *html.Node) []string {
	var scripts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, attr := range n.Attr {
				if attr.Key == "type" && strings.Contains(strings.ToLower(attr.Val), "ld+json") {
					var sb strings.Builder
					for c := n.FirstChild; c != nil; c = c.NextSibling {
						if c.Type == html.TextNode {
							sb.WriteString(c.Data)
						}
					}
					if s := strings.TrimSpace(sb.String()); s != "" {
						scripts = append(scripts, s)
					}
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return scripts
}

// isRecipeNode 判斷節點的 @type 是否為 Recipe（字串或陣列皆可）
func isRecipeNode(v interface{}) bool {
	node, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	switch t := node["@type"].(type) {
	case string:
		return t == "Recipe"
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

// findRecipeNode 從解析後的 JSON-LD 中找出 Recipe 節點
func findRecipeNode(parsed interface{}) map[string]interface{} {
	switch t := parsed.(type) {
	case []interface{}:
		for _, item := range t {
			if isRecipeNode(item) {
				return item.(map[string]interface{})
			}
		}
	case map[string]interface{}:
		if graph, ok := t["@graph"].([]interface{}); ok {
			for _, item := range graph {
				if isRecipeNode(item) {
					return item.(map[string]interface{})
				}
			}
			return nil
		}
		if isRecipeNode(t) {
			return t
		}
	}
	return nil
}

// structuredFieldsFrom 取出需要的欄位，其餘 schema.org 欄位忽略
func structuredFieldsFrom(node map[string]interface{}) recipe.StructuredFields {
	fields := recipe.StructuredFields{
		Name: firstString(node["name"]),
	}
	if y := firstString(node["recipeYield"]); y != "" {
		fields.Yield = recipe.StringOrList{y}
	}
	if lines, ok := node["recipeIngredient"].([]interface{}); ok {
		for _, item := range lines {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					fields.IngredientLines = append(fields.IngredientLines, s)
				}
			}
		}
	}
	return fields
}

// firstString 將字串、數字或陣列第一個元素轉成字串
func firstString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []interface{}:
		for _, item := range t {
			if s := firstString(item); s != "" {
				return s
			}
		}
	}
	return ""
}

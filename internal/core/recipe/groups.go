package recipe

import (
	"strings"
)

// GroupMap 小寫食材名稱片段到群組名稱的映射
// 片段依出現順序保存，Lookup 命中多個片段時以先出現者為準
type GroupMap struct {
	fragments  []string
	byFragment map[string]string
}

// Len 返回已收錄的片段數量
func (g GroupMap) Len() int {
	return len(g.fragments)
}

// Get 以片段精確查詢群組名稱
func (g GroupMap) Get(fragment string) string {
	return g.byFragment[fragment]
}

func (g *GroupMap) add(fragment, group string) {
	if g.byFragment == nil {
		g.byFragment = map[string]string{}
	}
	if _, ok := g.byFragment[fragment]; !ok {
		g.fragments = append(g.fragments, fragment)
	}
	g.byFragment[fragment] = group
}

// leadingNumeralStripped 去掉行首數量 token，留下名稱片段
func leadingNumeralStripped(line string) string {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// ExtractGroups 從格式化文字解析食材群組結構
// 只適用於帶 "Ingredients:" 標記的結構化文字：群組標題以冒號結尾且不縮排，
// 食材行縮排兩格並以 "-" 開頭，遇到 instructions 行即停止
func ExtractGroups(text string) GroupMap {
	groups := GroupMap{}
	if text == "" || !strings.Contains(text, "\nIngredients:\n") {
		return groups
	}

	currentGroup := ""
	inIngredients := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if stripped == "Ingredients:" {
			inIngredients = true
			continue
		}

		if inIngredients && strings.HasPrefix(strings.ToLower(stripped), "instructions") {
			break
		}

		if !inIngredients {
			continue
		}

		if stripped != "" && strings.HasSuffix(stripped, ":") &&
			!strings.HasPrefix(line, "  ") && !strings.HasPrefix(stripped, "-") {
			currentGroup = strings.TrimRight(stripped, ":")
			continue
		}

		if strings.HasPrefix(line, "  -") {
			ingredientLine := strings.TrimSpace(strings.TrimLeft(stripped, "- "))
			fragment := leadingNumeralStripped(ingredientLine)
			if currentGroup != "" && fragment != "" {
				groups.add(strings.ToLower(fragment), currentGroup)
			}
		}
	}

	return groups
}

// Lookup 以近似比對找出食材所屬群組
// 片段包含於名稱中，或名稱以片段第一個逗號前的部分開頭即視為命中；
// 這是啟發式比對，因為 AI/規則取出的名稱與原始行的斷詞可能略有出入
func (g GroupMap) Lookup(name string) string {
	if len(g.fragments) == 0 {
		return ""
	}

	nameLower := strings.ToLower(name)
	for _, fragment := range g.fragments {
		group := g.byFragment[fragment]
		if strings.Contains(nameLower, fragment) {
			return group
		}
		prefix := strings.TrimSpace(strings.SplitN(fragment, ",", 2)[0])
		if prefix != "" && strings.HasPrefix(nameLower, prefix) {
			return group
		}
	}
	return ""
}

package scrape

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// 不含正文內容的元素，取文字時整棵子樹跳過
var strippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"iframe":   true,
	"noscript": true,
	"svg":      true,
}

// class 或 id 帶有這些片段的區塊視為雜訊
var noisePatterns = []string{
	"advertisement", "social-share", "comment",
	"navigation", "sidebar", "newsletter",
	"cookie-banner", "popup", "modal",
}

// 找不到食譜容器、退回整頁掃描時額外剔除的片段
var fallbackNoisePatterns = []string{"related", "recommendation"}

// ExtractText 從 HTML 取出純文字，供 AI 抽取用
// 優先鎖定食譜容器元素，剔除導覽、廣告等雜訊後逐行整理，
// 超過 maxLength 時截斷以控制提示詞長度
func ExtractText(htmlBody []byte, maxLength int) string {
	doc, err := html.Parse(bytes.NewReader(htmlBody))
	if err != nil {
		return ""
	}

	root, scoped := findRecipeContainer(doc)
	patterns := noisePatterns
	if !scoped {
		patterns = append(append([]string{}, noisePatterns...), fallbackNoisePatterns...)
	}

	var sb strings.Builder
	collectText(root, patterns, &sb)
	text := cleanText(sb.String())

	if maxLength > 0 && len(text) > maxLength {
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

// findRecipeContainer 依優先序尋找食譜容器元素
// 找不到時回傳整份文件，scoped 為 false
func findRecipeContainer(doc *html.Node) (root *html.Node, scoped bool) {
	matchers := []func(n *html.Node) bool{
		func(n *html.Node) bool { return strings.Contains(attrValue(n, "itemtype"), "Recipe") },
		func(n *html.Node) bool { return hasClassToken(n, "recipe") },
		func(n *html.Node) bool { return attrValue(n, "id") == "recipe" },
		func(n *html.Node) bool { return n.Data == "article" },
	}
	for _, match := range matchers {
		if node := findElement(doc, match); node != nil {
			return node, true
		}
	}
	return doc, false
}

// findElement 深度優先找出第一個符合條件的元素
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

// collectText 收集子樹內的文字節點，跳過雜訊元素
func collectText(n *html.Node, patterns []string, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		if strippedElements[n.Data] {
			return
		}
		if matchesNoise(n, patterns) {
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString("\n")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, patterns, sb)
	}
}

// matchesNoise 檢查元素的 class 或 id 是否帶有雜訊片段
func matchesNoise(n *html.Node, patterns []string) bool {
	class := strings.ToLower(attrValue(n, "class"))
	id := strings.ToLower(attrValue(n, "id"))
	if class == "" && id == "" {
		return false
	}
	for _, pattern := range patterns {
		if (class != "" && strings.Contains(class, pattern)) ||
			(id != "" && strings.Contains(id, pattern)) {
			return true
		}
	}
	return false
}

// cleanText 逐行整理文字
// 每行去除前後空白，行內以連續兩個空格切段，丟棄空段
func cleanText(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, "\n")
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasClassToken(n *html.Node, token string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == token {
			return true
		}
	}
	return false
}

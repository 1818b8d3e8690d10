package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_ScopesToRecipeContainer(t *testing.T) {
	body := []byte(`<html><body>
<p>Welcome to my food blog, here is my life story.</p>
<div class="recipe">
<h1>Pancakes</h1>
<p>1 cup flour</p>
<p>2 eggs</p>
</div>
<p>Check out these other posts.</p>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Pancakes")
	assert.Contains(t, text, "1 cup flour")
	assert.NotContains(t, text, "life story")
	assert.NotContains(t, text, "other posts")
}

func TestExtractText_ItemtypeContainerWins(t *testing.T) {
	body := []byte(`<html><body>
<div itemscope itemtype="https://schema.org/Recipe">
<h1>Beef Stew</h1>
<p>2 lbs beef chuck</p>
</div>
<article><p>An unrelated article.</p></article>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Beef Stew")
	assert.NotContains(t, text, "unrelated article")
}

func TestExtractText_StripsNonContentElements(t *testing.T) {
	body := []byte(`<html><head><script>var x = 1;</script><style>.a{color:red}</style></head>
<body>
<nav>Home | About</nav>
<article>
<h1>Soup</h1>
<p>1 onion</p>
</article>
<footer>Copyright 2026</footer>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Soup")
	assert.Contains(t, text, "1 onion")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_RemovesNoiseBlocks(t *testing.T) {
	body := []byte(`<html><body>
<article>
<h1>Salad</h1>
<div class="advertisement">Buy our stuff</div>
<div id="comment-section">Great recipe!!!</div>
<div class="social-share-bar">Share on social</div>
<p>2 tomatoes</p>
</article>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Salad")
	assert.Contains(t, text, "2 tomatoes")
	assert.NotContains(t, text, "Buy our stuff")
	assert.NotContains(t, text, "Great recipe")
	assert.NotContains(t, text, "Share on social")
}

func TestExtractText_FallbackStripsRelatedBlocks(t *testing.T) {
	// 沒有食譜容器時退回整頁掃描，related 區塊也要剔除
	body := []byte(`<html><body>
<div>
<h1>Muffins</h1>
<p>1 cup sugar</p>
</div>
<div class="related-posts">You may also like</div>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Muffins")
	assert.NotContains(t, text, "You may also like")
}

func TestExtractText_ScopedKeepsRelatedBlocks(t *testing.T) {
	// 已鎖定容器時不套用退回模式的額外剔除
	body := []byte(`<html><body>
<article>
<h1>Muffins</h1>
<p class="related-note">Related to grandma's version</p>
</article>
</body></html>`)

	text := ExtractText(body, 8000)
	assert.Contains(t, text, "Related to grandma's version")
}

func TestExtractText_CleansWhitespace(t *testing.T) {
	body := []byte("<html><body><article><p>   1 cup flour     2 eggs   </p><p>\n\n\n</p></article></body></html>")

	text := ExtractText(body, 8000)
	assert.Equal(t, "1 cup flour\n2 eggs", text)
}

func TestExtractText_TruncatesAtMaxLength(t *testing.T) {
	long := strings.Repeat("flour and sugar and butter ", 200)
	body := []byte("<html><body><article><p>" + long + "</p></article></body></html>")

	text := ExtractText(body, 100)
	assert.LessOrEqual(t, len(text), 100)
	assert.NotEmpty(t, text)
}

func TestExtractText_TruncationKeepsValidUTF8(t *testing.T) {
	body := []byte("<html><body><article><p>" + strings.Repeat("Gewürzkuchen ", 100) + "</p></article></body></html>")

	for _, limit := range []int{50, 51, 52, 53} {
		text := ExtractText(body, limit)
		assert.True(t, strings.ToValidUTF8(text, "") == text, "truncated text must stay valid UTF-8")
	}
}

package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unicodeFractions Unicode 分數字元對應的十進位值
var unicodeFractions = []struct {
	glyph string
	value float64
}{
	{"½", 0.5},
	{"⅓", 0.333},
	{"⅔", 0.667},
	{"¼", 0.25},
	{"¾", 0.75},
	{"⅛", 0.125},
	{"⅜", 0.375},
	{"⅝", 0.625},
	{"⅞", 0.875},
}

// mixedNumberPatterns 帶分數樣式（如 "2½"），每個分數字元一個
var mixedNumberPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(unicodeFractions))
	for i, f := range unicodeFractions {
		patterns[i] = regexp.MustCompile(`(\d+)` + regexp.QuoteMeta(f.glyph))
	}
	return patterns
}()

// applyUnicodeFractions 將 Unicode 分數字元替換為十進位
// 帶分數先處理（"2½" -> "2.5"），剩下的單獨分數直接替換
func applyUnicodeFractions(text string) string {
	for i, f := range unicodeFractions {
		text = mixedNumberPatterns[i].ReplaceAllStringFunc(text, func(m string) string {
			whole, err := strconv.Atoi(strings.TrimSuffix(m, f.glyph))
			if err != nil {
				return m
			}
			return strconv.FormatFloat(float64(whole)+f.value, 'f', -1, 64)
		})
		text = strings.ReplaceAll(text, f.glyph, strconv.FormatFloat(f.value, 'f', -1, 64))
	}
	return text
}

// parseFraction 解析 "1/2" 這類簡單分數，無分數線時退回 ParseFloat
func parseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return strconv.ParseFloat(s, 64)
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid fraction format: %s", s)
	}

	numerator, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, err
	}
	denominator, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, fmt.Errorf("fraction has zero denominator: %s", s)
	}

	return numerator / denominator, nil
}

// ParseQuantity 解析數量字串（"2"、"1/2"、"2 1/2"、"½"、"2½"）
// 解析失敗回傳 nil，絕不 panic；成功時保證為有限非負數
func ParseQuantity(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var value float64
	if strings.Contains(text, "/") {
		// "2 1/2" 先以空白切開，各部分求值後相加
		sum := 0.0
		for _, part := range strings.Fields(text) {
			v, err := parseFraction(part)
			if err != nil {
				return nil
			}
			sum += v
		}
		value = sum
	} else {
		v, err := strconv.ParseFloat(applyUnicodeFractions(text), 64)
		if err != nil {
			return nil
		}
		value = v
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil
	}
	return &value
}

package extract

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"recipe-extractor/internal/core/ai"
	"recipe-extractor/internal/core/ai/cache"
	"recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/core/scrape"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

// Service 食譜提取服務
// 串起抓取、JSON-LD 定位與 AI 後備三個階段，結果可選擇性進 Redis 快取
type Service struct {
	config      *config.Config
	fetcher     *scrape.Fetcher
	extractor   *ai.Extractor
	resultCache *cache.Service
}

// NewService 創建提取服務，resultCache 可為 nil（停用結果快取）
func NewService(cfg *config.Config, fetcher *scrape.Fetcher, extractor *ai.Extractor, resultCache *cache.Service) *Service {
	return &Service{
		config:      cfg,
		fetcher:     fetcher,
		extractor:   extractor,
		resultCache: resultCache,
	}
}

// ExtractFromURL 從網址提取食譜
// 頁面帶有 schema.org Recipe 時直接解析，省去 AI 推論；
// 無結構化資料時退回純文字加 AI 抽取。提取不到食譜回傳 ErrExtractionEmpty
func (s *Service) ExtractFromURL(ctx context.Context, rawURL string) (*recipe.ExtractionResult, error) {
	if s.resultCache != nil {
		if cached, err := s.resultCache.Get(ctx, rawURL); err == nil && cached != nil {
			common.LogCacheHit("recipe", rawURL)
			return cached, nil
		}
		common.LogCacheMiss("recipe", rawURL)
	}

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var (
		result *recipe.Recipe
		method string
	)

	fields, found := scrape.LocateRecipe(body)
	if found {
		common.LogInfo("找到結構化食譜資料，跳過 AI 推論", zap.String("url", rawURL))
		text := scrape.RenderStructuredText(fields)
		if len(strings.TrimSpace(text)) < s.config.Extract.MinTextLength {
			common.LogWarn("結構化內容過短",
				zap.String("url", rawURL),
				zap.Int("length", len(text)))
			return nil, common.ErrExtractionEmpty
		}
		result = recipe.ParseStructured(fields, text)
		method = recipe.MethodJSONLD
	} else {
		common.LogInfo("無結構化資料，改用 AI 抽取", zap.String("url", rawURL))
		text := scrape.ExtractText(body, s.config.Extract.MaxTextLength)
		result, err = s.extractor.ExtractRecipe(ctx, text)
		if err != nil {
			return nil, err
		}
		method = recipe.MethodAI
	}

	if result == nil {
		common.LogWarn("提取不到食譜", zap.String("url", rawURL))
		return nil, common.ErrExtractionEmpty
	}

	extraction := &recipe.ExtractionResult{
		Recipe:           result,
		ExtractionMethod: method,
		UsedAI:           method == recipe.MethodAI,
	}

	if s.resultCache != nil {
		if err := s.resultCache.Set(ctx, rawURL, extraction); err != nil {
			common.LogWarn("結果快取寫入失敗", zap.Error(err))
		}
	}

	common.LogInfo("食譜提取成功",
		zap.String("url", rawURL),
		zap.String("title", result.Title),
		zap.String("method", method),
		zap.Int("ingredients", len(result.Ingredients)))
	return extraction, nil
}

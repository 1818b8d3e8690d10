package service

import (
	"context"
	"fmt"
	"strings"

	"recipe-extractor/internal/core/ai/cache"
	"recipe-extractor/internal/core/ai/provider"
	"recipe-extractor/internal/core/ai/queue"
	"recipe-extractor/internal/infrastructure/config"
)

// Response AI 回應結構
type Response struct {
	Content string
}

// Service AI 服務
// 統一入口：先查快取，未命中時經由請求隊列送到提供者
type Service struct {
	config       *config.Config
	queueManager *queue.Manager
	cacheManager *cache.CacheManager
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, p provider.Provider, cacheManager *cache.CacheManager) (*Service, error) {
	if p == nil {
		return nil, fmt.Errorf("provider is required")
	}

	queueManager := queue.NewManager(cfg.Queue.Workers, cfg.Queue.MaxSize, p)

	return &Service{
		config:       cfg,
		queueManager: queueManager,
		cacheManager: cacheManager,
	}, nil
}

// ProcessRequest 統一對外方法
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	// 快取 key 使用統一空白的版本，prompt 本身保持原樣
	cacheKey := strings.Join(strings.Fields(prompt), " ")

	// 檢查緩存
	if s.config.Cache.Enabled && s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, cacheKey); err == nil && val != "" {
			return &Response{Content: val}, nil
		}
	}

	resultCh, err := s.queueManager.Enqueue(ctx, &provider.Request{
		Messages: []provider.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens: s.config.OpenRouter.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	select {
	case result := <-resultCh:
		if result.Error != nil {
			return nil, result.Error
		}
		content := result.Response.Content

		if s.config.Cache.Enabled && s.cacheManager != nil {
			_ = s.cacheManager.Set(ctx, cacheKey, content)
		}

		return &Response{Content: content}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QueueStatus 獲取隊列狀態
func (s *Service) QueueStatus() queue.Status {
	return s.queueManager.GetStatus()
}

// Close 關閉服務
func (s *Service) Close() {
	s.queueManager.Close()
}

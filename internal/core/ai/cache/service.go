package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Service 跨行程的提取結果緩存（Redis）
// 以網址為鍵儲存完整提取結果，重複轉換同一食譜時不必重新抓取與推理
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建緩存服務
func NewService(cfg *config.CacheConfig) (*Service, error) {
	if !cfg.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存的提取結果
func (s *Service) Get(ctx context.Context, url string) (*recipe.ExtractionResult, error) {
	if !s.config.Enabled || s.client == nil {
		return nil, fmt.Errorf("cache is disabled")
	}

	key := s.generateKey(url)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cache miss")
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var result recipe.ExtractionResult
	if err := common.ParseJSONBytes(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}

// Set 設置緩存的提取結果
func (s *Service) Set(ctx context.Context, url string, result *recipe.ExtractionResult) error {
	if !s.config.Enabled || s.client == nil {
		return nil
	}

	data, err := common.ToJSON(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	key := s.generateKey(url)
	if err := s.client.Set(ctx, key, data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// generateKey 生成緩存鍵
func (s *Service) generateKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("recipe:%s", hex.EncodeToString(hash[:]))
}

// Close 關閉 Redis 連接
func (s *Service) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

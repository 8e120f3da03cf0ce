package cache

import (
	"context"
	"fmt"

	"shopping-list-api/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Service redis 快取服務，存放上游餐點規劃文件的原始 JSON
type Service struct {
	client *redis.Client
	config *config.RedisConfig
}

// NewService 創建 redis 快取服務。停用時回傳只帶配置的空服務，操作一律走穿透。
func NewService(cfg *config.RedisConfig) (*Service, error) {
	if !cfg.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
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

// Get 取出快取的文件內容
func (s *Service) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || !s.config.Enabled || s.client == nil {
		return nil, fmt.Errorf("cache is disabled")
	}

	data, err := s.client.Get(ctx, s.prefixed(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cache miss")
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set 寫入文件內容，套用設定的 TTL
func (s *Service) Set(ctx context.Context, key string, data []byte) error {
	if s == nil || !s.config.Enabled || s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, s.prefixed(key), data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 redis 連線
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// prefixed 加上命名空間前綴
func (s *Service) prefixed(key string) string {
	return fmt.Sprintf("mealplan:doc:%s", key)
}

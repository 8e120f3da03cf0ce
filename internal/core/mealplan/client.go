package mealplan

import (
	"context"
	"fmt"
	"net/http"

	"shopping-list-api/internal/core/cache"
	"shopping-list-api/internal/infrastructure/config"
	"shopping-list-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 上游餐點規劃服務的客戶端
type Client struct {
	config *config.Config
	client *resty.Client
	cache  *cache.Service
}

// NewClient 創建餐點規劃服務客戶端
func NewClient(cfg *config.Config, cacheService *cache.Service) *Client {
	client := resty.New().
		SetBaseURL(cfg.Upstream.BaseURL).
		SetTimeout(cfg.Upstream.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Upstream.APIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Upstream.APIKey))
	}

	return &Client{
		config: cfg,
		client: client,
		cache:  cacheService,
	}
}

// GetPlan 取回指定的週計畫文件，優先走 redis 快取
func (c *Client) GetPlan(ctx context.Context, planID string) (*PlanDocument, error) {
	if !c.config.Upstream.Enabled {
		return nil, common.ErrUpstreamDisabled
	}
	if planID == "" {
		return nil, common.NewValidationError("plan id is required")
	}

	// 快取查詢
	if data, err := c.cache.Get(ctx, planID); err == nil {
		var doc PlanDocument
		if err := common.ParseJSONBytes(data, &doc); err == nil {
			common.LogCacheHit("mealplan")
			return &doc, nil
		}
		// 快取內容壞掉就當未命中，重新抓
		common.LogWarn("快取文件解析失敗，改走上游", zap.String("plan_id", planID))
	}

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/v1/plans/%s", planID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal plan: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// 繼續往下解析
	case http.StatusNotFound:
		return nil, common.ErrPlanNotFound
	default:
		common.LogError("上游餐點規劃服務回傳錯誤",
			zap.Int("status", resp.StatusCode()),
			zap.String("plan_id", planID),
		)
		return nil, fmt.Errorf("meal plan service returned status %d", resp.StatusCode())
	}

	var doc PlanDocument
	if err := common.ParseJSONBytes(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan response: %w", err)
	}

	// 寫回快取，失敗只記 log 不影響回應
	if err := c.cache.Set(ctx, planID, resp.Body()); err != nil {
		common.LogWarn("快取寫入失敗", zap.Error(err), zap.String("plan_id", planID))
	}

	common.LogInfo("已取得餐點規劃文件",
		zap.String("plan_id", planID),
		zap.Int("days", len(doc.Days)),
	)
	return &doc, nil
}

package shoppinglist

import (
	"net/http"
	"strings"

	"shopping-list-api/internal/core/cache"
	"shopping-list-api/internal/core/mealplan"
	listService "shopping-list-api/internal/core/shoppinglist"
	"shopping-list-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AggregateRequest 聚合購物清單的請求
type AggregateRequest struct {
	Meals []listService.MealInput `json:"meals" binding:"required"` // 要併入清單的餐點
}

// AggregateResponse 聚合結果
type AggregateResponse struct {
	ListID    string                                    `json:"list_id"`
	Items     []listService.ShoppingListItemWithSources `json:"items"`
	ItemCount int                                       `json:"item_count"`
	MealCount int                                       `json:"meal_count"`
}

// FromPlanRequest 依餐點規劃編號產生清單的請求
type FromPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// FromPlanResponse 依餐點規劃產生的聚合結果
type FromPlanResponse struct {
	PlanID string `json:"plan_id"`
	AggregateResponse
}

// ParseAmountRequest 解析自由文字數量的請求
type ParseAmountRequest struct {
	Amount string `json:"amount" binding:"required"` // 例如 "1 1/2 cups chopped"
}

// ParseAmountResponse 解析與換算結果
type ParseAmountResponse struct {
	Amount    float64         `json:"amount"`         // 解析出的數字（換算前）
	Unit      string          `json:"unit,omitempty"` // 擷取到的原始單位 token
	Rest      string          `json:"rest,omitempty"` // 單位之後剩下的文字
	Converted listService.Qty `json:"converted"`      // 換算到首選單位後的數量
}

// FormatRequest 純文字渲染的請求
type FormatRequest struct {
	Items []listService.ShoppingListItemWithSources `json:"items" binding:"required"`
}

// Handler 購物清單處理程序
type Handler struct {
	aggregator   *listService.Aggregator
	cacheManager *cache.Manager
	planClient   *mealplan.Client
}

// NewHandler 創建新的購物清單處理程序
func NewHandler(aggregator *listService.Aggregator, cacheManager *cache.Manager, planClient *mealplan.Client) *Handler {
	return &Handler{
		aggregator:   aggregator,
		cacheManager: cacheManager,
		planClient:   planClient,
	}
}

// requestID 取出或補上請求 ID
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Header("X-Request-ID", id)
	}
	return id
}

// HandleAggregate 把請求中的餐點聚合成購物清單
func (h *Handler) HandleAggregate(c *gin.Context) {
	reqID := requestID(c)

	common.LogInfo("開始處理購物清單聚合請求",
		zap.String("request_id", reqID),
		zap.String("client_ip", c.ClientIP()),
	)

	// 先讀原始內容算哈希，命中快取就直接回
	body, err := c.GetRawData()
	if err != nil {
		common.LogError("讀取請求體失敗", zap.Error(err), zap.String("request_id", reqID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	bodyHash := common.HashBytes(body)

	if cached, err := h.cacheManager.Get(c.Request.Context(), bodyHash); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	var req AggregateRequest
	if err := common.ParseJSONBytes(body, &req); err != nil || req.Meals == nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(req.Meals) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Meal list is empty",
			"code":  common.ErrEmptyMealList.Code,
		})
		return
	}

	items := h.aggregator.BuildFromMeals(req.Meals)

	response := AggregateResponse{
		ListID:    uuid.New().String(),
		Items:     items,
		ItemCount: len(items),
		MealCount: len(req.Meals),
	}

	common.LogInfo("購物清單聚合完成",
		zap.String("request_id", reqID),
		zap.Int("meal_count", len(req.Meals)),
		zap.Int("item_count", len(items)),
	)

	// 寫回快取，失敗不影響回應
	if data, err := common.ToJSON(response); err == nil {
		if err := h.cacheManager.Set(c.Request.Context(), bodyHash, data); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err), zap.String("request_id", reqID))
		}
	}

	c.JSON(http.StatusOK, response)
}

// HandleFromPlan 依餐點規劃編號產生購物清單
func (h *Handler) HandleFromPlan(c *gin.Context) {
	reqID := requestID(c)

	var req FromPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	doc, err := h.planClient.GetPlan(c.Request.Context(), req.PlanID)
	if err != nil {
		common.LogError("取得餐點規劃失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
			zap.String("plan_id", req.PlanID),
		)
		if custom, ok := err.(*common.CustomError); ok {
			c.JSON(custom.Status, gin.H{"error": custom.Message, "code": custom.Code})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Meal plan service error",
			"code":  common.ErrUpstreamError.Code,
		})
		return
	}

	meals := mealplan.Flatten(doc)
	if len(meals) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Meal plan contains no meals",
			"code":  common.ErrEmptyMealList.Code,
		})
		return
	}

	items := h.aggregator.BuildFromMeals(meals)

	common.LogInfo("依餐點規劃產生購物清單完成",
		zap.String("request_id", reqID),
		zap.String("plan_id", req.PlanID),
		zap.Int("meal_count", len(meals)),
		zap.Int("item_count", len(items)),
	)

	c.JSON(http.StatusOK, FromPlanResponse{
		PlanID: req.PlanID,
		AggregateResponse: AggregateResponse{
			ListID:    uuid.New().String(),
			Items:     items,
			ItemCount: len(items),
			MealCount: len(meals),
		},
	})
}

// HandleParseAmount 解析數量與單位連在一起的自由文字
func (h *Handler) HandleParseAmount(c *gin.Context) {
	var req ParseAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	parsed := listService.ParseAmount(req.Amount)
	converted := listService.NormalizeUnit(parsed.Amount, parsed.Unit)

	c.JSON(http.StatusOK, ParseAmountResponse{
		Amount:    parsed.Amount,
		Unit:      parsed.Unit,
		Rest:      parsed.Rest,
		Converted: converted,
	})
}

// HandleFormat 把清單項目渲染成純文字，一行一項
func (h *Handler) HandleFormat(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, listService.FormatItemDisplay(item))
	}

	c.String(http.StatusOK, strings.Join(lines, "\n"))
}

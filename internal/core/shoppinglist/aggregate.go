package shoppinglist

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"shopping-list-api/internal/core/shoppinglist/category"
	"shopping-list-api/internal/pkg/common"

	"go.uber.org/zap"
)

// CategorizeFunc 食材名稱到賣場分區的查表函式
type CategorizeFunc func(name string) string

// Aggregator 購物清單聚合器。每次 BuildFromMeals 呼叫都配置自己的工作狀態，
// 無共享可變狀態，可被多個請求併發使用。
type Aggregator struct {
	canon      *Canonicalizer
	categorize CategorizeFunc
	aisleOrder []string
}

// NewAggregator 建構聚合器。categorize 與 aisleOrder 傳 nil/空值時
// 使用內建的分區查表。
func NewAggregator(canon *Canonicalizer, categorize CategorizeFunc, aisleOrder []string) *Aggregator {
	if canon == nil {
		canon = DefaultCanonicalizer()
	}
	if categorize == nil {
		categorize = category.Categorize
	}
	if len(aisleOrder) == 0 {
		aisleOrder = category.AisleOrder
	}
	return &Aggregator{
		canon:      canon,
		categorize: categorize,
		aisleOrder: aisleOrder,
	}
}

// BuildFromMeals 把多份餐點的食材合併成去重後的購物清單。
//
// 分組不變式：兩筆食材只要正規化名稱（不分大小寫）與換算後單位都相同，
// 就必定落在同一個輸出項目裡，數量加總、來源各留一筆；
// 與餐點順序、原始寫法、原始單位拼寫無關。
//
// 不合法的單筆紀錄一律略過不中斷；輸入本身不是合法結構才由呼叫端負責。
func (a *Aggregator) BuildFromMeals(meals []MealInput) []ShoppingListItemWithSources {
	groups := make(map[string]*ShoppingListItemWithSources)
	var insertion []string // 保留插入順序，map 迭代順序不可靠

	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			// 缺名稱或數量非有限數：略過並記 warning
			if strings.TrimSpace(ing.Name) == "" {
				common.LogWarn("略過無效的食材紀錄",
					zap.String("原因", "名稱為空"),
					zap.String("meal_id", meal.MealID),
				)
				continue
			}
			if math.IsNaN(ing.Quantity) || math.IsInf(ing.Quantity, 0) {
				common.LogWarn("略過無效的食材紀錄",
					zap.String("原因", "數量非有限數"),
					zap.String("meal_id", meal.MealID),
					zap.String("name", ing.Name),
				)
				continue
			}
			// 零或負的數量視為「沒有東西要加」，安靜略過
			if ing.Quantity <= 0 {
				continue
			}

			name := a.canon.CanonicalName(ing.Name)
			if name == "" {
				// 整個名稱都是描述詞或標點，沒有可分組的內容
				common.LogWarn("略過無效的食材紀錄",
					zap.String("原因", "正規化後名稱為空"),
					zap.String("meal_id", meal.MealID),
					zap.String("name", ing.Name),
				)
				continue
			}

			qty := NormalizeUnit(ing.Quantity, ing.Unit)
			key := strings.ToLower(name) + "|" + qty.Unit

			source := MealSource{
				MealID:    meal.MealID,
				MealName:  meal.MealName,
				Generator: meal.Generator,
				Day:       meal.Day,
				Slot:      meal.Slot,
				Qty:       FormatQty(qty.Amount),
				Unit:      qty.Unit,
			}

			if item, exists := groups[key]; exists {
				item.TotalQty += qty.Amount
				item.Sources = append(item.Sources, source)
				continue
			}
			groups[key] = &ShoppingListItemWithSources{
				Key:      key,
				Name:     name,
				TotalQty: qty.Amount,
				Unit:     qty.Unit,
				Category: a.categorize(name),
				Sources:  []MealSource{source},
			}
			insertion = append(insertion, key)
		}
	}

	items := make([]ShoppingListItemWithSources, 0, len(insertion))
	for _, key := range insertion {
		items = append(items, *groups[key])
	}

	// 主鍵：分區在動線順序中的位置（不在清單內的 indexOf 得 -1，排最前）；
	// 次鍵：正規化名稱，大小寫敏感字典序。
	sort.SliceStable(items, func(i, j int) bool {
		pi := aisleIndex(a.aisleOrder, items[i].Category)
		pj := aisleIndex(a.aisleOrder, items[j].Category)
		if pi != pj {
			return pi < pj
		}
		return strings.Compare(items[i].Name, items[j].Name) < 0
	})

	return items
}

// aisleIndex 分區在動線順序中的位置，找不到回傳 -1
func aisleIndex(order []string, cat string) int {
	for i, c := range order {
		if c == cat {
			return i
		}
	}
	return -1
}

// FormatQty 把換算後的數量轉成顯示字串，四捨五入到兩位小數並去掉尾端零
func FormatQty(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

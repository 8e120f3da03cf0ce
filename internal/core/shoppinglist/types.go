// Package shoppinglist 將多個餐點中零散的食材紀錄合併成一份
// 去重、單位統一、依賣場分區排序的購物清單，並保留完整的來源追溯。
package shoppinglist

// 餐點時段
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

// UniversalIngredient 單一餐點內的一筆食材紀錄
type UniversalIngredient struct {
	Name     string  `json:"name"`               // 原始食材文字（例如 "Grilled Chicken Breast"）
	Quantity float64 `json:"quantity"`           // 數量，已由產生端與單位拆開
	Unit     string  `json:"unit"`               // 原始單位（"cup"、"tbsp"、"oz"、""…），空字串代表純計數
	Notes    string  `json:"notes,omitempty"`    // 備註，不影響分組
}

// MealInput 要併入清單的一份餐點
type MealInput struct {
	MealID      string                `json:"mealId"`
	MealName    string                `json:"mealName"`
	Generator   string                `json:"generator,omitempty"` // 產生這份餐點的子系統（如 "craving"、"fridge-rescue"）
	Day         string                `json:"day,omitempty"`
	Slot        string                `json:"slot,omitempty"`
	Ingredients []UniversalIngredient `json:"ingredients"`
}

// Qty 換算到首選單位後的數量。Unit 為空字串代表無單位（計數類）。
type Qty struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// MealSource 單筆食材貢獻的來源紀錄（換算後的數量，非原始文字）
type MealSource struct {
	MealID    string `json:"mealId"`
	MealName  string `json:"mealName"`
	Generator string `json:"generator,omitempty"`
	Day       string `json:"day,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Qty       string `json:"qty"`
	Unit      string `json:"unit,omitempty"`
}

// ShoppingListItemWithSources 聚合後的購物清單項目，
// 每個 (正規化名稱, 換算單位) 組合對應一筆。
type ShoppingListItemWithSources struct {
	Key      string       `json:"key"`      // 分組鍵："小寫正規化名稱|單位"
	Name     string       `json:"name"`     // 正規化後的顯示名稱（Title Case）
	TotalQty float64      `json:"totalQty"` // 所有來源換算後數量的總和
	Unit     string       `json:"unit,omitempty"`
	Category string       `json:"category"` // 賣場分區
	Sources  []MealSource `json:"sources"`  // 依處理順序排列，不重排
}

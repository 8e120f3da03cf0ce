// Package category 提供食材名稱到賣場分區的靜態查表。
package category

import "strings"

// DefaultCategory 查無分類時的預設分區
const DefaultCategory = "Other"

// AisleOrder 賣場分區的固定排序（購物動線順序）
var AisleOrder = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy",
	"Bakery",
	"Frozen",
	"Pantry",
	"Beverages",
	"Snacks",
	DefaultCategory,
}

// Categorize 回傳食材名稱對應的賣場分區。
// 不分大小寫：先做精確比對，再做子字串比對，最後退回 DefaultCategory。
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultCategory
	}

	// 第一階段：精確比對
	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// 第二階段：子字串比對（較長、較精確的關鍵字排前面）
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return DefaultCategory
}

// 注意：聚合器送進來的名稱已經過單數化處理，查表鍵以單數為主。
var exactMatch = map[string]string{
	// Produce
	"apple":       "Produce",
	"banana":      "Produce",
	"orange":      "Produce",
	"lemon":       "Produce",
	"lime":        "Produce",
	"avocado":     "Produce",
	"tomato":      "Produce",
	"potato":      "Produce",
	"onion":       "Produce",
	"garlic":      "Produce",
	"lettuce":     "Produce",
	"spinach":     "Produce",
	"kale":        "Produce",
	"broccoli":    "Produce",
	"carrot":      "Produce",
	"celery":      "Produce",
	"cucumber":    "Produce",
	"mushroom":    "Produce",
	"corn":        "Produce",
	"grape":       "Produce",
	"strawberry":  "Produce",
	"blueberry":   "Produce",
	"watermelon":  "Produce",
	"pineapple":   "Produce",
	"mango":       "Produce",
	"peach":       "Produce",
	"pear":        "Produce",
	"cilantro":    "Produce",
	"basil":       "Produce",
	"parsley":     "Produce",
	"ginger":      "Produce",
	"zucchini":    "Produce",
	"asparagus":   "Produce",
	"green bean":  "Produce",
	"bell pepper": "Produce",

	// Dairy
	"milk":           "Dairy",
	"egg":            "Dairy",
	"butter":         "Dairy",
	"cheese":         "Dairy",
	"yogurt":         "Dairy",
	"greek yogurt":   "Dairy",
	"cream cheese":   "Dairy",
	"sour cream":     "Dairy",
	"heavy cream":    "Dairy",
	"cottage cheese": "Dairy",

	// Meat & Seafood
	"chicken":        "Meat & Seafood",
	"chicken breast": "Meat & Seafood",
	"beef":           "Meat & Seafood",
	"pork":           "Meat & Seafood",
	"turkey":         "Meat & Seafood",
	"bacon":          "Meat & Seafood",
	"sausage":        "Meat & Seafood",
	"ham":            "Meat & Seafood",
	"steak":          "Meat & Seafood",
	"salmon":         "Meat & Seafood",
	"shrimp":         "Meat & Seafood",
	"tuna":           "Meat & Seafood",
	"fish":           "Meat & Seafood",
	"tilapia":        "Meat & Seafood",
	"lamb":           "Meat & Seafood",

	// Bakery
	"bread":     "Bakery",
	"bagel":     "Bakery",
	"tortilla":  "Bakery",
	"roll":      "Bakery",
	"bun":       "Bakery",
	"muffin":    "Bakery",
	"croissant": "Bakery",
	"pita":      "Bakery",

	// Pantry
	"rice":          "Pantry",
	"pasta":         "Pantry",
	"flour":         "Pantry",
	"sugar":         "Pantry",
	"salt":          "Pantry",
	"pepper":        "Pantry",
	"oil":           "Pantry",
	"olive oil":     "Pantry",
	"vinegar":       "Pantry",
	"soy sauce":     "Pantry",
	"ketchup":       "Pantry",
	"mustard":       "Pantry",
	"mayonnaise":    "Pantry",
	"honey":         "Pantry",
	"peanut butter": "Pantry",
	"oatmeal":       "Pantry",
	"oat":           "Pantry",
	"cereal":        "Pantry",
	"broth":         "Pantry",
	"bean":          "Pantry",
	"black bean":    "Pantry",
	"lentil":        "Pantry",
	"chickpea":      "Pantry",
	"almond":        "Pantry",
	"walnut":        "Pantry",
	"quinoa":        "Pantry",
	"noodle":        "Pantry",
	"spaghetti":     "Pantry",
	"maple syrup":   "Pantry",
	"hot sauce":     "Pantry",
	"salsa":         "Pantry",
	"hummus":        "Pantry",

	// Beverages
	"water":  "Beverages",
	"juice":  "Beverages",
	"coffee": "Beverages",
	"tea":    "Beverages",

	// Snacks
	"cracker":     "Snacks",
	"popcorn":     "Snacks",
	"granola bar": "Snacks",
	"trail mix":   "Snacks",
	"chocolate":   "Snacks",
}

type substringEntry struct {
	keyword  string
	category string
}

// 依照「長字在前」排序，比對結果才有確定性。
var substringMatches = []substringEntry{
	// Meat & Seafood
	{"chicken breast", "Meat & Seafood"},
	{"chicken thigh", "Meat & Seafood"},
	{"ground beef", "Meat & Seafood"},
	{"ground turkey", "Meat & Seafood"},
	{"pork chop", "Meat & Seafood"},
	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"salmon", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},

	// Dairy
	{"greek yogurt", "Dairy"},
	{"cream cheese", "Dairy"},
	{"sour cream", "Dairy"},
	{"almond milk", "Dairy"},
	{"oat milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},

	// Produce
	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"cherry tomato", "Produce"},
	{"green onion", "Produce"},
	{"baby spinach", "Produce"},
	{"romaine", "Produce"},
	{"arugula", "Produce"},
	{"cabbage", "Produce"},
	{"cauliflower", "Produce"},
	{"squash", "Produce"},
	{"melon", "Produce"},
	{"berry", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"herb", "Produce"},
	{"fruit", "Produce"},

	// Bakery
	{"sourdough", "Bakery"},
	{"whole wheat", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"bun", "Bakery"},
	{"muffin", "Bakery"},

	// Frozen
	{"ice cream", "Frozen"},
	{"frozen", "Frozen"},

	// Pantry
	{"peanut butter", "Pantry"},
	{"olive oil", "Pantry"},
	{"coconut oil", "Pantry"},
	{"maple syrup", "Pantry"},
	{"soy sauce", "Pantry"},
	{"tomato sauce", "Pantry"},
	{"pasta sauce", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"granola", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"spice", "Pantry"},
	{"seasoning", "Pantry"},
	{"sauce", "Pantry"},
	{"broth", "Pantry"},
	{"stock", "Pantry"},
	{"bean", "Pantry"},
	{"lentil", "Pantry"},
	{"nut", "Pantry"},
	{"seed", "Pantry"},
	{"oil", "Pantry"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"coffee", "Beverages"},
	{"juice", "Beverages"},
	{"tea", "Beverages"},
	{"water", "Beverages"},

	// Snacks
	{"granola bar", "Snacks"},
	{"trail mix", "Snacks"},
	{"cracker", "Snacks"},
	{"chip", "Snacks"},
	{"chocolate", "Snacks"},
	{"snack", "Snacks"},
}

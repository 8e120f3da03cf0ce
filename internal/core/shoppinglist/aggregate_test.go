package shoppinglist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromMealsGroupingAndSum(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	meals := []MealInput{
		{
			MealID:   "m1",
			MealName: "Omelette",
			Ingredients: []UniversalIngredient{
				{Name: "Grilled Chicken Breast", Quantity: 6, Unit: "oz"},
			},
		},
		{
			MealID:   "m2",
			MealName: "Salad",
			Ingredients: []UniversalIngredient{
				{Name: "chicken breasts", Quantity: 4, Unit: "oz"},
			},
		},
	}

	items := agg.BuildFromMeals(meals)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Chicken breast", item.Name)
	assert.Equal(t, "chicken breast|g", item.Key)
	assert.Equal(t, "g", item.Unit)
	assert.InDelta(t, 10*28.35, item.TotalQty, 1e-9)
	assert.Equal(t, "Meat & Seafood", item.Category)

	require.Len(t, item.Sources, 2)
	assert.Equal(t, "m1", item.Sources[0].MealID)
	assert.Equal(t, "m2", item.Sources[1].MealID)
	assert.Equal(t, "170.1", item.Sources[0].Qty)
	assert.Equal(t, "113.4", item.Sources[1].Qty)
}

// 名稱相同但換算後單位不同的紀錄不得合併
func TestBuildFromMealsNonInterference(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	meals := []MealInput{
		{
			MealID:   "m1",
			MealName: "Pancakes",
			Ingredients: []UniversalIngredient{
				{Name: "flour", Quantity: 2, Unit: "cups"},
				{Name: "flour", Quantity: 200, Unit: "g"},
				{Name: "sugar", Quantity: 1, Unit: "cup"},
			},
		},
	}

	items := agg.BuildFromMeals(meals)
	require.Len(t, items, 3)

	byKey := make(map[string]ShoppingListItemWithSources, len(items))
	for _, item := range items {
		byKey[item.Key] = item
	}

	require.Contains(t, byKey, "flour|ml")
	require.Contains(t, byKey, "flour|g")
	require.Contains(t, byKey, "sugar|ml")
	assert.InDelta(t, 480, byKey["flour|ml"].TotalQty, 1e-9)
	assert.InDelta(t, 200, byKey["flour|g"].TotalQty, 1e-9)
}

func TestBuildFromMealsSkipsInvalidRecords(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	meals := []MealInput{
		{
			MealID:   "m1",
			MealName: "Mixed",
			Ingredients: []UniversalIngredient{
				{Name: "", Quantity: 2, Unit: "cups"},
				{Name: "milk", Quantity: math.NaN(), Unit: "cups"},
				{Name: "milk", Quantity: math.Inf(1), Unit: "cups"},
				{Name: "milk", Quantity: 0, Unit: "cups"},
				{Name: "milk", Quantity: -5, Unit: "cups"},
				{Name: "grilled", Quantity: 1, Unit: ""},
				{Name: "banana", Quantity: 2, Unit: ""},
			},
		},
	}

	items := agg.BuildFromMeals(meals)
	require.Len(t, items, 1)
	assert.Equal(t, "Banana", items[0].Name)
	assert.InDelta(t, 2, items[0].TotalQty, 1e-9)
	require.Len(t, items[0].Sources, 1)
}

func TestBuildFromMealsEmptyInput(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	items := agg.BuildFromMeals(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBuildFromMealsSortOrder(t *testing.T) {
	// 自訂動線順序，Dairy 不出現在輸入中也不影響其餘分區的相對順序
	order := []string{"Produce", "Meat", "Dairy", "Pantry"}
	categorize := func(name string) string {
		switch name {
		case "Apple", "Banana":
			return "Produce"
		case "Chicken":
			return "Meat"
		case "Rice", "Flour":
			return "Pantry"
		default:
			return "Unknown"
		}
	}
	agg := NewAggregator(nil, categorize, order)

	meals := []MealInput{
		{
			MealID:   "m1",
			MealName: "Plan",
			Ingredients: []UniversalIngredient{
				{Name: "rice", Quantity: 1, Unit: ""},
				{Name: "chicken", Quantity: 1, Unit: ""},
				{Name: "banana", Quantity: 1, Unit: ""},
				{Name: "flour", Quantity: 1, Unit: ""},
				{Name: "apple", Quantity: 1, Unit: ""},
				{Name: "mystery item", Quantity: 1, Unit: ""},
			},
		},
	}

	items := agg.BuildFromMeals(meals)
	require.Len(t, items, 6)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	// 不在動線清單內的分區（indexOf 得 -1）排最前，其餘依動線順序、同分區依名稱
	assert.Equal(t, []string{"Mystery Item", "Apple", "Banana", "Chicken", "Flour", "Rice"}, names)
}

func TestBuildFromMealsSourceProvenance(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	meals := []MealInput{
		{
			MealID:    "m1",
			MealName:  "Breakfast Bowl",
			Generator: "craving",
			Day:       "monday",
			Slot:      SlotBreakfast,
			Ingredients: []UniversalIngredient{
				{Name: "rolled oats", Quantity: 0.5, Unit: "cup"},
			},
		},
	}

	items := agg.BuildFromMeals(meals)
	require.Len(t, items, 1)
	require.Len(t, items[0].Sources, 1)

	s := items[0].Sources[0]
	assert.Equal(t, "m1", s.MealID)
	assert.Equal(t, "Breakfast Bowl", s.MealName)
	assert.Equal(t, "craving", s.Generator)
	assert.Equal(t, "monday", s.Day)
	assert.Equal(t, SlotBreakfast, s.Slot)
	assert.Equal(t, "120", s.Qty)
	assert.Equal(t, "ml", s.Unit)
}

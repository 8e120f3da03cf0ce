package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatItemDisplay(t *testing.T) {
	tests := []struct {
		name     string
		item     ShoppingListItemWithSources
		expected string
	}{
		{
			name: "單一來源帶完整出處",
			item: ShoppingListItemWithSources{
				Name:     "Chicken breast",
				TotalQty: 170.1,
				Unit:     "g",
				Category: "Meat & Seafood",
				Sources: []MealSource{
					{MealName: "Omelette", Generator: "craving", Day: "monday", Slot: "breakfast"},
				},
			},
			expected: "Chicken breast — 170.1 g • Meat & Seafood • for Omelette (craving) — monday breakfast",
		},
		{
			name: "單一來源無產生端與時段",
			item: ShoppingListItemWithSources{
				Name:     "Olive Oil",
				TotalQty: 30,
				Unit:     "ml",
				Category: "Pantry",
				Sources: []MealSource{
					{MealName: "Salad"},
				},
			},
			expected: "Olive Oil — 30 ml • Pantry • for Salad",
		},
		{
			name: "多來源只顯示餐點數",
			item: ShoppingListItemWithSources{
				Name:     "Banana",
				TotalQty: 3,
				Category: "Produce",
				Sources: []MealSource{
					{MealName: "Smoothie"},
					{MealName: "Oatmeal"},
				},
			},
			expected: "Banana — 3 • Produce • from 2 meals",
		},
		{
			name: "計數類無單位",
			item: ShoppingListItemWithSources{
				Name:     "Egg",
				TotalQty: 4,
				Category: "Dairy",
			},
			expected: "Egg — 4 • Dairy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatItemDisplay(tt.item))
		})
	}
}

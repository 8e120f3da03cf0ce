package mealplan

import (
	"testing"

	"shopping-list-api/internal/core/shoppinglist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	doc := &PlanDocument{
		PlanID: "p1",
		Days: []PlanDay{
			{
				Day: "monday",
				Slots: []PlanSlot{
					{
						Slot: shoppinglist.SlotBreakfast,
						Meals: []PlanMeal{
							{MealID: "m1", MealName: "Oatmeal", Generator: "weekly-board",
								Ingredients: []shoppinglist.UniversalIngredient{
									{Name: "rolled oats", Quantity: 0.5, Unit: "cup"},
								}},
						},
					},
					{
						Slot: shoppinglist.SlotLunch,
						Meals: []PlanMeal{
							{MealID: "m2", MealName: "Salad"},
							{MealID: "m3", MealName: "Soup"},
						},
					},
				},
			},
			{
				Day: "tuesday",
				Slots: []PlanSlot{
					{
						Slot: shoppinglist.SlotDinner,
						Meals: []PlanMeal{
							{MealID: "m4", MealName: "Stir Fry", Generator: "fridge-rescue"},
						},
					},
				},
			},
		},
	}

	meals := Flatten(doc)
	require.Len(t, meals, 4)

	// 日與時段寫進每份餐點的來源脈絡
	assert.Equal(t, "m1", meals[0].MealID)
	assert.Equal(t, "monday", meals[0].Day)
	assert.Equal(t, shoppinglist.SlotBreakfast, meals[0].Slot)
	assert.Equal(t, "weekly-board", meals[0].Generator)
	require.Len(t, meals[0].Ingredients, 1)

	assert.Equal(t, "m2", meals[1].MealID)
	assert.Equal(t, shoppinglist.SlotLunch, meals[1].Slot)
	assert.Equal(t, "m3", meals[2].MealID)

	assert.Equal(t, "m4", meals[3].MealID)
	assert.Equal(t, "tuesday", meals[3].Day)
	assert.Equal(t, shoppinglist.SlotDinner, meals[3].Slot)
}

func TestFlattenNilDocument(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten(&PlanDocument{PlanID: "p1"}))
}

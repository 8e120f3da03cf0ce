// Package mealplan 負責從上游餐點規劃服務取回週計畫文件，
// 並攤平成聚合器的輸入格式。
package mealplan

import (
	"shopping-list-api/internal/core/shoppinglist"
)

// PlanDocument 上游服務回傳的週計畫文件
type PlanDocument struct {
	PlanID string    `json:"planId"`
	Days   []PlanDay `json:"days"`
}

// PlanDay 一天的餐點安排
type PlanDay struct {
	Day   string     `json:"day"` // 如 "monday"
	Slots []PlanSlot `json:"slots"`
}

// PlanSlot 一個時段的餐點
type PlanSlot struct {
	Slot  string     `json:"slot"` // breakfast / lunch / dinner / snacks
	Meals []PlanMeal `json:"meals"`
}

// PlanMeal 單份餐點
type PlanMeal struct {
	MealID      string                             `json:"mealId"`
	MealName    string                             `json:"mealName"`
	Generator   string                             `json:"generator,omitempty"`
	Ingredients []shoppinglist.UniversalIngredient `json:"ingredients"`
}

// Flatten 把日／時段／餐點的巢狀文件攤平成聚合器輸入，
// 並把日與時段寫進每份餐點的來源脈絡。
func Flatten(doc *PlanDocument) []shoppinglist.MealInput {
	var meals []shoppinglist.MealInput
	if doc == nil {
		return meals
	}
	for _, day := range doc.Days {
		for _, slot := range day.Slots {
			for _, meal := range slot.Meals {
				meals = append(meals, shoppinglist.MealInput{
					MealID:      meal.MealID,
					MealName:    meal.MealName,
					Generator:   meal.Generator,
					Day:         day.Day,
					Slot:        slot.Slot,
					Ingredients: meal.Ingredients,
				})
			}
		}
	}
	return meals
}

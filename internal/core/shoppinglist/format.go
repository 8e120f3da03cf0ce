package shoppinglist

import (
	"fmt"
	"strings"
)

// FormatItemDisplay 把一筆清單項目渲染成單行文字，
// 給複製到剪貼簿或純文字清單列使用。
// 單一來源時帶出該餐點的細節，多來源時顯示餐點數。
func FormatItemDisplay(item ShoppingListItemWithSources) string {
	var b strings.Builder
	b.WriteString(item.Name)
	b.WriteString(" — ")
	b.WriteString(FormatQty(item.TotalQty))
	if item.Unit != "" {
		b.WriteString(" ")
		b.WriteString(item.Unit)
	}
	b.WriteString(" • ")
	b.WriteString(item.Category)

	switch {
	case len(item.Sources) == 1:
		s := item.Sources[0]
		b.WriteString(" • for ")
		b.WriteString(s.MealName)
		if s.Generator != "" {
			fmt.Fprintf(&b, " (%s)", s.Generator)
		}
		if s.Day != "" || s.Slot != "" {
			b.WriteString(" — ")
			b.WriteString(strings.TrimSpace(s.Day + " " + s.Slot))
		}
	case len(item.Sources) > 1:
		fmt.Fprintf(&b, " • from %d meals", len(item.Sources))
	}

	return b.String()
}

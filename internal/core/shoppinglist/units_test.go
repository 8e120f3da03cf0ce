package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ParsedAmount
	}{
		{
			name:     "帶分數加單位加剩餘文字",
			input:    "1 1/2 cups chopped",
			expected: ParsedAmount{Amount: 1.5, Unit: "cups", Rest: "chopped"},
		},
		{
			name:     "純分數加單位",
			input:    "3/4 cup",
			expected: ParsedAmount{Amount: 0.75, Unit: "cup"},
		},
		{
			name:     "小數加單位",
			input:    "2.5 oz",
			expected: ParsedAmount{Amount: 2.5, Unit: "oz"},
		},
		{
			name:     "純整數",
			input:    "3",
			expected: ParsedAmount{Amount: 3},
		},
		{
			name:     "分數斜線兩側有空白",
			input:    "1 / 2 tsp",
			expected: ParsedAmount{Amount: 0.5, Unit: "tsp"},
		},
		{
			name:     "無數字開頭回傳哨兵值",
			input:    "a pinch",
			expected: ParsedAmount{Amount: 0, Unit: "", Rest: "a pinch"},
		},
		{
			name:     "分母為零回傳哨兵值",
			input:    "1/0 cup",
			expected: ParsedAmount{Amount: 0, Unit: "", Rest: "1/0 cup"},
		},
		{
			name:     "前後空白不影響解析",
			input:    "  2 tbsp  ",
			expected: ParsedAmount{Amount: 2, Unit: "tbsp"},
		},
		{
			name:     "空字串回傳哨兵值",
			input:    "",
			expected: ParsedAmount{Amount: 0, Unit: "", Rest: ""},
		},
		{
			name:     "單位後多個字全部進剩餘文字",
			input:    "2 cups finely chopped onion",
			expected: ParsedAmount{Amount: 2, Unit: "cups", Rest: "finely chopped onion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		unit     string
		expected Qty
	}{
		{"杯換算毫升", 1.5, "cups", Qty{Amount: 360, Unit: "ml"}},
		{"大匙換算毫升", 2, "tbsp", Qty{Amount: 30, Unit: "ml"}},
		{"小匙換算毫升", 3, "teaspoons", Qty{Amount: 15, Unit: "ml"}},
		{"液體盎司換算毫升", 1, "fl oz", Qty{Amount: 30, Unit: "ml"}},
		{"公升換算毫升", 2, "liters", Qty{Amount: 2000, Unit: "ml"}},
		{"盎司換算公克", 6, "oz", Qty{Amount: 170.1, Unit: "g"}},
		{"磅換算公克", 1, "lb", Qty{Amount: 453.6, Unit: "g"}},
		{"公斤換算公克", 0.5, "kg", Qty{Amount: 500, Unit: "g"}},
		{"公克原樣", 200, "g", Qty{Amount: 200, Unit: "g"}},
		{"空字串為計數", 3, "", Qty{Amount: 3, Unit: ""}},
		{"pieces 折疊為計數", 4, "pieces", Qty{Amount: 4, Unit: ""}},
		{"大小寫與空白不敏感", 1, " Cups ", Qty{Amount: 240, Unit: "ml"}},
		{"未知單位原樣通過", 2, "bunches", Qty{Amount: 2, Unit: "bunches"}},
		{"未知單位保留原始拼寫", 1, "Cloves", Qty{Amount: 1, Unit: "Cloves"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUnit(tt.amount, tt.unit)
			assert.Equal(t, tt.expected.Unit, got.Unit)
			assert.InDelta(t, tt.expected.Amount, got.Amount, 1e-9)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	qty, rest := ParseQuantity("1 1/2 cups chopped")
	assert.InDelta(t, 360, qty.Amount, 1e-9)
	assert.Equal(t, "ml", qty.Unit)
	assert.Equal(t, "chopped", rest)

	qty, rest = ParseQuantity("a pinch")
	assert.Equal(t, Qty{Amount: 0, Unit: ""}, qty)
	assert.Equal(t, "a pinch", rest)
}

func TestFormatQty(t *testing.T) {
	assert.Equal(t, "283.5", FormatQty(283.5))
	assert.Equal(t, "180", FormatQty(180.0))
	assert.Equal(t, "0.33", FormatQty(1.0/3))
	assert.Equal(t, "2", FormatQty(2.004))
}

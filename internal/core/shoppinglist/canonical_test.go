package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	canon := DefaultCanonicalizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"描述詞剔除加複數折疊", "Grilled Chicken Breasts", "Chicken breast"},
		{"已是正式拼寫", "chicken breast", "Chicken breast"},
		{"大小寫與前後空白", "  CHICKEN BREAST  ", "Chicken breast"},
		{"括號夾註整段剔除", "Chicken (boneless, skinless)", "Chicken"},
		{"標點剔除但保留連字號", "bell-peppers, diced", "Bell pepper"},
		{"同義詞折疊", "scallions", "Green onion"},
		{"描述詞剔除後命中同義詞", "fresh coriander", "Cilantro"},
		{"ies 複數折疊", "strawberries", "Strawberry"},
		{"ves 複數折疊", "chives", "Chif"},
		{"一般名稱 title case", "olive oil", "Olive Oil"},
		{"單字母不折疊", "s", "S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canon.CanonicalName(tt.input))
		})
	}
}

// 只差大小寫、空白、描述詞或複數變化的輸入必須收斂到同一個正式名稱
func TestCanonicalNameEquivalence(t *testing.T) {
	canon := DefaultCanonicalizer()

	variants := []string{
		"Grilled Chicken Breasts",
		"chicken breast",
		"  Boneless Skinless CHICKEN BREAST ",
		"chicken breasts (about 2)",
	}
	for _, v := range variants {
		assert.Equal(t, "Chicken breast", canon.CanonicalName(v), "input: %q", v)
	}
}

// 再跑一次正規化結果必須穩定
func TestCanonicalNameStable(t *testing.T) {
	canon := DefaultCanonicalizer()

	inputs := []string{"Grilled Chicken Breasts", "strawberries", "olive oil", "scallions"}
	// 所有正式拼寫本身也必須是不動點，合併後的顯示名稱才不受輸入順序影響
	for _, v := range defaultSynonyms {
		inputs = append(inputs, v)
	}

	for _, input := range inputs {
		once := canon.CanonicalName(input)
		assert.Equal(t, once, canon.CanonicalName(once), "input: %q", input)
	}
}

func TestCanonicalNameEmptyResult(t *testing.T) {
	canon := DefaultCanonicalizer()

	// 整個名稱只剩描述詞或標點：沒有可分組的內容
	assert.Equal(t, "", canon.CanonicalName("Frozen"))
	assert.Equal(t, "", canon.CanonicalName("grilled, diced"))
	assert.Equal(t, "", canon.CanonicalName("(optional)"))
	assert.Equal(t, "", canon.CanonicalName("   "))
}

func TestExtractDescriptors(t *testing.T) {
	canon := DefaultCanonicalizer()

	assert.Equal(t, []string{"grilled", "boneless"}, canon.ExtractDescriptors("Grilled, boneless chicken"))
	assert.Nil(t, canon.ExtractDescriptors("chicken breast"))
}

func TestNewCanonicalizerCustomVocabulary(t *testing.T) {
	canon := NewCanonicalizer(Vocabulary{
		Descriptors: []string{"jumbo"},
		Synonyms:    map[string]string{"prawn": "Shrimp"},
	})

	assert.Equal(t, "Shrimp", canon.CanonicalName("Jumbo Prawns"))
	// 自訂詞彙表不含內建描述詞
	assert.Equal(t, "Grilled Chicken", canon.CanonicalName("grilled chicken"))
}

package shoppinglist

import (
	"regexp"
	"strings"
)

// Vocabulary 正規化詞彙表，建構 Canonicalizer 用的不可變設定
type Vocabulary struct {
	Descriptors []string          // 處理方式／狀態描述詞（grilled、frozen…），從分組鍵剔除
	Synonyms    map[string]string // 單數化後的片語 → 正式拼寫（已含正確大小寫）
}

// Canonicalizer 食材名稱正規化器。純函式、無副作用，可併發使用。
type Canonicalizer struct {
	descriptors map[string]struct{}
	synonyms    map[string]string
}

// defaultDescriptors 預設描述詞清單
var defaultDescriptors = []string{
	"grilled", "baked", "steamed", "raw", "cooked",
	"lean", "boneless", "skinless",
	"fresh", "frozen", "organic",
	"free-range", "grass-fed", "wild-caught",
	"canned", "dried",
	"sliced", "diced", "chopped", "shredded", "ground", "whole",
	"low-fat", "fat-free",
	"unsalted", "salted", "sweetened", "unsweetened",
	"roasted", "toasted",
}

// defaultSynonyms 預設同義詞對照表。鍵為描述詞剔除、單數化後的小寫片語。
// 每個多詞的正式拼寫都必須有自己的小寫鍵，正規化結果才是不動點。
var defaultSynonyms = map[string]string{
	"chicken breast":  "Chicken breast",
	"chicken breasts": "Chicken breast",
	"yogurt greek":    "Greek yogurt",
	"greek yogurt":    "Greek yogurt",
	"scallion":        "Green onion",
	"spring onion":    "Green onion",
	"green onion":     "Green onion",
	"coriander":       "Cilantro",
	"garbanzo bean":   "Chickpea",
	"bell-pepper":     "Bell pepper",
	"bell pepper":     "Bell pepper",
	"egg white":       "Egg white",
	"rolled oat":      "Oats",
	"oat":             "Oats",
}

var (
	parenPattern = regexp.MustCompile(`\([^)]*\)`)      // 括號夾註，整段剔除
	punctPattern = regexp.MustCompile(`[^a-z0-9\- ]+`)  // 連字號以外的標點
)

// NewCanonicalizer 以給定詞彙表建構正規化器。詞彙表建構後即不可變。
func NewCanonicalizer(vocab Vocabulary) *Canonicalizer {
	descriptors := make(map[string]struct{}, len(vocab.Descriptors))
	for _, d := range vocab.Descriptors {
		descriptors[strings.ToLower(d)] = struct{}{}
	}
	synonyms := make(map[string]string, len(vocab.Synonyms))
	for k, v := range vocab.Synonyms {
		synonyms[strings.ToLower(k)] = v
	}
	return &Canonicalizer{descriptors: descriptors, synonyms: synonyms}
}

// DefaultCanonicalizer 使用內建詞彙表建構正規化器
func DefaultCanonicalizer() *Canonicalizer {
	return NewCanonicalizer(Vocabulary{
		Descriptors: defaultDescriptors,
		Synonyms:    defaultSynonyms,
	})
}

// CanonicalName 將原始食材文字轉成穩定、可顯示的正式名稱。
// 輸入只剩描述詞或標點時回傳空字串，代表「沒有可分組的內容」，由呼叫端略過。
func (c *Canonicalizer) CanonicalName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	// 剔除括號夾註與標點（保留連字號）
	s = parenPattern.ReplaceAllString(s, " ")
	s = punctPattern.ReplaceAllString(s, " ")

	// 逐詞剔除描述詞
	tokens := strings.Fields(s)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, isDescriptor := c.descriptors[tok]; isDescriptor {
			continue
		}
		kept = append(kept, tok)
	}
	s = strings.Join(kept, " ")

	// 輕量複數折疊。只是啟發式，不是真正的詞形還原，誤折可接受。
	s = singularize(s)

	// 同義詞表命中時直接回傳（已含正確大小寫）
	if mapped, ok := c.synonyms[s]; ok {
		return mapped
	}

	return titleCase(s)
}

// ExtractDescriptors 對原始小寫文字重新分詞，回傳其中命中描述詞清單的 token。
// 讓呼叫端能把 "grilled"、"raw" 等留作附註，而不是從分組鍵裡永遠消失。
func (c *Canonicalizer) ExtractDescriptors(raw string) []string {
	var found []string
	for _, tok := range strings.Fields(strings.ToLower(strings.TrimSpace(raw))) {
		tok = strings.Trim(tok, ",.;:")
		if _, ok := c.descriptors[tok]; ok {
			found = append(found, tok)
		}
	}
	return found
}

// singularize 依序套用 ies→y、ves→f，否則去掉單一結尾 s
func singularize(s string) string {
	switch {
	case len(s) > 3 && strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case len(s) > 3 && strings.HasSuffix(s, "ves"):
		return s[:len(s)-3] + "f"
	case len(s) > 1 && strings.HasSuffix(s, "s"):
		return s[:len(s)-1]
	default:
		return s
	}
}

// titleCase 每個 token 的首字母大寫
func titleCase(s string) string {
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		tokens[i] = strings.ToUpper(tok[:1]) + tok[1:]
	}
	return strings.Join(tokens, " ")
}

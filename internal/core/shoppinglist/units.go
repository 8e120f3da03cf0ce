package shoppinglist

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UnitFamily 單位家族
type UnitFamily int

const (
	FamilyCount  UnitFamily = iota // 純計數，無單位
	FamilyVolume                   // 容量，首選單位 ml
	FamilyMass                     // 重量，首選單位 g
)

// 換算常數。這些數字直接決定使用者看到的總量，固定不可調。
const (
	MLPerTsp   = 5.0
	MLPerTbsp  = 15.0
	MLPerFlOz  = 30.0
	MLPerCup   = 240.0
	MLPerPint  = 473.0
	MLPerQuart = 946.0
	MLPerLiter = 1000.0

	GPerOz = 28.35
	GPerLb = 453.6
	GPerKg = 1000.0
)

// preferredUnit 每個家族的首選單位拼寫
var preferredUnit = map[UnitFamily]string{
	FamilyVolume: "ml",
	FamilyMass:   "g",
	FamilyCount:  "",
}

// unitDef 單一單位拼寫的定義：所屬家族與換算到首選單位的係數
type unitDef struct {
	family UnitFamily
	factor float64
}

// unitTable 單位拼寫（單複數、縮寫）到定義的對照表
var unitTable = map[string]unitDef{
	// 容量
	"tsp": {FamilyVolume, MLPerTsp}, "teaspoon": {FamilyVolume, MLPerTsp}, "teaspoons": {FamilyVolume, MLPerTsp},
	"tbsp": {FamilyVolume, MLPerTbsp}, "tbs": {FamilyVolume, MLPerTbsp},
	"tablespoon": {FamilyVolume, MLPerTbsp}, "tablespoons": {FamilyVolume, MLPerTbsp},
	"fl oz": {FamilyVolume, MLPerFlOz}, "floz": {FamilyVolume, MLPerFlOz},
	"fluid ounce": {FamilyVolume, MLPerFlOz}, "fluid ounces": {FamilyVolume, MLPerFlOz},
	"cup": {FamilyVolume, MLPerCup}, "cups": {FamilyVolume, MLPerCup},
	"pint": {FamilyVolume, MLPerPint}, "pints": {FamilyVolume, MLPerPint},
	"quart": {FamilyVolume, MLPerQuart}, "quarts": {FamilyVolume, MLPerQuart},
	"l": {FamilyVolume, MLPerLiter}, "liter": {FamilyVolume, MLPerLiter}, "liters": {FamilyVolume, MLPerLiter},
	"litre": {FamilyVolume, MLPerLiter}, "litres": {FamilyVolume, MLPerLiter},
	"ml": {FamilyVolume, 1}, "milliliter": {FamilyVolume, 1}, "milliliters": {FamilyVolume, 1},
	"millilitre": {FamilyVolume, 1}, "millilitres": {FamilyVolume, 1},

	// 重量
	"g": {FamilyMass, 1}, "gram": {FamilyMass, 1}, "grams": {FamilyMass, 1},
	"kg": {FamilyMass, GPerKg}, "kilogram": {FamilyMass, GPerKg}, "kilograms": {FamilyMass, GPerKg},
	"oz": {FamilyMass, GPerOz}, "ounce": {FamilyMass, GPerOz}, "ounces": {FamilyMass, GPerOz},
	"lb": {FamilyMass, GPerLb}, "lbs": {FamilyMass, GPerLb},
	"pound": {FamilyMass, GPerLb}, "pounds": {FamilyMass, GPerLb},

	// 計數
	"": {FamilyCount, 1},
	"piece": {FamilyCount, 1}, "pieces": {FamilyCount, 1},
	"pc": {FamilyCount, 1}, "pcs": {FamilyCount, 1},
	"ct": {FamilyCount, 1}, "count": {FamilyCount, 1},
	"unit": {FamilyCount, 1}, "units": {FamilyCount, 1},
}

// NormalizeUnit 將 (數量, 原始單位) 換算到首選單位系統。
// 未知單位原樣通過，不丟資料。
func NormalizeUnit(amount float64, rawUnit string) Qty {
	unit := strings.ToLower(strings.TrimSpace(rawUnit))
	def, ok := unitTable[unit]
	if !ok {
		// 不認得的單位：保留原拼寫原樣通過
		return Qty{Amount: amount, Unit: strings.TrimSpace(rawUnit)}
	}
	return Qty{Amount: amount * def.factor, Unit: preferredUnit[def.family]}
}

// ParsedAmount 自由文字數量字串的解析結果（換算前）
type ParsedAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"` // 擷取到的原始單位 token
	Rest   string  `json:"rest,omitempty"` // 單位之後剩下的文字
}

// 三種文法，依優先順序嘗試
var (
	mixedNumberPattern = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)(?:\s+(.*))?$`) // "1 1/2 cups chopped"
	fractionPattern    = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)(?:\s+(.*))?$`)         // "3/4 cup"
	decimalPattern     = regexp.MustCompile(`^(\d+(?:\.\d+)?)(?:\s+(.*))?$`)           // "2.5 oz"
)

// ParseAmount 解析數量與單位連在一起的自由文字（例如 "1 1/2 cups"）。
// 三種文法都不符合時回傳 {0, "", 原字串} 哨兵值，呼叫端視為「沒有數字貢獻」，不報錯。
func ParseAmount(raw string) ParsedAmount {
	s := strings.TrimSpace(raw)

	// 文法一：整數 + 分數 + 單位
	if m := mixedNumberPattern.FindStringSubmatch(s); m != nil {
		frac := parseFraction(m[2], m[3])
		if !math.IsNaN(frac) {
			whole, _ := strconv.ParseFloat(m[1], 64)
			unit, rest := splitUnitToken(m[4])
			return ParsedAmount{Amount: whole + frac, Unit: unit, Rest: rest}
		}
	}

	// 文法二：分數 + 單位
	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		frac := parseFraction(m[1], m[2])
		if !math.IsNaN(frac) {
			unit, rest := splitUnitToken(m[3])
			return ParsedAmount{Amount: frac, Unit: unit, Rest: rest}
		}
	}

	// 文法三：小數或整數 + 單位
	if m := decimalPattern.FindStringSubmatch(s); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			unit, rest := splitUnitToken(m[2])
			return ParsedAmount{Amount: amount, Unit: unit, Rest: rest}
		}
	}

	return ParsedAmount{Amount: 0, Unit: "", Rest: s}
}

// ParseQuantity 解析自由文字並換算到首選單位系統。
func ParseQuantity(raw string) (Qty, string) {
	parsed := ParseAmount(raw)
	return NormalizeUnit(parsed.Amount, parsed.Unit), parsed.Rest
}

// parseFraction 解析 a/b；分母為 0 或任一部分非數字時回傳 NaN，
// 讓該文法整體落空，落到下一個文法。
func parseFraction(numerator, denominator string) float64 {
	n, err := strconv.ParseFloat(numerator, 64)
	if err != nil {
		return math.NaN()
	}
	d, err := strconv.ParseFloat(denominator, 64)
	if err != nil || d == 0 {
		return math.NaN()
	}
	return n / d
}

// splitUnitToken 把數字之後的文字拆成單位 token 與剩餘文字
func splitUnitToken(trailing string) (unit, rest string) {
	fields := strings.Fields(trailing)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

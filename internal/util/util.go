package util

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

var hundred = decimal.NewFromInt(100)

// FormatPercent renders a fraction as a fixed-place percent string, e.g.
// 0.01234 -> "1.23%". Rounding goes through decimal so display values don't
// pick up float artifacts.
func FormatPercent(v float64, places int32) string {
	return decimal.NewFromFloat(v).Mul(hundred).StringFixed(places) + "%"
}

// FormatSignedPercent is FormatPercent with an explicit leading + for
// non-negative values, the convention for active weights and contributions.
func FormatSignedPercent(v float64, places int32) string {
	s := FormatPercent(v, places)
	if v >= 0 {
		return "+" + s
	}
	return s
}

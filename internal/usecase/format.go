package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the way the en-US locale does.
var printer = message.NewPrinter(language.English)

const (
	ColorGain = "green"
	ColorLoss = "red"

	RankUnknown = "N/A"
)

// FormatPrice renders a USD price with two decimals and no grouping: 1234.5 -> "$1234.50".
func FormatPrice(v float64) string {
	return "$" + strconv.FormatFloat(roundHalfUp(v, 2), 'f', 2, 64)
}

// FormatUSD renders a USD amount with locale grouping: 1234567 -> "$1,234,567".
func FormatUSD(v float64) string {
	return "$" + GroupNumber(v)
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(roundHalfUp(v, 2), 'f', 2, 64) + "%"
}

// ChangeColor is red for a negative change and green otherwise, zero included.
func ChangeColor(v float64) string {
	if v < 0 {
		return ColorLoss
	}
	return ColorGain
}

// GroupNumber adds thousand separators and keeps up to three fraction digits,
// trimming trailing zeros.
func GroupNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	neg := v < 0
	s := strconv.FormatFloat(roundHalfUp(math.Abs(v), 3), 'f', 3, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Beyond int64; leave ungrouped.
		return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}

	out := printer.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

// roundHalfUp rounds ties away from zero. FormatFloat alone rounds an exact
// tie such as 0.125 to even.
func roundHalfUp(v float64, digits int) float64 {
	p := math.Pow10(digits)
	scaled := v * p
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / p
}

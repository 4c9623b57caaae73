package dashboard

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// fixed formats v with the given number of decimals, rounding exact halves
// away from zero (2.5 -> "3", 4.25 -> "4.3").
func fixed(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}

// Percent formats a value that is already a percentage with one decimal.
func Percent(v float64) string {
	return fixed(v, 1) + "%"
}

// FractionPercent formats a fraction in [0,1] as a one-decimal percentage.
func FractionPercent(v float64) string {
	return Percent(v * 100)
}

// Millions formats a USD amount in millions with two decimals.
func Millions(v float64) string {
	return fixed(v/1e6, 2) + "M"
}

// Thousands formats a USD amount in whole thousands.
func Thousands(v float64) string {
	return fixed(v/1e3, 0) + "k"
}

// USD formats an amount with thousands separators.
func USD(v float64) string {
	return "$" + humanize.Commaf(v)
}

// Width renders a percent as a CSS width without rescaling it.
func Width(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

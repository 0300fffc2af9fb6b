package report

import (
	"strconv"
	"strings"
)

// ParsePrice reads a display-string price ("$350.00", "450") as a
// number. Garbage contributes zero; it never errors. This defensive
// contract is deliberate: booking prices are free-text strings and
// reporting is best-effort, not financial-grade accounting.
func ParsePrice(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

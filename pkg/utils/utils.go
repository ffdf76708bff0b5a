package utils

import (
	"fmt"
)

func ToPointer[T any](value T) *T {
	return &value
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// FormatMoney renders a rounded amount with thousands separators.
func FormatMoney(value float64) string {
	s := fmt.Sprintf("%.0f", value)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

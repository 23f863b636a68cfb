package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBRL renders an amount as "R$ 1.234,56". Display-layer only; domain
// values stay as raw float64 and are never rounded inside the calculation.
func FormatBRL(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%sR$ %s,%02d", sign, formatThousand(whole), frac)
}

// FormatPercent keeps consistent one-decimal formatting for ratio fields.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}

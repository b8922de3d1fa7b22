package common

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats v as dollars with thousands separators ("$1,234.56")
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(fmt.Sprintf("%.2f", v))
}

// FormatSignedMoney is FormatMoney with an explicit "+" for non-negative values
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// FormatPct formats a fraction as a percentage ("0.125" -> "12.50%")
func FormatPct(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// FormatSignedPct formats a percentage value with an explicit sign ("+1.20%")
func FormatSignedPct(pct float64) string {
	if math.Abs(pct) < 0.005 {
		pct = 0
	}
	return fmt.Sprintf("%+.2f%%", pct)
}

func groupThousands(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}

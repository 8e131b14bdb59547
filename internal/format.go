package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Missing is what the formatters render for a source-reported null.
const Missing = "N/A"

// FormatPrice renders v as a USD amount with thousands grouping and two
// decimal places, e.g. 1234.5 -> "$1,234.50". A nil value renders as
// the Missing sentinel.
func FormatPrice(v *float64) string {
	if v == nil {
		return Missing
	}
	sign := ""
	if *v < 0 {
		sign = "-"
	}
	s := strconv.FormatFloat(math.Abs(*v), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return sign + "$" + groupThousands(s[:dot]) + s[dot:]
}

// FormatMagnitude compacts v into a B/M/K suffixed string with two
// decimal places. The thresholds are strict >= checks, largest suffix
// first, so 1000 is "1.00K" rather than "1000". Values below 1000
// render as a bare integer; nil renders as the Missing sentinel.
func FormatMagnitude(v *float64) string {
	if v == nil {
		return Missing
	}
	n := *v
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fK", n/1e3)
	default:
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

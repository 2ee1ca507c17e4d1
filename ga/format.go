// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"math"
	"strings"
)

// DefaultFormat prints the shortest decimal that reads back to the same float64.
const DefaultFormat = "%g"

// Format renders a as a signed sum of terms "coef*e1^e2", using fp (a fmt
// verb for one float64) for the magnitude of every non-zero coordinate.
// The scalar term has no blade suffix; the zero multivector renders as "0".
// Non-finite magnitudes are written as "Inf" and "NaN" regardless of fp, so
// Parse reads them back.
//
// Example: Format(a, "%.2f") -> "1.00 + 2.00*e1 - 0.50*e1^e2".
func Format(a Multivector, fp string) string {
	var sb strings.Builder
	for g := Grade(0); g < NumGrades; g++ {
		for i, v := range a.group(g) {
			if v == 0 {
				continue
			}
			switch {
			case sb.Len() == 0 && v < 0:
				sb.WriteByte('-')
			case sb.Len() > 0 && v < 0:
				sb.WriteString(" - ")
			case sb.Len() > 0:
				sb.WriteString(" + ")
			}
			switch {
			case math.IsNaN(v):
				sb.WriteString("NaN")
			case math.IsInf(v, 0):
				sb.WriteString("Inf")
			default:
				sb.WriteString(fmt.Sprintf(fp, math.Abs(v)))
			}
			if b := groupBlades[g][i]; b != 0 {
				sb.WriteByte('*')
				sb.WriteString(b.String())
			}
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

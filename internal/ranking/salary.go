package ranking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mkaplan/careercompass/internal/types"
)

// salaryPattern matches the two numeric components of catalog salary text
// such as "$80k-$150k", "$60,000 - $90,000" or "70000-120000".
var salaryPattern = regexp.MustCompile(`(\d[\d,]*\.?\d*)\s*(k|K)?`)

// ParseSalaryRange parses the catalog's free-text salary field into numeric
// bounds. Text that cannot be parsed fails closed to {0,0} with the
// low-confidence flag set; it never returns an error so a single bad catalog
// row cannot abort a ranking.
func ParseSalaryRange(text string) types.SalaryRange {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.SalaryRange{LowConfidence: true}
	}

	values := make([]int, 0, 2)
	for _, m := range salaryPattern.FindAllStringSubmatch(trimmed, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			parsed *= 1000
		}
		values = append(values, int(parsed))
		if len(values) == 2 {
			break
		}
	}

	switch len(values) {
	case 2:
		low, high := values[0], values[1]
		if low > high {
			low, high = high, low
		}
		return types.SalaryRange{Min: low, Max: high}
	case 1:
		// Single figure is treated as both bounds but flagged: the catalog
		// row did not declare a real range.
		return types.SalaryRange{Min: values[0], Max: values[0], LowConfidence: true}
	default:
		return types.SalaryRange{LowConfidence: true}
	}
}

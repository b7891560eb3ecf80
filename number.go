package earnings

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptionalInt parses an optional numeric form field.
// Blank or non-numeric input yields nil. Whole numbers written with a
// fractional part, such as "2024.0", are accepted.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

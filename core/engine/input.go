package engine

import (
	"math"
	"strconv"
	"strings"

	"iops-calculator/internal/errors"
)

// ParseNumericInput parses a raw numeric field as typed by a user.
// Blank input is reported as empty with value 0. Text that is not a finite
// number is an InvalidInput error.
func ParseNumericInput(field, raw string) (value float64, empty bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true, nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, errors.InvalidInput(field, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, errors.InvalidInput(field, raw, nil)
	}

	return v, false, nil
}

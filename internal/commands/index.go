package commands

import (
	"math"
	"strconv"
	"strings"

	apperr "tasker/internal/errors"
)

// ParseIndex parses the task number argument of complete and remove.
// Surrounding whitespace is ignored. Any integer is accepted here, including
// zero and negatives; range checks belong to the task list, so those fail
// with InvalidIndex rather than ParseError.
func ParseIndex(arg string) (int, error) {
	s := strings.TrimSpace(arg)
	if !isInteger(s) {
		return 0, apperr.ParseError(s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Out of int range; no task has this position either way
		if s[0] == '-' {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return n, nil
}

// isInteger returns true if s is an optional sign followed by one or more
// ASCII digits.
func isInteger(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package sched

import (
	"regexp"
	"strconv"
	"strings"
)

var timeLines = []*regexp.Regexp{
	regexp.MustCompile(`Elapsed time:\s*([0-9]+(?:\.[0-9]+)?)`),
	regexp.MustCompile(`Found\s+\d+\s+primes\s+in\s+([0-9]+(?:\.[0-9]+)?)\s+seconds`),
}

// ParseTaskTime extracts the self-reported seconds from a benchmark's
// stdout. Output in neither known format falls back to its last token.
func ParseTaskTime(stdout string) (float64, bool) {
	for _, re := range timeLines {
		if m := re.FindStringSubmatch(stdout); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v, true
			}
		}
	}

	fields := strings.Fields(stdout)
	if len(fields) == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}

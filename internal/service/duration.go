package service

import (
	"fmt"
	"strconv"
	"strings"
)

// parseISODuration converts an ISO-8601 duration like "PT1H2M3S" or "P1DT2H"
// into whole seconds. The warehouse stores the notation untouched; only report
// aggregation needs real seconds.
func parseISODuration(value string) (int64, error) {
	if !strings.HasPrefix(value, "P") {
		return 0, fmt.Errorf("not an ISO-8601 duration: %q", value)
	}

	var total int64
	inTime := false
	number := ""

	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
			number += string(r)
		case r == 'T':
			if number != "" {
				return 0, fmt.Errorf("malformed duration: %q", value)
			}
			inTime = true
		default:
			if number == "" {
				return 0, fmt.Errorf("malformed duration: %q", value)
			}
			n, err := strconv.ParseInt(number, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("malformed duration: %q", value)
			}
			number = ""

			switch {
			case r == 'D' && !inTime:
				total += n * 86400
			case r == 'H' && inTime:
				total += n * 3600
			case r == 'M' && inTime:
				total += n * 60
			case r == 'S' && inTime:
				total += n
			default:
				return 0, fmt.Errorf("unsupported duration unit %q in %q", r, value)
			}
		}
	}

	if number != "" {
		return 0, fmt.Errorf("malformed duration: %q", value)
	}

	return total, nil
}

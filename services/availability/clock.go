package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument flags malformed calculator input. Callers are expected
// to catch it before a request ever reaches the reservation path.
var ErrInvalidArgument = errors.New("invalid argument")

// parseClock converts an "HH:MM" clock string to minutes since midnight.
func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	return hours*60 + mins, nil
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

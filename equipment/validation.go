package equipment

import (
	"strconv"
	"strings"

	"github.com/ocampo/deskplan/civil"
)

// ValidateNew validates the fields required to create a record. It returns
// the parsed date so callers validate and convert in one step.
func ValidateNew(name, date string, status Status) (civil.Date, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrNameRequired
	}
	if strings.TrimSpace(date) == "" {
		return "", ErrDateRequired
	}
	d, err := civil.ParseDate(date)
	if err != nil {
		return "", ErrDateInvalid
	}
	if !status.Valid() {
		return "", ErrStatusInvalid
	}
	return d, nil
}

// ParsePeople parses a raw people-count input. Non-numeric or negative
// input coerces to 0 rather than failing.
func ParsePeople(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

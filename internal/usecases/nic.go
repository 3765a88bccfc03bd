package usecases

import (
	"fmt"
	"strconv"
	"time"

	domainerrors "customer-hub.backend/internal/domain/errors"
)

// DeriveDOB computes a date of birth (YYYY-MM-DD) from a national
// identity code. Two fixed formats are accepted: the 10-character
// legacy form (2-digit year, 1900-based, then a 3-digit day-of-year
// ordinal) and the 12-character modern form (4-digit year, then the
// ordinal). Ordinals above 500 encode female subjects; the true
// day-of-year is the ordinal minus 500. Any other length, or a
// non-numeric year or ordinal segment, fails with ErrInvalidNIC.
func DeriveDOB(nic string) (string, error) {
	var yearPart, ordinalPart string

	switch len(nic) {
	case 10:
		yearPart = "19" + nic[0:2]
		ordinalPart = nic[2:5]
	case 12:
		yearPart = nic[0:4]
		ordinalPart = nic[4:7]
	default:
		return "", domainerrors.ErrInvalidNIC
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return "", domainerrors.ErrInvalidNIC
	}
	ordinal, err := strconv.Atoi(ordinalPart)
	if err != nil {
		return "", domainerrors.ErrInvalidNIC
	}

	if ordinal > 500 {
		ordinal -= 500
	}

	// Ordinal is a 1-based day-of-year. Standard date arithmetic handles
	// day 366 in a non-leap year by rolling into the next month.
	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
	return fmt.Sprintf("%d-%02d-%02d", date.Year(), int(date.Month()), date.Day()), nil
}

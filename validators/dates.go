package validators

import (
	"time"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// ParseDateRange parses a YYYY-MM-DD date pair and checks the ordering
// invariant. Equal start and end dates are a valid one-day range.
func ParseDateRange(dateStart, dateEnd string) (time.Time, time.Time, error) {
	var errs ValidationErrors

	start, err := time.Parse(DateLayout, dateStart)
	if err != nil {
		errs = append(errs, ValidationError{Field: "date_start", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	end, err := time.Parse(DateLayout, dateEnd)
	if err != nil {
		errs = append(errs, ValidationError{Field: "date_end", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, ValidationErrors{
			{Field: "date_end", Message: "start date must not be after end date"},
		}
	}

	return start, end, nil
}

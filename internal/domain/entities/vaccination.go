package entities

import "time"

// DateLayout is the calendar date format used by the vaccination fields.
const DateLayout = "2006-01-02"

// VaccinationExpired reports whether the expiry date is strictly before the
// calendar date of now. An expiry of today is still current.
func VaccinationExpired(expiry string, now time.Time) (bool, error) {
	exp, err := time.Parse(DateLayout, expiry)
	if err != nil {
		return false, err
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return exp.Before(today), nil
}

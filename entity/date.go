package entity

import "time"

// DateLayout is the wire format for rental dates.
const DateLayout = "2006-01-02"

// Day truncates a timestamp to its calendar day in UTC. Every rent_date
// stored or compared goes through this so the unique indexes on rentals
// match on exact day boundaries.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO calendar date ("2006-01-02").
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// utils/dates.go
package utils

import "time"

// Appointments and invoices store calendar dates and times as strings.
const (
	ISODateLayout = "2006-01-02"
	TimeLayout    = "15:04"
)

func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

func Today() string {
	return ISODate(time.Now())
}

func Tomorrow() string {
	return ISODate(time.Now().AddDate(0, 0, 1))
}

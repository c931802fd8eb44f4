package model

import (
	"errors"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Date handling errors, surfaced to the caller as single diagnostic lines.
var (
	ErrInvalidDate  = errors.New("invalid date, use YYYYMMDD format")
	ErrInvalidMonth = errors.New("invalid year/month, use YYYYMM format")
)

const compactDateLayout = "20060102"

// ParseDate parses a compact YYYYMMDD token into a calendar date. Tokens that
// are not real calendar dates (20230231) are rejected.
func ParseDate(token string) (civil.Date, error) {
	t, err := time.Parse(compactDateLayout, token)
	if err != nil {
		return civil.Date{}, ErrInvalidDate
	}
	return civil.DateOf(t), nil
}

// FormatDate renders a calendar date as YYYYMMDD.
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(compactDateLayout)
}

// ParseYearMonth parses a YYYYMM token. The month must lie in [1, 12].
func ParseYearMonth(token string) (year int, month int, err error) {
	if len(token) != 6 {
		return 0, 0, ErrInvalidMonth
	}
	year, err = strconv.Atoi(token[:4])
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	month, err = strconv.Atoi(token[4:])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonth
	}
	return year, month, nil
}

// MonthBounds returns the first and last calendar day of the given month.
func MonthBounds(year, month int) (first, last civil.Date) {
	first = civil.Date{Year: year, Month: time.Month(month), Day: 1}
	// Day 0 of the following month is the last day of this one.
	last = civil.DateOf(time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC))
	return first, last
}

package model

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseDate("20230626")
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 26}, d)
	})

	t.Run("not a real calendar date", func(t *testing.T) {
		_, err := ParseDate("20230231")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("wrong shape", func(t *testing.T) {
		for _, token := range []string{"", "2023-06-26", "202306", "abcdefgh", "20230626x"} {
			_, err := ParseDate(token)
			assert.ErrorIs(t, err, ErrInvalidDate, "token %q", token)
		}
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "20230601", FormatDate(civil.Date{Year: 2023, Month: time.June, Day: 1}))
}

func TestParseYearMonth(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		year, month, err := ParseYearMonth("202306")
		require.NoError(t, err)
		assert.Equal(t, 2023, year)
		assert.Equal(t, 6, month)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, token := range []string{"", "2023", "2023066", "202313", "202300", "2023ab"} {
			_, _, err := ParseYearMonth(token)
			assert.ErrorIs(t, err, ErrInvalidMonth, "token %q", token)
		}
	})
}

func TestMonthBounds(t *testing.T) {
	t.Run("thirty day month", func(t *testing.T) {
		first, last := MonthBounds(2023, 6)
		assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 1}, first)
		assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 30}, last)
	})

	t.Run("february in a leap year", func(t *testing.T) {
		_, last := MonthBounds(2024, 2)
		assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, last)
	})

	t.Run("december", func(t *testing.T) {
		_, last := MonthBounds(2023, 12)
		assert.Equal(t, civil.Date{Year: 2023, Month: time.December, Day: 31}, last)
	})
}

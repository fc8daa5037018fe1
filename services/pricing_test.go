package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuote(t *testing.T) {
	nights, total, err := Quote(decimal.RequireFromString("100.00"), day("2024-01-01"), day("2024-01-04"))
	require.NoError(t, err)
	assert.Equal(t, 3, nights)
	assert.Equal(t, "300.00", total.StringFixed(2))
}

func TestQuoteCountsCalendarDaysOverLongRanges(t *testing.T) {
	nights, total, err := Quote(decimal.RequireFromString("1.00"), day("2024-01-01"), day("2400-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 137331, nights)
	assert.Equal(t, "137331.00", total.StringFixed(2))
}

func TestQuoteRejectsBadRanges(t *testing.T) {
	price := decimal.RequireFromString("80.50")

	_, _, err := Quote(price, day("2024-01-04"), day("2024-01-01"))
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, validator.MsgEndBeforeStart, appErr.Message)

	_, _, err = Quote(price, day("2024-01-01"), day("2024-01-01"))
	require.Error(t, err)
	assert.Equal(t, validator.MsgAtLeastOneNight, errors.GetAppError(err).Message)
}

func TestQuoteRejectsTotalOverColumnLimit(t *testing.T) {
	_, _, err := Quote(decimal.RequireFromString("99999999.99"), day("2024-01-01"), day("2024-01-03"))
	require.Error(t, err)
	assert.Equal(t, "totalPrice", errors.GetAppError(err).Field)
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, "241.50", TotalPrice(decimal.RequireFromString("80.50"), 3).StringFixed(2))
	assert.Equal(t, "0.00", TotalPrice(decimal.RequireFromString("80.50"), 0).StringFixed(2))
}

func TestAverageRating(t *testing.T) {
	assert.Nil(t, AverageRating(0, 0))

	cases := []struct {
		sum, count int64
		want       float64
	}{
		{9, 2, 4.5},
		{13, 3, 4.33},
		{5, 1, 5},
		{17, 8, 2.12},
		{11, 8, 1.38},
		{167, 40, 4.17},
		{7, 8, 0.88},
	}
	for _, tc := range cases {
		got := AverageRating(tc.sum, tc.count)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got, "sum=%d count=%d", tc.sum, tc.count)
	}
}

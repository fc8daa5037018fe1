package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tricyvic/alx-travel-app-0x00/constants"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

var maxTotalPrice = decimal.New(1, constants.PriceIntegerDigits)

// Quote kiểm tra khoảng ngày rồi tính số đêm và tổng tiền
func Quote(pricePerNight decimal.Decimal, start, end time.Time) (int, decimal.Decimal, error) {
	nights, err := validator.ValidateBookingDates(start, end)
	if err != nil {
		return 0, decimal.Zero, err
	}

	total := TotalPrice(pricePerNight, nights)
	if total.GreaterThanOrEqual(maxTotalPrice) {
		return 0, decimal.Zero, errors.Validation("totalPrice",
			fmt.Sprintf("Ensure that there are no more than %d digits in total.", constants.PriceMaxDigits))
	}
	return nights, total, nil
}

// TotalPrice = giá mỗi đêm × số đêm
func TotalPrice(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(constants.PriceDecimalPlaces)
}

// AverageRating là trung bình rating làm tròn 2 chữ số, nil khi chưa có review.
// Làm tròn trên giá trị float64 của trung bình, ví dụ 167/40 = 4.17499... -> 4.17
func AverageRating(sum, count int64) *float64 {
	if count == 0 {
		return nil
	}
	mean := float64(sum) / float64(count)
	avg, err := strconv.ParseFloat(strconv.FormatFloat(mean, 'f', 2, 64), 64)
	if err != nil {
		return &mean
	}
	return &avg
}

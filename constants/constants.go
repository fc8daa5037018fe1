package constants

// Định dạng ngày cho startDate/endDate
const DateLayout = "2006-01-02"

// Phân trang
const (
	DefaultPage  = 0
	DefaultLimit = 20
	MaxLimit     = 100
)

// Giới hạn của cột decimal(10,2)
const (
	PriceMaxDigits     = 10
	PriceDecimalPlaces = 2
	PriceIntegerDigits = PriceMaxDigits - PriceDecimalPlaces
)

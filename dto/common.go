package dto

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/tricyvic/alx-travel-app-0x00/constants"
)

// Date serialize dạng YYYY-MM-DD thay vì RFC3339
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(constants.DateLayout))
}

// FormatMoney trả về số tiền với đúng 2 chữ số thập phân, ví dụ "300.00"
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(constants.PriceDecimalPlaces)
}

// ListQuery là tham số phân trang dùng chung
type ListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListQuery) Normalize() ListQuery {
	if q.Page < 0 {
		q.Page = constants.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = constants.DefaultLimit
	}
	if q.Limit > constants.MaxLimit {
		q.Limit = constants.MaxLimit
	}
	return q
}

func (q ListQuery) Offset() int {
	n := q.Normalize()
	return n.Page * n.Limit
}

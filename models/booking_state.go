package models

import "errors"

var (
	ErrCannotConfirmCanceled = errors.New("cannot confirm canceled booking")
	ErrCannotReopenBooking   = errors.New("cannot move booking back to pending")
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Reopen(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCanceled
	return nil
}

func (s *PendingState) Reopen(booking *Booking) error {
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return nil
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCanceled
	return nil
}

func (s *ConfirmedState) Reopen(booking *Booking) error {
	return ErrCannotReopenBooking
}

// CanceledState trạng thái đã hủy, không chuyển tiếp được nữa
type CanceledState struct{}

func (s *CanceledState) Confirm(booking *Booking) error {
	return ErrCannotConfirmCanceled
}

func (s *CanceledState) Cancel(booking *Booking) error {
	return nil
}

func (s *CanceledState) Reopen(booking *Booking) error {
	return ErrCannotReopenBooking
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status BookingStatus) BookingState {
	switch status {
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCanceled:
		return &CanceledState{}
	default:
		return &PendingState{}
	}
}

// TransitionTo chuyển booking sang trạng thái target thông qua state hiện tại
func (b *Booking) TransitionTo(target BookingStatus) error {
	state := GetBookingState(b.Status)
	switch target {
	case BookingStatusPending:
		return state.Reopen(b)
	case BookingStatusConfirmed:
		return state.Confirm(b)
	case BookingStatusCanceled:
		return state.Cancel(b)
	}
	return errors.New("unknown booking status: " + string(target))
}

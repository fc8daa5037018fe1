package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingStatusPending, BookingStatusPending, true},
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCanceled, true},
		{BookingStatusConfirmed, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusCanceled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCanceled, BookingStatusCanceled, true},
		{BookingStatusCanceled, BookingStatusConfirmed, false},
		{BookingStatusCanceled, BookingStatusPending, false},
	}
	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		err := b.TransitionTo(tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.to, b.Status)
		} else {
			assert.Error(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.from, b.Status)
		}
	}
}

func TestTransitionToUnknownStatus(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	assert.Error(t, b.TransitionTo("archived"))
	assert.False(t, BookingStatus("archived").Valid())
}

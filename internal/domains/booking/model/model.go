package model

import (
	"studio/shared/model"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldBookingDate    = "booking_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldTotalHours     = "total_hours"
	FieldTotalPrice     = "total_price"
	FieldStatus         = "status"
	FieldPaymentStatus  = "payment_status"
	FieldPaymentSlipURL = "payment_slip_url"
	FieldTermsAccepted  = "terms_accepted"
	FieldNotes          = "notes"
	FieldCreatedBy      = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking is a reservation of one room for a half-open [StartTime, EndTime)
// range of a single day. Clock values are "HH:MM". Rows are never deleted;
// a booking leaves the schedule by moving to the cancelled status.
type Booking struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	BookingDate    time.Time `db:"booking_date"`
	StartTime      string    `db:"start_time"`
	EndTime        string    `db:"end_time"`
	TotalHours     float64   `db:"total_hours"`
	TotalPrice     float64   `db:"total_price"`
	Status         string    `db:"status"`
	PaymentStatus  string    `db:"payment_status"`
	PaymentSlipURL string    `db:"payment_slip_url"`
	TermsAccepted  bool      `db:"terms_accepted"`
	Notes          string    `db:"notes"`
	model.Metadata
}

// Active reports whether the booking still holds its time slot.
func (b Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

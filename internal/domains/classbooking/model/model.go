package model

import (
	"studio/shared/model"
	"time"
)

const (
	TableName  = "class_bookings"
	EntityName = "class_booking"

	FieldID             = "id"
	FieldClassID        = "class_id"
	FieldBookingDate    = "booking_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
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

// ClassBooking reserves a private lesson session. The end time is derived
// from the class's fixed duration at submission, never taken from input.
type ClassBooking struct {
	ID             string    `db:"id"`
	ClassID        string    `db:"class_id"`
	BookingDate    time.Time `db:"booking_date"`
	StartTime      string    `db:"start_time"`
	EndTime        string    `db:"end_time"`
	TotalPrice     float64   `db:"total_price"`
	Status         string    `db:"status"`
	PaymentStatus  string    `db:"payment_status"`
	PaymentSlipURL string    `db:"payment_slip_url"`
	TermsAccepted  bool      `db:"terms_accepted"`
	Notes          string    `db:"notes"`
	model.Metadata
}

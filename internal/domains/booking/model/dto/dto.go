package dto

import (
	"time"

	"github.com/google/uuid"

	"studio/internal/domains/booking/model"
	"studio/shared"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id"      validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time"   validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time"     validate:"required,datetime=15:04"`
	Notes       string `json:"notes"        validate:"omitempty,max=1000"`
}

// ToModel builds a fresh reservation. New bookings always enter the schedule
// unpaid and awaiting confirmation.
func (c *CreateBookingRequest) ToModel(user string, totalHours, totalPrice float64) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		BookingDate:   bookingDate,
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		TotalHours:    totalHours,
		TotalPrice:    totalPrice,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		TermsAccepted: false,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type PaymentRequest struct {
	PaymentSlip   string `json:"payment_slip"   validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	TermsAccepted bool   `json:"terms_accepted" validate:"required"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	BookingDate    string  `json:"booking_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	TotalHours     float64 `json:"total_hours"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentSlipURL string  `json:"payment_slip_url,omitempty"`
	TermsAccepted  bool    `json:"terms_accepted"`
	Notes          string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.TotalHours = model.TotalHours
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentSlipURL = model.PaymentSlipURL
	r.TermsAccepted = model.TermsAccepted
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	RoomID          string   `json:"room_id"`
	Date            string   `json:"date"`
	Slots           []string `json:"slots"`
	AvailableStarts []string `json:"available_starts"`
	AvailableEnds   []string `json:"available_ends,omitempty"`
}

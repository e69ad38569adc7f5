package dto

import (
	"time"

	"github.com/google/uuid"

	"studio/internal/domains/classbooking/model"
	"studio/shared"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type CreateClassBookingRequest struct {
	ClassID     string `json:"class_id"     validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time"   validate:"required,datetime=15:04"`
	Notes       string `json:"notes"        validate:"omitempty,max=1000"`
}

func (c *CreateClassBookingRequest) ToModel(user, endTime string, totalPrice float64) (model.ClassBooking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.ClassBooking{}, err
	}

	return model.ClassBooking{
		ID:            uuid.NewString(),
		ClassID:       c.ClassID,
		BookingDate:   bookingDate,
		StartTime:     c.StartTime,
		EndTime:       endTime,
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

type ClassBookingResponse struct {
	ID             string  `json:"id"`
	ClassID        string  `json:"class_id"`
	BookingDate    string  `json:"booking_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentSlipURL string  `json:"payment_slip_url,omitempty"`
	TermsAccepted  bool    `json:"terms_accepted"`
	Notes          string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *ClassBookingResponse) FromModel(model model.ClassBooking) {
	r.ID = model.ID
	r.ClassID = model.ClassID
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentSlipURL = model.PaymentSlipURL
	r.TermsAccepted = model.TermsAccepted
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetClassBookingsResponse struct {
	Bookings  []ClassBookingResponse `json:"bookings"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetClassBookingsResponse) FromModels(models []model.ClassBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]ClassBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	ClassID         string   `json:"class_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	AvailableStarts []string `json:"available_starts"`
}

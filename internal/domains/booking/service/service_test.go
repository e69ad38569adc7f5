package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	"studio/infras/otel/mocks"
	s3Mocks "studio/infras/s3/mocks"
	bookingMocks "studio/internal/domains/booking/mocks"
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/service"
	roomMocks "studio/internal/domains/room/mocks"
	roomModel "studio/internal/domains/room/model"
	eventsMocks "studio/internal/events/mocks"
	cacheMocks "studio/shared/cache/mocks"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	gModel "studio/shared/model"
	"studio/shared/schedule"
	"studio/shared/timezone"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Booking.OpenHour = 9
	cfg.App.Booking.CloseHour = 22
	cfg.App.Booking.StepMinutes = 30
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	return cfg
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	activeRoom := roomModel.Room{
		ID:         "room-id-123",
		Name:       "Practice Room A",
		Type:       roomModel.TypePractice,
		HourlyRate: 150000,
		Active:     true,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		withUser  bool
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "10:00",
				EndTime:     "11:30",
			},
			withUser: true,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)

				mockRepo.EXPECT().
					InsertIfVacant(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
				assert.Equal(t, 1.5, res.TotalHours)
				assert.Equal(t, 225000.0, res.TotalPrice)
			},
		},
		{
			name: "missing user",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "10:00",
				EndTime:     "11:00",
			},
			withUser:  false,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "11:00",
				EndTime:     "10:00",
			},
			withUser:  true,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "outside operating hours",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "21:30",
				EndTime:     "22:30",
			},
			withUser:  true,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "inactive room",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "10:00",
				EndTime:     "11:00",
			},
			withUser: true,
			setupMock: func() {
				inactiveRoom := activeRoom
				inactiveRoom.Active = false

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveRoom, nil)
			},
			wantErr: true,
		},
		{
			name: "slot already booked",
			req: dto.CreateBookingRequest{
				RoomID:      "room-id-123",
				BookingDate: "2026-09-15",
				StartTime:   "10:00",
				EndTime:     "11:00",
			},
			withUser: true,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)

				mockRepo.EXPECT().
					InsertIfVacant(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("This time slot is already booked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			if tt.withUser {
				ctx = context.WithValue(ctx, constant.ContextKeyUserID, "test-user-id")
			}

			result, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, result)
				}
			}
		})
	}
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	pendingBooking := model.Booking{
		ID:            "booking-id-123",
		RoomID:        "room-id-123",
		BookingDate:   timezone.Now(),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedBy: "test-user-id",
		},
	}

	paymentReq := dto.PaymentRequest{
		PaymentSlip:   "data:image/png;base64,iVBORw0KGgo=",
		TermsAccepted: true,
	}

	tests := []struct {
		name      string
		id        string
		req       dto.PaymentRequest
		withUser  bool
		setupMock func()
		wantErr   bool
	}{
		{
			name:     "successful payment confirmation",
			id:       "booking-id-123",
			req:      paymentReq,
			withUser: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "test-bucket", "receipts", gomock.Any(), "image/png", gomock.Any()).
					Return("https://example.com/test-bucket/receipts/slip.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "missing user",
			id:        "booking-id-123",
			req:       paymentReq,
			withUser:  false,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:     "booking not owned reads as not found",
			id:       "booking-id-123",
			req:      paymentReq,
			withUser: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name:     "cancelled booking",
			id:       "booking-id-123",
			req:      paymentReq,
			withUser: true,
			setupMock: func() {
				cancelled := pendingBooking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name:     "payment already confirmed",
			id:       "booking-id-123",
			req:      paymentReq,
			withUser: true,
			setupMock: func() {
				paid := pendingBooking
				paid.PaymentStatus = model.PaymentStatusPaid

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid payment slip",
			id:   "booking-id-123",
			req: dto.PaymentRequest{
				PaymentSlip:   "not-a-data-uri",
				TermsAccepted: true,
			},
			withUser: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)
			},
			wantErr: true,
		},
		{
			name:     "update failure rolls back upload",
			id:       "booking-id-123",
			req:      paymentReq,
			withUser: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://example.com/test-bucket/receipts/slip.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))

				mockS3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("slip.png")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			if tt.withUser {
				ctx = context.WithValue(ctx, constant.ContextKeyUserID, "test-user-id")
			}

			result, err := svc.ConfirmPayment(ctx, tt.id, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, result.Status)
				assert.Equal(t, model.PaymentStatusPaid, result.PaymentStatus)
				assert.NotEmpty(t, result.PaymentSlipURL)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	pendingBooking := model.Booking{
		ID:            "booking-id-123",
		RoomID:        "room-id-123",
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedBy: "test-user-id",
		},
	}

	tests := []struct {
		name      string
		id        string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			id:   "booking-id-123",
			role: constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "paid booking marked for refund",
			id:   "booking-id-123",
			role: constant.RoleUser,
			setupMock: func() {
				paid := pendingBooking
				paid.Status = model.StatusConfirmed
				paid.PaymentStatus = model.PaymentStatusPaid

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.AssignableToTypeOf(map[string]any{}), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.PaymentStatusRefunded, fields[model.FieldPaymentStatus])

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin can cancel any booking",
			id:   "booking-id-123",
			role: constant.RoleAdmin,
			setupMock: func() {
				other := pendingBooking
				other.CreatedBy = "someone-else"

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			role: constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already cancelled",
			id:   "booking-id-123",
			role: constant.RoleUser,
			setupMock: func() {
				cancelled := pendingBooking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Cancel(ctx, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	booked := []schedule.Interval{
		{Start: "10:00", End: "11:00"},
	}

	tests := []struct {
		name      string
		roomID    string
		date      string
		start     string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.AvailabilityResponse)
	}{
		{
			name:   "slots minus booked intervals",
			roomID: "room-id-123",
			date:   "2026-09-15",
			start:  "",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ActiveIntervals(gomock.Any(), "room-id-123", gomock.Any()).
					Return(booked, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.AvailabilityResponse) {
				// 9:00 through 22:00 on a 30 minute grid is 27 boundaries.
				assert.Len(t, res.Slots, 27)
				assert.NotContains(t, res.AvailableStarts, "10:00")
				assert.NotContains(t, res.AvailableStarts, "10:30")
				assert.Contains(t, res.AvailableStarts, "09:00")
				assert.Contains(t, res.AvailableStarts, "09:30")
				assert.Contains(t, res.AvailableStarts, "11:00")
				// 22:00 is the closing boundary, never a start.
				assert.NotContains(t, res.AvailableStarts, "22:00")
				assert.Empty(t, res.AvailableEnds)
			},
		},
		{
			name:   "valid ends for a chosen start",
			roomID: "room-id-123",
			date:   "2026-09-15",
			start:  "09:00",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ActiveIntervals(gomock.Any(), "room-id-123", gomock.Any()).
					Return(booked, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.AvailabilityResponse) {
				// Ends stop at the next booked interval.
				assert.Equal(t, []string{"09:30", "10:00"}, res.AvailableEnds)
			},
		},
		{
			name:   "empty day keeps every boundary",
			roomID: "room-id-123",
			date:   "2026-09-15",
			start:  "",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ActiveIntervals(gomock.Any(), "room-id-123", gomock.Any()).
					Return([]schedule.Interval{}, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.AvailabilityResponse) {
				assert.Len(t, res.AvailableStarts, 26)
			},
		},
		{
			name:      "invalid date",
			roomID:    "room-id-123",
			date:      "15-09-2026",
			start:     "",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:   "room not found",
			roomID: "nonexistent-id",
			date:   "2026-09-15",
			start:  "",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:   "invalid start",
			roomID: "room-id-123",
			date:   "2026-09-15",
			start:  "25:99",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ActiveIntervals(gomock.Any(), "room-id-123", gomock.Any()).
					Return([]schedule.Interval{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Availability(ctx, tt.roomID, tt.date, tt.start)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, result)
				}
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	booking := model.Booking{
		ID:            "booking-id-123",
		RoomID:        "room-id-123",
		BookingDate:   timezone.Now(),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "booking-id-123",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := newTestConfig()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3, mockPublisher)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult dto.GetBookingsResponse
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				bookings := []model.Booking{
					{
						ID:          "booking-id-123",
						RoomID:      "room-id-123",
						BookingDate: timezone.Now(),
						StartTime:   "10:00",
						EndTime:     "11:00",
						Status:      model.StatusPending,
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetBookingsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

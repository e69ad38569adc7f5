// Package events publishes booking lifecycle facts to Kafka. Publication is
// fire-and-forget from the caller's point of view; a failed publish is
// logged and never fails the request that produced it.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"studio/config"
	"studio/infras/kafka"
	"studio/shared/constant"
	"studio/shared/timezone"
)

const (
	TypeBookingCreated        = "booking.created"
	TypeBookingPaymentPaid    = "booking.payment_confirmed"
	TypeBookingCancelled      = "booking.cancelled"
	TypeClassBookingCreated   = "class_booking.created"
	TypeClassBookingPaid      = "class_booking.payment_confirmed"
	TypeClassBookingCancelled = "class_booking.cancelled"
)

type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	ResourceID string `json:"resource_id"`
	UserID     string `json:"user_id"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(eventType, bookingID, resourceID, userID string) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  bookingID,
		ResourceID: resourceID,
		UserID:     userID,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) error {
	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topic.BookingEvents, message)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

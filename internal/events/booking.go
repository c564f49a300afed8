package events

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"

	"stay/config"
	"stay/infras/kafka"
	"stay/shared/constant"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	BookingCreated       = "booking.created"
	BookingUpdated       = "booking.updated"
	BookingStatusChanged = "booking.status_changed"
	BookingCancelled     = "booking.cancelled"
	BookingDeleted       = "booking.deleted"
)

// BookingEvent is the payload published on every booking lifecycle change.
type BookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	GuestID    *string `json:"guest_id,omitempty"`
	Status     string  `json:"status"`
	OccurredAt string  `json:"occurred_at"`
	Actor      string  `json:"actor,omitempty"`
}

type BookingPublisher interface {
	Publish(ctx context.Context, event BookingEvent)
}

type publisherImpl struct {
	cfg   *config.Config
	kafka kafka.Client
}

func NewBookingPublisher(cfg *config.Config, kafka kafka.Client) BookingPublisher {
	return &publisherImpl{
		cfg:   cfg,
		kafka: kafka,
	}
}

// Publish sends the event fire-and-forget. Delivery failures are logged, never
// surfaced; the booking write has already committed.
func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) {
	if !p.cfg.External.Kafka.Enable {
		return
	}

	event.OccurredAt = timezone.Now().Format(constant.DateFormat)

	if actor, ok := ctx.Value(constant.ContextKeyUserID).(string); ok {
		event.Actor = actor
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.BookingID,
			Value: event,
		}

		if err := p.kafka.SendMessages(c, p.cfg.External.Kafka.Topic.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Str("bookingID", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}

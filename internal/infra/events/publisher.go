package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated = "booking.created"

	headerEventType = "event-type"
	headerVersion   = "event-version"
)

var ErrPublisherClosed = errs.New("publisher is closed")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type bookingCreatedPayload struct {
	BookingID      string        `json:"bookingId"`
	UserID         string        `json:"userId"`
	PropertyID     string        `json:"propertyId"`
	BookingType    string        `json:"bookingType"`
	Status         string        `json:"status"`
	GuestEmail     string        `json:"guestEmail"`
	CheckInDate    calendar.Date `json:"checkInDate,omitzero"`
	CheckOutDate   calendar.Date `json:"checkOutDate,omitzero"`
	InspectionDate calendar.Date `json:"inspectionDate,omitzero"`
	InspectionTime string        `json:"inspectionTime,omitempty"`
	TotalPrice     pricing.Money `json:"totalPrice"`
	OccurredAt     time.Time     `json:"occurredAt"`
}

// KafkaPublisher writes booking events keyed by booking ID so all events of
// one booking land on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
	mu      sync.RWMutex
	closed  bool
}

func NewKafkaPublisher(cfg config.EventsConfig, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("Kafka writer error", slog.String("detail", fmt.Sprintf(msg, args...)))
		}),
	}
	return newKafkaPublisher(w, cfg.WriteTimeout, logger)
}

func newKafkaPublisher(w messageWriter, timeout time.Duration, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: timeout, logger: logger}
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, evt booking.CreatedEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	value, err := json.Marshal(bookingCreatedPayload{
		BookingID:      evt.BookingID,
		UserID:         evt.UserID,
		PropertyID:     evt.PropertyID,
		BookingType:    evt.BookingType,
		Status:         evt.Status,
		GuestEmail:     evt.GuestEmail,
		CheckInDate:    evt.CheckIn,
		CheckOutDate:   evt.CheckOut,
		InspectionDate: evt.InspectionDate,
		InspectionTime: evt.InspectionTime,
		TotalPrice:     evt.TotalPrice,
		OccurredAt:     evt.OccurredAt,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking.created")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(evt.BookingID),
		Value: value,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(EventBookingCreated)},
			{Key: headerVersion, Value: []byte("1")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish %s for booking %s", EventBookingCreated, evt.BookingID)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishBookingCreated(_ context.Context, evt booking.CreatedEvent) error {
	p.logger.Debug("Event publishing disabled", slog.String("event", EventBookingCreated), slog.String("booking_id", evt.BookingID))
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/infra/mq"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

const TopicPaymentPaid = "payment.paid"

// PaymentPaid is the message body of TopicPaymentPaid.
type PaymentPaid struct {
	BookingID uuid.UUID `json:"booking_id"`
	Amount    int64     `json:"amount"`
}

type PaymentHandler struct {
	bookings commands.BookingCommands
}

func NewPaymentHandler(bookings commands.BookingCommands) *PaymentHandler {
	return &PaymentHandler{bookings: bookings}
}

// Handle confirms the booking a payment is for. Malformed messages are rejected, bookings the
// payment cannot apply to are acknowledged and logged, and anything else is requeued.
func (h *PaymentHandler) Handle(ctx context.Context, routingKey string, body []byte) mq.Disposition {
	log := slog.With("consumer", "payment", "routing_key", routingKey)

	if routingKey != TopicPaymentPaid {
		log.WarnContext(ctx, "skipping unknown routing key")
		return mq.Ack
	}

	var msg PaymentPaid
	if err := json.Unmarshal(body, &msg); err != nil {
		log.WarnContext(ctx, "rejecting malformed payment", "error", err)
		return mq.Reject
	}
	if msg.BookingID == uuid.Nil {
		log.WarnContext(ctx, "rejecting payment without booking_id")
		return mq.Reject
	}
	paid, err := money.New(msg.Amount)
	if err != nil {
		log.WarnContext(ctx, "rejecting payment with invalid amount", "amount", msg.Amount, "error", err)
		return mq.Reject
	}

	log = log.With("booking_id", msg.BookingID)
	if _, err := h.bookings.ConfirmPayment(ctx, msg.BookingID, paid); err != nil {
		if isPaymentRejection(err) {
			log.WarnContext(ctx, "payment not applied", "amount", msg.Amount, "error", err)
			return mq.Ack
		}
		log.ErrorContext(ctx, "failed to apply payment, requeueing", "error", err)
		return mq.Requeue
	}
	return mq.Ack
}

func isPaymentRejection(err error) bool {
	return errors.Is(err, booking.ErrInvalidState) ||
		errors.Is(err, booking.ErrInsufficientDeposit) ||
		errors.Is(err, errs.ErrBookingNotFound)
}

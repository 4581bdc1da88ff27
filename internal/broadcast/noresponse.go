package broadcast

import (
	"context"
	"fmt"

	"github.com/stpnv0/interviewsched/internal/broadcast/ports"
)

// NoResponseReporter names recipients who were sent a sign-up
// invitation but never went on to book a slot.
type NoResponseReporter struct {
	messages ports.MessageRepo
	bookings ports.BookingLookup
}

func NewNoResponseReporter(messages ports.MessageRepo, bookings ports.BookingLookup) *NoResponseReporter {
	return &NoResponseReporter{messages: messages, bookings: bookings}
}

func (n *NoResponseReporter) Report(ctx context.Context) ([]string, error) {
	delivered, err := n.messages.ListSignUpDelivered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sign-up delivered: %w", err)
	}
	if len(delivered) == 0 {
		return nil, nil
	}

	unbooked, err := n.bookings.WithoutBooking(ctx, delivered)
	if err != nil {
		return nil, fmt.Errorf("filter without booking: %w", err)
	}

	return unbooked, nil
}

package broadcast

import (
	"context"
	"testing"

	"github.com/stpnv0/interviewsched/internal/broadcast/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoResponseReporter_Report_FiltersDeliveredAgainstBookings(t *testing.T) {
	messages := mocks.NewMockMessageRepo(t)
	bookings := mocks.NewMockBookingLookup(t)
	n := NewNoResponseReporter(messages, bookings)

	messages.EXPECT().ListSignUpDelivered(mock.Anything).Return([]string{"r1", "r2", "r3"}, nil)
	bookings.EXPECT().WithoutBooking(mock.Anything, []string{"r1", "r2", "r3"}).Return([]string{"r2"}, nil)

	out, err := n.Report(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"r2"}, out)
}

func TestNoResponseReporter_Report_ShortCircuitsWhenNothingDelivered(t *testing.T) {
	messages := mocks.NewMockMessageRepo(t)
	bookings := mocks.NewMockBookingLookup(t)
	n := NewNoResponseReporter(messages, bookings)

	messages.EXPECT().ListSignUpDelivered(mock.Anything).Return(nil, nil)

	out, err := n.Report(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, out)
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/interviewsched/internal/booking/mocks"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger(logger.Engine("slog"), "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestManager_CreateSlot_RejectsNonPositiveCapacity(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	_, err := m.CreateSlot(context.Background(), domain.CreateSlotInput{Capacity: 0})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestManager_CreateSlot_Succeeds(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	slots.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Slot")).Return(nil)

	s, err := m.CreateSlot(context.Background(), domain.CreateSlotInput{
		StartTime: time.Now(),
		Venue:     "Room A",
		Capacity:  10,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 10, s.Capacity)
}

func TestManager_Book_PropagatesSlotFullError(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	slot := &domain.Slot{ID: "s1", Capacity: 1, BookedCount: 1}
	slots.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	bookings.EXPECT().Book(mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&domain.ErrSlotFull{Capacity: 1, Current: 1})

	_, err := m.Book(context.Background(), "r1", "s1")

	var full *domain.ErrSlotFull
	assert.ErrorAs(t, err, &full)
}

func TestManager_Book_ReturnsErrorWhenSlotMissing(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	slots.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	_, err := m.Book(context.Background(), "r1", "missing")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestManager_Book_Succeeds(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	slot := &domain.Slot{ID: "s1", Capacity: 5}
	slots.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	bookings.EXPECT().Book(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := m.Book(context.Background(), "r1", "s1")

	assert.NoError(t, err)
	assert.Equal(t, "r1", b.RecipientID)
	assert.Equal(t, "s1", b.SlotID)
}

func TestManager_WithoutBooking_DelegatesToRepo(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	bookings.EXPECT().ListRecipientsWithoutBooking(mock.Anything, []string{"a", "b"}).
		Return([]string{"a"}, nil)

	out, err := m.WithoutBooking(context.Background(), []string{"a", "b"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, out)
}

func TestManager_DueToday_PropagatesError(t *testing.T) {
	slots := mocks.NewMockSlotRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	m := NewManager(slots, bookings, newTestLogger(t))

	bookings.EXPECT().ListDueToday(mock.Anything).Return(nil, errors.New("db down"))

	_, err := m.DueToday(context.Background())

	assert.Error(t, err)
}

// fakeSlotRepo hands back the same fixed slot regardless of id; the
// concurrency tests below only need GetByID to succeed.
type fakeSlotRepo struct {
	slot *domain.Slot
}

func (f fakeSlotRepo) Create(ctx context.Context, s *domain.Slot) error { return nil }
func (f fakeSlotRepo) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return f.slot, nil
}
func (f fakeSlotRepo) ListOpen(ctx context.Context) ([]*domain.Slot, error) {
	return []*domain.Slot{f.slot}, nil
}
func (f fakeSlotRepo) UpdateCapacity(ctx context.Context, id string, capacity int) error { return nil }
func (f fakeSlotRepo) Update(ctx context.Context, id string, in domain.UpdateSlotInput) error {
	return nil
}
func (f fakeSlotRepo) Delete(ctx context.Context, id string) error { return nil }

// fakeBookingRepo reproduces the repository's FOR UPDATE-locked
// conditional insert: the capacity check and the seat increment happen
// under one mutex, so concurrent bookers on the same slot serialise on
// it exactly the way the real locked transaction serialises on the row.
type fakeBookingRepo struct {
	mu          sync.Mutex
	capacity    int
	bySlot      map[string]int
	byRecipient map[string]*domain.Booking
}

func newFakeBookingRepo(capacity int) *fakeBookingRepo {
	return &fakeBookingRepo{
		capacity:    capacity,
		bySlot:      make(map[string]int),
		byRecipient: make(map[string]*domain.Booking),
	}
}

func (f *fakeBookingRepo) Book(ctx context.Context, b *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if prior, ok := f.byRecipient[b.RecipientID]; ok {
		f.bySlot[prior.SlotID]--
		delete(f.byRecipient, b.RecipientID)
	}

	if f.bySlot[b.SlotID] >= f.capacity {
		return &domain.ErrSlotFull{Capacity: f.capacity, Current: f.bySlot[b.SlotID]}
	}
	f.bySlot[b.SlotID]++
	f.byRecipient[b.RecipientID] = b
	return nil
}

func (f *fakeBookingRepo) GetByRecipient(ctx context.Context, recipientID string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.byRecipient[recipientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Booking
	for _, b := range f.byRecipient {
		if b.SlotID == slotID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListDueToday(ctx context.Context) ([]*domain.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ListRecipientsWithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error) {
	return nil, nil
}
func (f *fakeBookingRepo) DeleteBySlot(ctx context.Context, slotID string) error { return nil }
func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error          { return nil }

// TestManager_Book_ConcurrentBookingsOnFreshSlotYieldExactlyCapacitySuccesses
// exercises the slot-capacity race directly: N goroutines call Book on a
// single fresh slot of capacity C, and exactly min(N,C) must succeed with
// the rest failing SlotFull, matching every counter.
func TestManager_Book_ConcurrentBookingsOnFreshSlotYieldExactlyCapacitySuccesses(t *testing.T) {
	const capacity = 3
	const n = 10

	slot := &domain.Slot{ID: "s1", Capacity: capacity}
	slots := fakeSlotRepo{slot: slot}
	bookings := newFakeBookingRepo(capacity)
	m := NewManager(slots, bookings, newTestLogger(t))

	results := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := m.Book(context.Background(), fmt.Sprintf("r%d", i), "s1")
			results[i] = err
		}(i)
	}
	wg.Wait()

	successes, fulls := 0, 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var full *domain.ErrSlotFull
		if errors.As(err, &full) {
			fulls++
			continue
		}
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, capacity, successes)
	assert.Equal(t, n-capacity, fulls)

	bookings.mu.Lock()
	defer bookings.mu.Unlock()
	assert.Equal(t, capacity, bookings.bySlot["s1"])
}

package booking

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/stpnv0/interviewsched/internal/booking/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
)

// Ranker scores open slots so the offer surface can show the best few
// first: half the score rewards free capacity, half rewards proximity in
// time, decayed exponentially so slots more than a couple days out barely
// register.
type Ranker struct {
	slots ports.SlotRepo
}

func NewRanker(slots ports.SlotRepo) *Ranker {
	return &Ranker{slots: slots}
}

const proximityHalfLifeHours = 48.0

// DefaultTopN is the service-level default for Ranker.Top's n parameter.
const DefaultTopN = 6

func score(s *domain.Slot, now time.Time) float64 {
	hoursUntilStart := s.StartTime.Sub(now).Hours()
	var proximity float64
	if hoursUntilStart > 0 {
		proximity = 100 * math.Exp(-hoursUntilStart/proximityHalfLifeHours)
	}
	return 0.5*float64(s.FreeSeats()) + 0.5*proximity
}

// Top returns the n best-scoring open slots with free capacity and a
// start time still in the future, re-sorted chronologically so the
// offer surface reads in calendar order rather than by score. Ties in
// score are broken by earlier start time, both here at selection and in
// the final chronological pass, so which slot survives truncation at
// the n/n+1 boundary is deterministic.
func (rk *Ranker) Top(ctx context.Context, n int) ([]*domain.Slot, error) {
	slots, err := rk.slots.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var open []*domain.Slot
	for _, s := range slots {
		if s.FreeSeats() > 0 && s.StartTime.After(now) {
			open = append(open, s)
		}
	}

	sort.Slice(open, func(i, j int) bool {
		si, sj := score(open[i], now), score(open[j], now)
		if si != sj {
			return si > sj
		}
		return open[i].StartTime.Before(open[j].StartTime)
	})

	if n > 0 && len(open) > n {
		open = open[:n]
	}

	sort.Slice(open, func(i, j int) bool {
		return open[i].StartTime.Before(open[j].StartTime)
	})

	return open, nil
}

// Package metrics exposes Prometheus counters for the three coordinator
// subsystems. It is deliberately not part of the (out-of-scope) operator
// HTTP surface: the only route it serves is /metrics on a private port.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/logger"
)

var (
	BroadcastsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "broadcasts_created_total",
		Help: "Total number of broadcasts created.",
	})

	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broadcast_messages_sent_total",
		Help: "Total number of broadcast messages delivered, by outcome.",
	}, []string{"outcome"})

	VotesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviewer_votes_recorded_total",
		Help: "Total number of votes recorded by the Vote Recorder.",
	})

	ClaimRaces = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviewer_claim_races_total",
		Help: "Total number of lost claim races in the Review Router.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Total number of successful slot bookings.",
	})

	SlotFullRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_slot_full_total",
		Help: "Total number of bookings rejected because the slot was full.",
	})
)

// Server serves the /metrics endpoint on its own listener, separate from
// any operator-facing surface.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func NewServer(addr string, log logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
		logger:     log,
	}
}

func (s *Server) Start() {
	s.logger.Info("metrics server starting", logger.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("metrics server failed", logger.String("error", err.Error()))
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	return nil
}

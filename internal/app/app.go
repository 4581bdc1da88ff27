package app

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/interviewsched/internal/booking"
	bookingports "github.com/stpnv0/interviewsched/internal/booking/ports"
	"github.com/stpnv0/interviewsched/internal/broadcast"
	broadcastports "github.com/stpnv0/interviewsched/internal/broadcast/ports"
	"github.com/stpnv0/interviewsched/internal/broker"
	"github.com/stpnv0/interviewsched/internal/config"
	"github.com/stpnv0/interviewsched/internal/directory"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/stpnv0/interviewsched/internal/notification"
	"github.com/stpnv0/interviewsched/internal/repository"
	"github.com/stpnv0/interviewsched/internal/review"
	reviewports "github.com/stpnv0/interviewsched/internal/review/ports"
	"github.com/stpnv0/interviewsched/internal/scheduler"
	"github.com/stpnv0/interviewsched/internal/worker"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const migrationsDir = "migrations"

// App wires every module the coordinator process owns: booking,
// review, broadcast, their two RabbitMQ-fed workers, the daily
// Reminder Scheduler, and a private metrics listener. There is no HTTP
// API surface here; every operation is driven by a bot handler, a
// worker loop, or the scheduler.
type App struct {
	cfg *config.Config
	log logger.Logger

	db     *dbpg.DB
	broker *broker.Broker
	notify *notification.TelegramNotifier

	bookingMgr    *booking.Manager
	ranker        *booking.Ranker
	router        *review.Router
	recorder      *review.Recorder
	commander     *broadcast.Commander
	projector     *broadcast.Projector
	noResponse    *broadcast.NoResponseReporter
	sched         *scheduler.Scheduler
	metricsServer *metrics.Server

	eventWorkers    []*worker.EventWorker
	deliveryWorkers []*worker.DeliveryWorker

	wg sync.WaitGroup
}

func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"interviewsched",
		"release",
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a.log = log

	if err = a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = a.initBroker(); err != nil {
		return nil, fmt.Errorf("init broker: %w", err)
	}

	if err = a.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return a, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initBroker() error {
	b, err := broker.Connect(a.cfg.RabbitMQ.URL, a.log)
	if err != nil {
		return fmt.Errorf("connecting to rabbitmq: %w", err)
	}
	a.broker = b
	a.log.Info("rabbitmq connected")
	return nil
}

func (a *App) initServices() error {
	slotRepo := repository.NewSlotRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRoleRepo := repository.NewUserRoleRepo(a.db)
	voteRepo := repository.NewVoteRepo(a.db)
	eventRepo := repository.NewBroadcastEventRepo(a.db)
	summaryRepo := repository.NewBroadcastSummaryRepo(a.db)
	messageRepo := repository.NewBroadcastMessageRepo(a.db)

	notify, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.notify = notify

	dirClient := directory.NewClient(a.cfg.Directory.BaseURL, a.cfg.Directory.TTL)

	var slots bookingports.SlotRepo = slotRepo
	var bookings bookingports.BookingRepo = bookingRepo

	a.bookingMgr = booking.NewManager(slots, bookings, a.log)
	a.ranker = booking.NewRanker(slots)

	var votes reviewports.VoteRepo = voteRepo
	var roles reviewports.UserRoleRepo = userRoleRepo

	a.router = review.NewRouter(votes, roles, dirClient, a.cfg.Review.Quorum, a.log)
	a.recorder = review.NewRecorder(votes, a.router, a.log)

	var events broadcastports.EventRepo = eventRepo
	var summaries broadcastports.SummaryRepo = summaryRepo
	var messages broadcastports.MessageRepo = messageRepo
	var publisher broadcastports.Publisher = a.broker
	var sender broadcastports.Sender = a.notify
	var lookup broadcastports.BookingLookup = a.bookingMgr

	a.commander = broadcast.NewCommander(events, summaries, messages, publisher, a.log)
	a.projector = broadcast.NewProjector(summaries, messages)
	a.noResponse = broadcast.NewNoResponseReporter(messages, lookup)

	a.sched = scheduler.New(a.bookingMgr, a.notify, a.log)
	a.metricsServer = metrics.NewServer(a.cfg.Metrics.Addr, a.log)

	for i := 0; i < a.cfg.RabbitMQ.EventWorkerCount; i++ {
		id := fmt.Sprintf("event-worker-%d", i)
		a.eventWorkers = append(a.eventWorkers, worker.NewEventWorker(id, events, messages, publisher, a.log))
	}
	for i := 0; i < a.cfg.RabbitMQ.DeliveryWorkers; i++ {
		a.deliveryWorkers = append(a.deliveryWorkers, worker.NewDeliveryWorker(messages, events, sender, a.projector, a.log))
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.sched.Start(ctx)
	go a.metricsServer.Start()

	for i, w := range a.eventWorkers {
		deliveries, err := a.broker.ConsumeEvents(fmt.Sprintf("event-worker-%d", i))
		if err != nil {
			return fmt.Errorf("consume events for worker %d: %w", i, err)
		}
		a.wg.Add(1)
		go func(w *worker.EventWorker, deliveries <-chan amqp.Delivery) {
			defer a.wg.Done()
			w.Run(ctx, deliveries)
		}(w, deliveries)
	}

	for i, w := range a.deliveryWorkers {
		deliveries, err := a.broker.ConsumeDeliveries(fmt.Sprintf("delivery-worker-%s", uuid.New().String()[:8]))
		if err != nil {
			return fmt.Errorf("consume deliveries for worker %d: %w", i, err)
		}
		a.wg.Add(1)
		go func(w *worker.DeliveryWorker, deliveries <-chan amqp.Delivery) {
			defer a.wg.Done()
			w.Run(ctx, deliveries)
		}(w, deliveries)
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "coordinator started",
		logger.Int("event_workers", len(a.eventWorkers)),
		logger.Int("delivery_workers", len(a.deliveryWorkers)),
	)

	<-ctx.Done()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		a.log.Error("workers did not drain in time, continuing shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
		a.log.Error("metrics server shutdown failed", logger.String("error", err.Error()))
	}

	if err := a.broker.Close(); err != nil {
		a.log.Error("close broker failed", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

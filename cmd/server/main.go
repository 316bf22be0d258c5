package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"fixlist/internal/application"
	applicationHandler "fixlist/internal/application/handler"
	"fixlist/internal/catalog"
	catalogHandler "fixlist/internal/catalog/handler"
	"fixlist/internal/gate"
	"fixlist/internal/leadevent"
	"fixlist/internal/platform/config"
	"fixlist/internal/platform/httpserver"
	"fixlist/internal/platform/logger"
	"fixlist/internal/platform/metrics"
	platformredis "fixlist/internal/platform/redis"
	"fixlist/internal/subscriber"
	subscriberHandler "fixlist/internal/subscriber/handler"
	httptransport "fixlist/internal/transport/http"
)

// main wires the stores, services, and handlers, then runs the HTTP server
// and the outbox worker until a shutdown signal arrives. Business logic
// lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		subStore   subscriber.Store
		appStore   application.Store
		eventStore leadevent.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()

		subs := subscriber.NewPostgresStore(db)
		apps := application.NewPostgresStore(db)
		events := leadevent.NewPostgresStore(db)
		for _, migrate := range []func(context.Context) error{subs.Migrate, apps.Migrate, events.Migrate} {
			if err := migrate(ctx); err != nil {
				log.Error("migrate", "error", err.Error())
				os.Exit(1)
			}
		}
		subStore, appStore, eventStore = subs, apps, events
	} else {
		log.Warn("no postgres DSN configured, using in-memory stores")
		subStore = subscriber.NewInMemoryStore()
		appStore = application.NewInMemoryStore()
		eventStore = leadevent.NewInMemoryStore()
	}

	var notifier subscriber.Notifier = subscriber.NewInMemoryNotifier()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		notifier = subscriber.NewRedisNotifier(redisClient.Client)
	}

	eventService := leadevent.NewService(eventStore)
	subService := subscriber.NewService(subStore, notifier, eventService, m, log)
	appService := application.NewService(appStore, eventService, m, log)
	sheet := gate.NewSheetAccess(subService, cfg.SheetURL, log)
	tracker := catalog.NewTracker(ctx, catalog.NewFileProgressStore(cfg.ProgressFile))

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		Access:       subscriberHandler.New(subService, sheet, log),
		Audit:        applicationHandler.New(appService, log),
		Catalog:      catalogHandler.New(tracker, log),
		SheetURL:     cfg.SheetURL,
		AdminKeyHash: cfg.AdminKeyHash,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	if len(cfg.KafkaSeeds) > 0 {
		publisher, err := leadevent.NewKafkaPublisher(ctx, cfg.KafkaSeeds, cfg.LeadEventTopic)
		if err != nil {
			log.Error("connect kafka", "error", err.Error())
			os.Exit(1)
		}
		defer publisher.Close()

		worker := leadevent.NewWorker(eventStore, publisher, log)
		g.Go(func() error { return worker.Run(gctx) })
	} else {
		log.Warn("no kafka seeds configured, lead events stay in the outbox")
	}

	g.Go(func() error {
		log.Info("starting fixlist server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

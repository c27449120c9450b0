package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/itsDrac/bidhub/internal/cache"
	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/handlers"
	"github.com/itsDrac/bidhub/internal/notify"
	"github.com/itsDrac/bidhub/internal/scheduler"
	"github.com/itsDrac/bidhub/internal/service"
	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/itsDrac/bidhub/pkg/jwt"
	"github.com/itsDrac/bidhub/pkg/logger"
)

const memoryQueueSize = 1024

// Dependencies holds all the intialized instances required by the application.
type Dependencies struct {
	Config        *config.AppConfig
	Logger        *logger.Logger
	DB            *db.DB
	Cache         cache.Cacher
	Queue         notify.Queue
	Services      *service.Services
	BidHandler    *handlers.BidHandler
	SellerHandler *handlers.SellerHandler
	Worker        *notify.Worker
	Scheduler     *scheduler.Scheduler
}

// NewDependencies connects to the database and the notification backend,
// and wires up services, handlers and background jobs.
func NewDependencies(ctx context.Context, cfg *config.AppConfig) (*Dependencies, error) {
	log := logger.NewLogger(cfg.Env)
	deps := &Dependencies{Config: cfg, Logger: log}

	if cfg.DB.MigrateOnStart {
		if err := db.Migrate(cfg.DB.DSN, cfg.DB.MigrationsPath); err != nil {
			slog.Error("[DB] migration failed -> ", "error", err.Error())
			return nil, err
		}
		slog.Info("[DB] migrations applied")
	}

	store, err := db.NewDB(ctx, cfg.DB)
	if err != nil {
		slog.Error("[DB] connection failed -> ", "error", err.Error())
		return nil, err
	}
	deps.DB = store
	slog.Info("[DB] connected")

	if err := deps.initQueue(ctx); err != nil {
		deps.Close()
		return nil, err
	}

	jm, err := jwt.NewJwtManager(cfg.AccessSecret)
	if err != nil {
		deps.Close()
		return nil, err
	}

	services, err := service.NewServices(store, notify.NewDispatcher(deps.Queue, log), jm)
	if err != nil {
		slog.Error("[Service] failed to initialized -> ", "error", err.Error())
		deps.Close()
		return nil, err
	}
	deps.Services = services

	if deps.BidHandler, err = handlers.NewBidHandler(services.BiddingService); err != nil {
		deps.Close()
		return nil, err
	}
	if deps.SellerHandler, err = handlers.NewSellerHandler(services.SellerService); err != nil {
		deps.Close()
		return nil, err
	}

	deps.Worker = notify.NewWorker(deps.Queue, notify.NewLogMailer(log), log)
	deps.Scheduler = scheduler.New(log, CronJobs(services.CronService, cfg.Jobs)...)

	return deps, nil
}

func (d *Dependencies) initQueue(ctx context.Context) error {
	q, c, err := NewQueue(ctx, d.Config, d.Logger)
	if err != nil {
		return err
	}
	d.Queue, d.Cache = q, c
	return nil
}

// NewQueue connects the configured notification backend. The returned cache
// is non-nil only for the redis backend and must be closed by the caller.
func NewQueue(ctx context.Context, cfg *config.AppConfig, log *logger.Logger) (notify.Queue, cache.Cacher, error) {
	switch cfg.Notify.Backend {
	case config.NotifyBackendRedis:
		c, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Error("[Cache] failed to initialized ->", "error", err.Error())
			return nil, nil, err
		}
		if err := c.Ping(ctx); err != nil {
			slog.Error("[Cache] Unable to ping ->", "error", err.Error())
			_ = c.Close()
			return nil, nil, err
		}
		slog.Info("[Cache] connected")
		return notify.NewRedisQueue(c, cfg.Notify.Queue, log), c, nil
	case config.NotifyBackendRabbitMQ:
		q, err := notify.NewAMQPQueue(cfg.Notify.AMQPURL, cfg.Notify.Queue, log)
		if err != nil {
			slog.Error("[Queue] rabbitmq connection failed ->", "error", err.Error())
			return nil, nil, err
		}
		slog.Info("[Queue] rabbitmq connected", "queue", cfg.Notify.Queue)
		return q, nil, nil
	case config.NotifyBackendLog:
		return notify.NewMemoryQueue(memoryQueueSize), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown notification backend %q", cfg.Notify.Backend)
}

// CronJobs adapts the periodic service operations to scheduler jobs.
func CronJobs(cron service.CronServicer, cfg config.JobsConfig) []scheduler.Job {
	return []scheduler.Job{
		{
			Name:     "close-expired-auctions",
			Interval: cfg.CloserInterval,
			Run: func(ctx context.Context) error {
				_, err := cron.CloseExpiredAuctions(ctx)
				if errors.Is(err, service.ErrJobRunning) {
					return scheduler.ErrSkip
				}
				return err
			},
		},
		{
			Name:     "downgrade-expired-sellers",
			Interval: cfg.DowngradeInterval,
			Run: func(ctx context.Context) error {
				_, err := cron.DowngradeExpiredSellers(ctx)
				if errors.Is(err, service.ErrJobRunning) {
					return scheduler.ErrSkip
				}
				return err
			},
		},
	}
}

// Close releases the queue, cache and database in that order.
func (d *Dependencies) Close() error {
	var errs []error
	if d.Queue != nil {
		if err := d.Queue.Close(); err != nil {
			slog.Error("[Queue] close failed ->", "error", err.Error())
			errs = append(errs, err)
		}
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			slog.Error("[Cache] close failed ->", "error", err.Error())
			errs = append(errs, err)
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
	return errors.Join(errs...)
}

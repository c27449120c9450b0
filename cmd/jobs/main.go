// Command jobs runs the periodic auction jobs once and exits. It is meant
// for an external scheduler such as a Kubernetes CronJob.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/itsDrac/bidhub/internal/db"
	"github.com/itsDrac/bidhub/internal/dependency"
	"github.com/itsDrac/bidhub/internal/notify"
	"github.com/itsDrac/bidhub/internal/service"
	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/itsDrac/bidhub/pkg/logger"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	os.Exit(runMain())
}

// runMain returns the exit code so that deferred cleanup runs before exit.
func runMain() int {
	only := flag.String("job", "all", "job to run: close, downgrade or all")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall time limit")
	flag.Parse()

	cfg := config.Load()
	log := logger.NewLogger(cfg.Env).Named("jobs")
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Errorw("invalid configuration", "error", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if !run(ctx, cfg, log, *only) {
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.AppConfig, log *logger.Logger, only string) bool {
	store, err := db.NewDB(ctx, cfg.DB)
	if err != nil {
		log.Errorw("database connection failed", "error", err)
		return false
	}
	defer store.Close()

	notifier, closeNotifier, err := newNotifier(ctx, cfg, log)
	if err != nil {
		log.Errorw("notification backend failed", "error", err)
		return false
	}
	defer closeNotifier()

	cron, err := service.NewCronService(store, notifier)
	if err != nil {
		log.Errorw("cron service init failed", "error", err)
		return false
	}

	ok := true
	if only == "all" || only == "close" {
		n, err := cron.CloseExpiredAuctions(ctx)
		ok = report(log, "close-expired-auctions", int64(n), err) && ok
	}
	if only == "all" || only == "downgrade" {
		n, err := cron.DowngradeExpiredSellers(ctx)
		ok = report(log, "downgrade-expired-sellers", n, err) && ok
	}
	return ok
}

// newNotifier publishes to the shared queue when there is one. With the log
// backend no other process reads this one's memory, so mails go out directly.
func newNotifier(ctx context.Context, cfg *config.AppConfig, log *logger.Logger) (notify.Notifier, func(), error) {
	if cfg.Notify.Backend == config.NotifyBackendLog {
		return notify.NewDirectNotifier(notify.NewLogMailer(log), log), func() {}, nil
	}

	queue, c, err := dependency.NewQueue(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	closeAll := func() {
		_ = queue.Close()
		if c != nil {
			_ = c.Close()
		}
	}
	return notify.NewDispatcher(queue, log), closeAll, nil
}

func report(log *logger.Logger, job string, n int64, err error) bool {
	switch {
	case errors.Is(err, service.ErrJobRunning):
		log.Infow("another instance is running, skipped", "job", job)
		return true
	case err != nil:
		log.Errorw("job failed", "job", job, "error", err)
		return false
	}
	log.Infow("job finished", "job", job, "processed", n)
	return true
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"justicia-backend/internal/bootstrap"
	"justicia-backend/internal/shared/config"
	"justicia-backend/internal/shared/storage/db"
	"justicia-backend/internal/shared/telemetry"
)

const jobTimeout = 5 * time.Minute

type reminderJob interface {
	Run(ctx context.Context) (int, error)
}

func main() {
	once := flag.Bool("once", false, "send due reminders once and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if _, err := telemetry.Init(cfg.Env, cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbOpts := db.OptionsFromEnv(db.DefaultWorkerOptions())
	app, err := bootstrap.Build(ctx, cfg, bootstrap.Options{DBOptions: &dbOpts, SkipRouter: true})
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}
	defer app.Close()

	if *once {
		if !runReminders(ctx, app.Reminders) {
			os.Exit(1)
		}
		return
	}

	scheduler, err := newScheduler(ctx, cfg.ReminderSchedule, time.UTC, app.Reminders)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	scheduler.Start()
	telemetry.Info("worker.started", map[string]any{"schedule": cfg.ReminderSchedule})

	<-ctx.Done()
	telemetry.Info("worker.stopping", nil)
	<-scheduler.Stop().Done()
}

// newScheduler registers the reminder job on spec. Overlapping runs are skipped.
func newScheduler(ctx context.Context, spec string, loc *time.Location, job reminderJob) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(spec, func() { runReminders(ctx, job) }); err != nil {
		return nil, err
	}
	return c, nil
}

func runReminders(ctx context.Context, job reminderJob) bool {
	runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	start := time.Now()
	sent, err := job.Run(runCtx)
	fields := map[string]any{"sent": sent, "duration_ms": time.Since(start).Milliseconds()}
	if err != nil {
		fields["error"] = err
		telemetry.Error("worker.reminders_failed", fields)
		return false
	}
	telemetry.Info("worker.reminders_done", fields)
	return true
}

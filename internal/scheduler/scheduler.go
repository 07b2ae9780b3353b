package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/quiethours/momentswap/internal/metrics"
	"github.com/quiethours/momentswap/internal/repo"
	"github.com/robfig/cron/v3"
)

// cleanupTimeout bounds a single purge run so a stuck store call cannot pin
// a cron worker forever.
const cleanupTimeout = 30 * time.Second

// Run starts a background cron that purges expired session rows every hour.
// The returned cron can be stopped on shutdown.
func Run(sessions *repo.SessionRepo) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()

		n, err := sessions.DeleteExpired(ctx)
		if err != nil {
			slog.Error("session cleanup failed", "error", err)
			return
		}
		metrics.AddSessionsPurged(n)
		if n > 0 {
			slog.Info("session cleanup", "purged", n)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

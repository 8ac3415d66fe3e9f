package jobs

import (
	"context"
	"time"

	"bizindustry/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

type HandoffRepository interface {
	DeleteExpired(before int64) error
}

// HandoffCleaner drops handoff entries of sessions nobody has touched for ttl.
type HandoffCleaner struct {
	repo     HandoffRepository
	ttl      time.Duration
	interval time.Duration
	now      func() int64
}

func NewHandoffCleaner(repo HandoffRepository, ttl, interval time.Duration) *HandoffCleaner {
	return &HandoffCleaner{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		now:      utils.NowUTC,
	}
}

func (c *HandoffCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Infof("Handoff cleaner cron started (ttl %s, every %s)", c.ttl, c.interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping handoff cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *HandoffCleaner) cleanup() {
	cutoff := c.now() - c.ttl.Milliseconds()

	err := c.repo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired handoff entries: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept handoff entries older than %d", cutoff)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// DefaultRefreshInterval is used when the configured interval is zero or
// negative.
const DefaultRefreshInterval = time.Minute

type snapshotRefreshJob struct {
	refresher RecordRefresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSnapshotRefreshJob creates a job that calls refresher.RefreshSnapshots
// on a ticker. The job is idle until Start is called. An interval of zero or
// less falls back to [DefaultRefreshInterval].
func NewSnapshotRefreshJob(refresher RecordRefresher, interval time.Duration, logger *logger.Logger) Job {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &snapshotRefreshJob{refresher: refresher, interval: interval, logger: logger}
}

// Start implements Job. It stops any previously running cycle, refreshes the
// cache once immediately so the first read after login is warm, then keeps
// refreshing every interval. The goroutine exits when ctx is cancelled or
// Stop is called. Refresh failures are logged and the ticker keeps going;
// the cache simply stays stale until the next successful pull.
func (j *snapshotRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.refresh(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements Job. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *snapshotRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *snapshotRefreshJob) refresh(ctx context.Context) {
	if err := j.refresher.RefreshSnapshots(ctx); err != nil {
		j.logger.Warn().
			Err(err).
			Str("func", "snapshotRefreshJob.refresh").
			Msg("snapshot refresh failed, keeping stale cache")
	}
}

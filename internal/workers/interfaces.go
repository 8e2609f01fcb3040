// Package workers provides the client's background jobs. Its single job
// today keeps the local snapshot cache in step with the server by
// re-pulling records on a ticker.
package workers

import "context"

// Job is a background worker with an explicit lifecycle. Start launches the
// job's goroutine and returns immediately; Stop blocks until the goroutine
// has fully exited.
type Job interface {
	Start(ctx context.Context)
	Stop()
}

// RecordRefresher pulls fresh record snapshots into the local cache. It is
// satisfied by the client record service.
type RecordRefresher interface {
	RefreshSnapshots(ctx context.Context) error
}

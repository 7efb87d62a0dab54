package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	synchronizationJob *SynchronizationJob
}

func NewJobManager(synchronizationJob *SynchronizationJob) *JobManager {
	return &JobManager{synchronizationJob: synchronizationJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.synchronizationJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to start synchronization job: %w", err)
	}
	return nil
}

// RunStartupSync runs one synchronization cycle right away instead of waiting for the
// first tick.
func (jm *JobManager) RunStartupSync(ctx context.Context) {
	jm.synchronizationJob.RunOnce(ctx)
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.synchronizationJob.Stop()
}

package jobs

import (
	"autoloc-backend/internal/config"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/metrics"
	"autoloc-backend/internal/repository/firestore"
	"autoloc-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *firestore.Store
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email       service.EmailService
	Reservation service.ReservationService
	Report      service.ReportService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *firestore.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and records the
// outcome counter.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.JobRuns.WithLabelValues(jobName, "panic").Inc()
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		metrics.JobRuns.WithLabelValues(jobName, "error").Inc()
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	metrics.JobRuns.WithLabelValues(jobName, "success").Inc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueReservations()
	jr.SendReturnReminders()
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.SendOwnerStatements()
}

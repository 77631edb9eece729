package jobs

import (
	"context"
	"log/slog"
	"time"

	"yardgate/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// scheduleDateLayout is the appointment date format accepted on the wire.
const scheduleDateLayout = "2006-01-02"

// OverdueScheduleJob watches the pending appointment book. Appointments whose
// date has passed without a confirmation are flagged in the log so the gate
// staff can follow up with the shipping line. The job never mutates state.
type OverdueScheduleJob struct {
	uowFactory commands.ScheduleUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
	now        func() time.Time
}

// NewOverdueScheduleJob creates a job that scans pending schedules once a minute.
func NewOverdueScheduleJob(uowFactory commands.ScheduleUoWFactory, logger *slog.Logger) *OverdueScheduleJob {
	return &OverdueScheduleJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "overdue_schedule_job"),
		now:        time.Now,
	}
}

// Start begins the overdue scan, running at the top of every minute.
func (j *OverdueScheduleJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue schedule scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue schedule job started (running every minute)")
	return nil
}

// Stop stops the overdue scan.
func (j *OverdueScheduleJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue schedule job stopped")
}

func (j *OverdueScheduleJob) scan(ctx context.Context) error {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	pending, err := uow.ScheduleRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	today := j.now().Format(scheduleDateLayout)
	for _, appointment := range pending {
		if _, parseErr := time.Parse(scheduleDateLayout, appointment.Date()); parseErr != nil {
			// Free-form dates cannot be compared, skip them.
			continue
		}

		if appointment.Date() < today {
			j.logger.WarnContext(ctx, "Appointment is overdue without confirmation",
				"scheduleId", appointment.ID().String(),
				"containerNumber", appointment.ContainerNumber(),
				"date", appointment.Date(),
				"timeOfDay", appointment.TimeOfDay(),
			)
		}
	}

	return uow.Commit(ctx)
}

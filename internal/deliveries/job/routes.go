package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/config"
	v1billingcycle "github.com/svnhec/qoda-sub003/internal/deliveries/job/v1/billingcycle"
	"github.com/svnhec/qoda-sub003/internal/services"
)

// Flags carries the parsed worker command-line flags into a job run.
type Flags struct {
	JobName string
	Version string
	Date    string
}

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	jobRoutes := JobRoutes{
		"v1": v1billingcycle.Routes(srv.Billing, srv.Journal),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flags Flags) {
	fn, ok := j.Routes[flags.Version][flags.JobName]
	if !ok {
		logJob(ctx, flags, errors.New("invalid version or job name"))
		return
	}

	var (
		runningDate = common.Now()
		err         error
	)
	ctx = log.WithCorrelationID(ctx, uuid.NewString())

	defer func() {
		logJob(ctx, flags, err)
	}()

	if flags.Date != "" {
		runningDate, err = common.ParseDate(flags.Date)
		if err != nil {
			return
		}
	}

	err = fn(ctx, runningDate)
}

func logJob(ctx context.Context, flags Flags, err error) {
	fields := []log.Field{
		log.String("jobName", flags.JobName),
		log.String("version", flags.Version),
		log.String("date", flags.Date),
	}

	if err != nil {
		log.Error(ctx, "[JOB.FINISHED]", append(fields, log.Err(err))...)
		return
	}
	log.Info(ctx, "[JOB.FINISHED]", fields...)
}

package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation, fallback func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

// NewExponentialBackOff builds a Retryer with exponential backoff. Zero or
// negative settings fall back to the backoff package defaults.
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry keeps running operation until it succeeds or retries are exhausted.
// When retries are exhausted the fallback runs once; its error, if any, is
// what Retry returns. A nil fallback returns the exhausting error as is.
func (r *exponentialBackoff) Retry(ctx context.Context, operation, fallback func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retries exhausted with err: %v", err)
		if fallback == nil {
			return err
		}
		if err := fallback(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// StopRetryWithErr marks an error as permanent so the operation is not
// retried again. Call it from inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

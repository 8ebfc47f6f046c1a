package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/billing"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
	"github.com/svnhec/qoda-sub003/internal/repositories"
)

const (
	billingOutcomeBilled = "billed"
	billingOutcomeFailed = "failed"
)

type BillingService interface {
	// RunBillingCycle pushes every client's unbilled settlements before the
	// cutoff to the billing system and marks them billed. Clients fail
	// independently; a failed client's rows stay eligible for the next run.
	RunBillingCycle(ctx context.Context, cutoff time.Time) (models.BillingRunSummary, error)
}

type billingService service

var _ BillingService = (*billingService)(nil)

func (b billingService) RunBillingCycle(ctx context.Context, cutoff time.Time) (summary models.BillingRunSummary, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if timeout := b.srv.conf.Billing.RunTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	startTime := time.Now()
	defer func() {
		b.srv.metrics.GetBillingPrometheus().GenerateMetrics(startTime, err)
	}()

	summary.Cutoff = cutoff

	groups, err := b.srv.sqlRepo.GetSettlementRepository().ListUnbilledGroupedByClient(ctx, cutoff)
	if err != nil {
		return summary, checkDatabaseError(err)
	}

	if len(groups) == 0 {
		log.Info(ctx, "[BILLING.RUN.EMPTY]", log.Time("cutoff", cutoff))
		return summary, nil
	}

	limit := b.srv.conf.Billing.MaxConcurrentClients
	if limit <= 0 {
		limit = 1
	}

	var (
		mu     sync.Mutex
		runErr *multierror.Error
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for _, group := range groups {
		group := group
		eg.Go(func() error {
			clientErr := b.processClient(egCtx, cutoff, group)

			mu.Lock()
			defer mu.Unlock()
			if clientErr != nil {
				summary.ClientsFailed++
				runErr = multierror.Append(runErr, fmt.Errorf("client %s: %w", group.ClientID, clientErr))
				b.srv.metrics.GetBillingPrometheus().RecordClient(billingOutcomeFailed, 0)
				return nil
			}

			total, sumErr := group.TotalRebillCents()
			if sumErr != nil {
				total = group.SpendCents
			}
			summary.ClientsProcessed++
			summary.SettlementsBilled += len(group.SettlementIDs)
			summary.SpendCents += group.SpendCents
			summary.MarkupCents += group.MarkupCents
			summary.TotalRebillCents += total
			b.srv.metrics.GetBillingPrometheus().RecordClient(billingOutcomeBilled, total.Cents())
			return nil
		})
	}

	// per-client errors are aggregated, not propagated through the group
	_ = eg.Wait()

	b.auditRun(ctx, summary, runErr.ErrorOrNil())

	return summary, runErr.ErrorOrNil()
}

func (b billingService) processClient(ctx context.Context, cutoff time.Time, group models.UnbilledClientGroup) error {
	total, err := group.TotalRebillCents()
	if err != nil {
		return err
	}
	if err = total.CheckSafeRange(); err != nil {
		return err
	}

	billingDay := common.BillingDay(cutoff)
	record := billing.UsageRecord{
		IdempotencyKey: fmt.Sprintf("%s_%s", group.ClientID, billingDay),
		ClientID:       group.ClientID,
		BillingDate:    billingDay,
		TotalCents:     total.Cents(),
		Currency:       "usd",
		LineItems: []billing.UsageLine{
			{Description: "agent card spend", AmountCents: group.SpendCents.Cents()},
			{Description: "platform markup", AmountCents: group.MarkupCents.Cents()},
		},
	}

	var result billing.UsageRecordResult
	err = b.srv.retryer.Retry(ctx, func() error {
		var pushErr error
		result, pushErr = b.srv.billingClient.PushUsageRecord(ctx, record)
		return pushErr
	}, nil)
	if err != nil {
		b.auditClientFailure(ctx, group, err)
		return err
	}

	if result.Duplicate {
		log.Info(ctx, "[BILLING.CLIENT.DUPLICATE]",
			log.String("clientId", group.ClientID),
			log.String("idempotencyKey", record.IdempotencyKey))
	}

	err = b.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		return r.GetSettlementRepository().MarkBilled(ctx, group.SettlementIDs, common.Now())
	})
	if err != nil {
		b.auditClientFailure(ctx, group, err)
		return checkDatabaseError(err)
	}

	return nil
}

func (b billingService) auditClientFailure(ctx context.Context, group models.UnbilledClientGroup, cause error) {
	(*audit)(&b).RecordError(ctx, models.AuditActionBillingClientFail, models.AuditResourceBillingRun, group.ClientID, cause,
		map[string]any{
			"settlementIds": group.SettlementIDs,
			"spendCents":    group.SpendCents.Cents(),
			"markupCents":   group.MarkupCents.Cents(),
		})
}

func (b billingService) auditRun(ctx context.Context, summary models.BillingRunSummary, runErr error) {
	entry := &models.AuditLogEntry{
		Action:       models.AuditActionBillingRun,
		ResourceType: models.AuditResourceBillingRun,
		ResourceID:   common.BillingDay(summary.Cutoff),
		StateAfter: map[string]any{
			"clientsProcessed":  summary.ClientsProcessed,
			"clientsFailed":     summary.ClientsFailed,
			"settlementsBilled": summary.SettlementsBilled,
			"spendCents":        summary.SpendCents.Cents(),
			"markupCents":       summary.MarkupCents.Cents(),
			"totalRebillCents":  summary.TotalRebillCents.Cents(),
		},
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}

	if err := b.srv.sqlRepo.GetAuditRepository().Insert(ctx, entry); err != nil {
		log.Error(ctx, "[BILLING.AUDIT_FAILED]", log.Err(err))
	}
}

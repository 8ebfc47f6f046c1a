package billingcycle

import (
	"context"
	"fmt"
	"time"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type billingCycleHandler struct {
	billingSrv services.BillingService
	journalSrv services.JournalService
}

func Routes(bs services.BillingService, js services.JournalService) map[string]func(ctx context.Context, date time.Time) error {
	handler := billingCycleHandler{
		billingSrv: bs,
		journalSrv: js,
	}
	return map[string]func(ctx context.Context, date time.Time) error{
		"RunBillingCycle":   handler.RunBillingCycle,
		"CheckTrialBalance": handler.CheckTrialBalance,
		// add more job here
	}
}

// RunBillingCycle aggregates every client's unbilled settlements up to the
// given date and pushes them to the billing system.
func (bh billingCycleHandler) RunBillingCycle(ctx context.Context, date time.Time) error {
	summary, err := bh.billingSrv.RunBillingCycle(ctx, date)

	log.Info(ctx, "RunBillingCycle",
		log.Time("cutoff", summary.Cutoff),
		log.Int("clientsProcessed", summary.ClientsProcessed),
		log.Int("clientsFailed", summary.ClientsFailed),
		log.Int("settlementsBilled", summary.SettlementsBilled),
		log.Int64("totalRebillCents", summary.TotalRebillCents.Cents()))

	return err
}

// CheckTrialBalance verifies the books still sum to zero. Any drift means a
// write path bypassed the journal and needs investigation.
func (bh billingCycleHandler) CheckTrialBalance(ctx context.Context, _ time.Time) error {
	rows, err := bh.journalSrv.TrialBalance(ctx)
	if err != nil {
		return err
	}

	var net int64
	for _, row := range rows {
		net += row.NetCents.Cents()
	}
	if net != 0 {
		return fmt.Errorf("trial balance out of balance by %d cents across %d accounts", net, len(rows))
	}

	log.Info(ctx, "CheckTrialBalance", log.Int("accounts", len(rows)))

	return nil
}

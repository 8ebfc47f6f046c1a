package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/common/publisher"
	"github.com/svnhec/qoda-sub003/internal/common/signature"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
	"github.com/svnhec/qoda-sub003/internal/repositories"
)

const (
	settlementOutcomeProcessed = "processed"
	settlementOutcomeResumed   = "resumed"
	settlementOutcomeDuplicate = "duplicate"
	settlementOutcomeRejected  = "rejected"
)

type SettlementService interface {
	// ProcessSettlement handles one webhook delivery end to end: verify,
	// resolve, claim, post journal legs, update agent spend, notify.
	// Redeliveries are absorbed by the idempotent claim; a partially
	// processed settlement resumes at the first missing journal leg.
	ProcessSettlement(ctx context.Context, raw []byte, signatureHeader string) (models.ProcessSettlementResult, error)
	GetByID(ctx context.Context, id string) (models.TransactionSettlement, error)
}

type settlement service

var _ SettlementService = (*settlement)(nil)

func (s settlement) ProcessSettlement(ctx context.Context, raw []byte, signatureHeader string) (res models.ProcessSettlementResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	// the transport redelivers on failure, so a stuck delivery is bounded
	// here rather than holding the webhook worker open
	if timeout := s.srv.conf.Settlement.HandlerTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	verifier := signature.NewVerifier(s.srv.conf.Webhook.SigningSecret, s.srv.conf.Webhook.SignatureTolerance)
	if err = verifier.Verify(signatureHeader, raw, common.Now()); err != nil {
		s.srv.metrics.GetSettlementPrometheus().RecordOutcome(settlementOutcomeRejected)
		return res, fmt.Errorf("%w: %v", common.ErrAuthentication, err)
	}

	var event models.SettlementEvent
	if err = json.Unmarshal(raw, &event); err != nil {
		return res, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if err = common.ValidateStruct(event); err != nil {
		return res, err
	}

	// purchases arrive negative
	amount := models.NewMoney(event.Amount).Abs()
	if err = amount.CheckSafeRange(); err != nil {
		return res, err
	}

	resolution, err := s.resolveCard(ctx, event.Card)
	if err != nil {
		if common.PermanentError(err) {
			s.auditRejected(ctx, event, err)
			s.srv.metrics.GetSettlementPrometheus().RecordOutcome(settlementOutcomeRejected)
		}
		return res, err
	}

	org, err := s.srv.sqlRepo.GetOrganizationRepository().GetByID(ctx, resolution.OrganizationID)
	if err != nil {
		return res, checkDatabaseError(err, models.ErrKeyOrganizationNotFound)
	}

	var markupFee models.Money
	if resolution.HasClient() {
		markupFee, err = amount.ApplyBasisPoints(org.EffectiveMarkupBasisPoints(s.srv.conf.Settlement.DefaultMarkupBasisPoints))
		if err != nil {
			return res, err
		}
	}

	row := &models.TransactionSettlement{
		ID:                  s.srv.idgenerator.Generate(models.SettlementIDPrefix),
		StripeTransactionID: event.ID,
		CardID:              resolution.CardID,
		AgentID:             resolution.AgentID,
		OrganizationID:      resolution.OrganizationID,
		ClientID:            resolution.ClientID,
		AmountCents:         amount,
		MarkupFeeCents:      markupFee,
		MerchantName:        event.MerchantData.Name,
		MerchantCategory:    event.MerchantData.Category,
	}

	created, existing, err := s.srv.sqlRepo.GetSettlementRepository().Claim(ctx, row)
	if err != nil {
		return res, checkDatabaseError(err)
	}

	outcome := settlementOutcomeProcessed
	if !created {
		if existing.FullyProcessed() {
			log.Info(ctx, "[SETTLEMENT.DUPLICATE]",
				log.String("stripeTransactionId", event.ID),
				log.String("settlementId", existing.ID))
			s.srv.metrics.GetSettlementPrometheus().RecordOutcome(settlementOutcomeDuplicate)
			return settlementResult(existing, true), nil
		}

		// earlier delivery claimed the row but died before finishing;
		// carry on from whatever it left behind
		row = &existing
		outcome = settlementOutcomeResumed
		log.Warn(ctx, "[SETTLEMENT.RESUME]",
			log.String("stripeTransactionId", event.ID),
			log.String("settlementId", row.ID))
	}

	if row.SpendJournalEntryID == "" {
		if err = s.postSpendLeg(ctx, row); err != nil {
			return res, fmt.Errorf("%w: spend leg: %v", common.ErrPartialProcessing, err)
		}
	}

	if row.ClientID != "" && row.MarkupFeeCents.IsPositive() && row.MarkupJournalEntryID == "" {
		if err = s.postMarkupLeg(ctx, row); err != nil {
			return res, fmt.Errorf("%w: markup leg: %v", common.ErrPartialProcessing, err)
		}
	}

	s.incrementAgentSpend(ctx, row)
	s.finalize(ctx, row, outcome)

	return settlementResult(*row, false), nil
}

func (s settlement) GetByID(ctx context.Context, id string) (res models.TransactionSettlement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = s.srv.sqlRepo.GetSettlementRepository().GetByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeySettlementNotFound)
		return
	}

	return
}

// resolveCard maps card -> agent -> organization (+ optional client),
// serving repeats from the process-local cache, then redis.
func (s settlement) resolveCard(ctx context.Context, cardID string) (res models.CardResolution, err error) {
	cacheKey := fmt.Sprintf("qoda:card-resolution:%s", cardID)

	if local, localErr := s.srv.cardCache.Get(ctx, cacheKey); localErr == nil {
		return local, nil
	}

	cached, cacheErr := s.srv.cacheRepo.Get(ctx, cacheKey)
	if cacheErr == nil {
		if err = json.Unmarshal([]byte(cached), &res); err == nil {
			_ = s.srv.cardCache.Set(ctx, cacheKey, res, s.srv.conf.Ledger.BalanceTTL)
			return res, nil
		}
		log.Warn(ctx, "[SETTLEMENT.CACHE.CORRUPT]", log.String("key", cacheKey), log.Err(err))
	}

	res, err = s.srv.sqlRepo.GetAgentRepository().ResolveCard(ctx, cardID)
	if err != nil {
		if errors.Is(err, common.ErrUnknownCard) {
			return res, err
		}
		return res, checkDatabaseError(err, models.ErrKeyCardNotFound)
	}

	if encoded, marshalErr := json.Marshal(res); marshalErr == nil {
		if setErr := s.srv.cacheRepo.Set(ctx, cacheKey, encoded, s.srv.conf.Ledger.BalanceTTL); setErr != nil {
			log.Warn(ctx, "[SETTLEMENT.CACHE.SET_FAILED]", log.String("key", cacheKey), log.Err(setErr))
		}
	}
	_ = s.srv.cardCache.Set(ctx, cacheKey, res, s.srv.conf.Ledger.BalanceTTL)

	return res, nil
}

// postSpendLeg books the raw card spend: debit API Cost of Services,
// credit Platform Cash. Group creation and the ref update share one tx.
func (s settlement) postSpendLeg(ctx context.Context, row *models.TransactionSettlement) error {
	groupID := s.srv.idgenerator.Generate(models.TransactionGroupIDPrefix)
	idempotencyKey := fmt.Sprintf("settlement-spend:%s", row.StripeTransactionID)

	err := s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		entries := buildJournalEntries(groupID, models.RecordTransactionRequest{
			OrganizationID: row.OrganizationID,
			Description:    fmt.Sprintf("card spend %s at %s", row.StripeTransactionID, row.MerchantName),
			Metadata:       map[string]any{"settlementId": row.ID, "cardId": row.CardID},
			IdempotencyKey: idempotencyKey,
			Lines: []models.EntryLine{
				{AccountCode: models.AccountAPICostOfServices, Debit: row.AmountCents},
				{AccountCode: models.AccountPlatformCash, Credit: row.AmountCents},
			},
		})
		if txErr := r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		return r.GetSettlementRepository().SetSpendJournalRef(ctx, row.ID, groupID)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEvent) {
			return s.adoptExistingLeg(ctx, idempotencyKey, &row.SpendJournalEntryID, func(ctx context.Context, existingGroupID string) error {
				return s.srv.sqlRepo.GetSettlementRepository().SetSpendJournalRef(ctx, row.ID, existingGroupID)
			})
		}
		return err
	}

	row.SpendJournalEntryID = groupID
	return nil
}

// postMarkupLeg books the client rebill margin: debit Accounts Receivable -
// Clients, credit Markup Revenue.
func (s settlement) postMarkupLeg(ctx context.Context, row *models.TransactionSettlement) error {
	groupID := s.srv.idgenerator.Generate(models.TransactionGroupIDPrefix)
	idempotencyKey := fmt.Sprintf("settlement-markup:%s", row.StripeTransactionID)

	err := s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		entries := buildJournalEntries(groupID, models.RecordTransactionRequest{
			OrganizationID: row.OrganizationID,
			Description:    fmt.Sprintf("markup fee %s", row.StripeTransactionID),
			Metadata:       map[string]any{"settlementId": row.ID, "clientId": row.ClientID},
			IdempotencyKey: idempotencyKey,
			Lines: []models.EntryLine{
				{AccountCode: models.AccountReceivableClients, Debit: row.MarkupFeeCents},
				{AccountCode: models.AccountMarkupRevenue, Credit: row.MarkupFeeCents},
			},
		})
		if txErr := r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		return r.GetSettlementRepository().SetMarkupJournalRef(ctx, row.ID, groupID)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEvent) {
			return s.adoptExistingLeg(ctx, idempotencyKey, &row.MarkupJournalEntryID, func(ctx context.Context, existingGroupID string) error {
				return s.srv.sqlRepo.GetSettlementRepository().SetMarkupJournalRef(ctx, row.ID, existingGroupID)
			})
		}
		return err
	}

	row.MarkupJournalEntryID = groupID
	return nil
}

// adoptExistingLeg re-attaches a journal group that an earlier delivery
// committed before dying without writing the ref back to the settlement row.
// The unique index on the leg's idempotency key is what routed us here.
func (s settlement) adoptExistingLeg(ctx context.Context, idempotencyKey string, ref *string, setRef func(ctx context.Context, groupID string) error) error {
	existing, err := s.srv.sqlRepo.GetJournalRepository().GetGroupByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return fmt.Errorf("%w: journal group for key %q", common.ErrDataNotFound, idempotencyKey)
	}

	groupID := existing[0].TransactionGroupID
	if err = setRef(ctx, groupID); err != nil {
		return err
	}

	log.Warn(ctx, "[SETTLEMENT.LEG_ADOPTED]",
		log.String("idempotencyKey", idempotencyKey),
		log.String("transactionGroupId", groupID))

	*ref = groupID
	return nil
}

// incrementAgentSpend bumps the agent's running spend. A failure here is
// recorded as drift and never fails the settlement; the journal remains the
// source of truth.
func (s settlement) incrementAgentSpend(ctx context.Context, row *models.TransactionSettlement) {
	newSpend, err := s.srv.sqlRepo.GetAgentRepository().IncrementSpend(ctx, row.AgentID, row.AmountCents)
	if err != nil {
		log.Error(ctx, "[SETTLEMENT.AGENT_SPEND_DRIFT]",
			log.String("agentId", row.AgentID),
			log.String("settlementId", row.ID),
			log.Err(err))

		if auditErr := s.srv.sqlRepo.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
			Action:         models.AuditActionAgentSpendDrift,
			ResourceType:   models.AuditResourceAgent,
			ResourceID:     row.AgentID,
			OrganizationID: row.OrganizationID,
			Error:          err.Error(),
			Metadata:       map[string]any{"settlementId": row.ID, "amountCents": row.AmountCents.Cents()},
		}); auditErr != nil {
			log.Error(ctx, "[SETTLEMENT.AUDIT_FAILED]", log.Err(auditErr))
		}
		return
	}

	log.Debug(ctx, "[SETTLEMENT.AGENT_SPEND]",
		log.String("agentId", row.AgentID),
		log.Int64("currentSpendCents", newSpend.Cents()))
}

// finalize records the audit trail, the metrics and the kafka notification.
// None of these can fail the settlement; the journal legs are already
// committed.
func (s settlement) finalize(ctx context.Context, row *models.TransactionSettlement, outcome string) {
	if err := s.srv.sqlRepo.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
		Action:         models.AuditActionTransactionSettled,
		ResourceType:   models.AuditResourceSettlement,
		ResourceID:     row.ID,
		OrganizationID: row.OrganizationID,
		StateAfter: map[string]any{
			"stripeTransactionId": row.StripeTransactionID,
			"amountCents":         row.AmountCents.Cents(),
			"markupFeeCents":      row.MarkupFeeCents.Cents(),
			"spendJournalRef":     row.SpendJournalEntryID,
			"markupJournalRef":    row.MarkupJournalEntryID,
			"outcome":             outcome,
		},
	}); err != nil {
		log.Error(ctx, "[SETTLEMENT.AUDIT_FAILED]", log.String("settlementId", row.ID), log.Err(err))
	}

	s.srv.metrics.GetSettlementPrometheus().RecordOutcome(outcome)
	s.srv.metrics.GetSettlementPrometheus().RecordSettlement(row.OrganizationID, row.AmountCents, row.MarkupFeeCents)

	notification := models.SettlementNotification{
		SettlementID:        row.ID,
		StripeTransactionID: row.StripeTransactionID,
		OrganizationID:      row.OrganizationID,
		AgentID:             row.AgentID,
		AmountCents:         row.AmountCents,
		MarkupFeeCents:      row.MarkupFeeCents,
		MerchantName:        row.MerchantName,
		SettledAt:           common.Now(),
	}
	if err := s.srv.settlementPub.Publish(ctx, notification, publisher.WithKey(row.OrganizationID)); err != nil {
		log.Error(ctx, "[SETTLEMENT.PUBLISH_FAILED]", log.String("settlementId", row.ID), log.Err(err))
	}

	if toppedUp, err := (*funding)(&s).MaybeAutoTopUp(ctx, row.OrganizationID); err != nil {
		log.Error(ctx, "[SETTLEMENT.AUTO_TOPUP_FAILED]",
			log.String("organizationId", row.OrganizationID), log.Err(err))
	} else if toppedUp {
		log.Info(ctx, "[SETTLEMENT.AUTO_TOPUP]", log.String("organizationId", row.OrganizationID))
	}
}

// auditRejected records permanently rejected events so operators can trace
// unmatched cards without a settlement row existing.
func (s settlement) auditRejected(ctx context.Context, event models.SettlementEvent, cause error) {
	if err := s.srv.sqlRepo.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
		Action:       models.AuditActionSettlementRejected,
		ResourceType: models.AuditResourceSettlement,
		ResourceID:   event.ID,
		Error:        cause.Error(),
		Metadata:     map[string]any{"cardId": event.Card, "amount": event.Amount},
	}); err != nil {
		log.Error(ctx, "[SETTLEMENT.AUDIT_FAILED]", log.String("stripeTransactionId", event.ID), log.Err(err))
	}
}

func settlementResult(row models.TransactionSettlement, alreadyProcessed bool) models.ProcessSettlementResult {
	total, err := row.TotalRebillCents()
	if err != nil {
		total = row.AmountCents
	}

	return models.ProcessSettlementResult{
		SettlementID:         row.ID,
		StripeTransactionID:  row.StripeTransactionID,
		AmountCents:          row.AmountCents,
		MarkupFeeCents:       row.MarkupFeeCents,
		TotalRebillCents:     total,
		SpendJournalEntryID:  row.SpendJournalEntryID,
		MarkupJournalEntryID: row.MarkupJournalEntryID,
		AlreadyProcessed:     alreadyProcessed,
	}
}

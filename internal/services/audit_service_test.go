package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestRecord_SwallowsRepositoryFailure(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAuditRepository.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("audit table unavailable"))

	testHelper.auditService.Record(ctx, models.AuditLogEntry{
		Action:       models.AuditActionJournalRecorded,
		ResourceType: models.AuditResourceJournalGroup,
		ResourceID:   "JRN-1",
	})
}

func TestRecordError(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAuditRepository.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, entry *models.AuditLogEntry) error {
			assert.Equal(t, models.AuditActionBillingClientFail, entry.Action)
			assert.Equal(t, models.AuditResourceBillingRun, entry.ResourceType)
			assert.Equal(t, "client_9", entry.ResourceID)
			assert.Equal(t, "push rejected", entry.Error)
			assert.Equal(t, int64(100), entry.Metadata["spendCents"])
			return nil
		})

	testHelper.auditService.RecordError(ctx, models.AuditActionBillingClientFail,
		models.AuditResourceBillingRun, "client_9", errors.New("push rejected"),
		map[string]any{"spendCents": int64(100)})
}

func TestListByResource(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	entries := []models.AuditLogEntry{
		{ID: 1, Action: models.AuditActionFundsAdded, ResourceType: models.AuditResourceOrganization, ResourceID: "org_1"},
		{ID: 2, Action: models.AuditActionAutoTopup, ResourceType: models.AuditResourceOrganization, ResourceID: "org_1"},
	}

	testHelper.mockAuditRepository.EXPECT().
		ListByResource(gomock.Any(), models.AuditResourceOrganization, "org_1", uint64(50), uint64(0)).
		Return(entries, nil)

	res, err := testHelper.auditService.ListByResource(ctx, models.AuditResourceOrganization, "org_1", 50, 0)
	assert.NoError(t, err)
	assert.Equal(t, entries, res)
}

func TestListByResource_DatabaseError(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAuditRepository.EXPECT().
		ListByResource(gomock.Any(), models.AuditResourceAgent, "agent_1", uint64(10), uint64(0)).
		Return(nil, errors.New("connection reset"))

	_, err := testHelper.auditService.ListByResource(ctx, models.AuditResourceAgent, "agent_1", 10, 0)
	assert.Error(t, err)

	var detail models.ErrorDetail
	assert.ErrorAs(t, err, &detail)
	assert.Equal(t, models.ErrKeyDatabaseError, detail.Code)
}

package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svnhec/qoda-sub003/internal/common/billing"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/config"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) billing.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return billing.New(config.HTTPConfiguration{
		BaseURL:   server.URL,
		SecretKey: "sk_test",
		Timeout:   5 * time.Second,
	}, nil)
}

func testRecord() billing.UsageRecord {
	return billing.UsageRecord{
		IdempotencyKey: "client_1_2026-08-25",
		ClientID:       "client_1",
		BillingDate:    "2026-08-25",
		TotalCents:     11500,
		Currency:       "usd",
	}
}

func TestPushUsageRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/usage-records", r.URL.Path)
		assert.Equal(t, "sk_test", r.Header.Get("X-Secret-Key"))
		assert.Equal(t, "client_1_2026-08-25", r.Header.Get("Idempotency-Key"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"invoice_ref":"inv_1","status":"draft"}`))
	})

	res, err := client.PushUsageRecord(context.Background(), testRecord())

	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "inv_1", res.InvoiceRef)
	assert.Equal(t, "draft", res.Status)
}

func TestPushUsageRecord_ConflictIsDuplicate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"invoice_ref":"inv_prev","status":"draft"}`))
	})

	res, err := client.PushUsageRecord(context.Background(), testRecord())

	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, "inv_prev", res.InvoiceRef)
}

func TestPushUsageRecord_ConflictBodyNotOurs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("conflict: idempotency key already used"))
	})

	res, err := client.PushUsageRecord(context.Background(), testRecord())

	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Empty(t, res.InvoiceRef)
}

func TestPushUsageRecord_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.PushUsageRecord(context.Background(), testRecord())

	require.Error(t, err)
}

// Package billing talks to the external billing system that turns daily
// usage records into client invoices. Pushes are idempotent on the
// Idempotency-Key header so a retried billing run never double-bills.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/common/metrics"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

var logMessage = "[BILLING-CLIENT]"

type Client interface {
	PushUsageRecord(ctx context.Context, record UsageRecord) (UsageRecordResult, error)
}

type client struct {
	baseURL    string
	secretKey  string
	httpClient *resty.Client
	metrics    metrics.Metrics
}

func New(configuration config.HTTPConfiguration, mtc metrics.Metrics) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return client{
		baseURL:    configuration.BaseURL,
		secretKey:  configuration.SecretKey,
		httpClient: restyClient,
		metrics:    mtc,
	}
}

func (c client) PushUsageRecord(ctx context.Context, record UsageRecord) (res UsageRecordResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := time.Now()
	url := fmt.Sprintf("%s/api/v1/usage-records", c.baseURL)

	logFields := []log.Field{
		log.String("url", url),
		log.String("clientID", record.ClientID),
		log.String("idempotencyKey", record.IdempotencyKey),
		log.Int64("totalCents", record.TotalCents),
	}

	log.Info(ctx, logMessage, append(logFields, log.String("message", "push usage record to billing system"))...)

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Correlation-Id", log.CorrelationID(ctx)).
		SetHeader("X-Secret-Key", c.secretKey).
		SetHeader("Idempotency-Key", record.IdempotencyKey).
		SetBody(record).
		Post(url)
	if err != nil {
		return res, fmt.Errorf("failed send request: %w", err)
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
		if c.metrics != nil {
			groupURL := fmt.Sprintf("%s/api/v1/usage-records", c.baseURL)
			c.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), SERVICE_NAME, httpRes.Request.Method, groupURL, httpRes.StatusCode())
		}
	}()

	logFields = append(logFields,
		log.String("httpStatusCode", httpRes.Status()),
		log.Any("httpResponse", httpRes.Body()))

	var body pushUsageResponse

	switch httpRes.StatusCode() {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict:
		// already recorded under this idempotency key; the conflict body is
		// whatever the billing system emits and may not be our shape
		res.Duplicate = true
		if parseErr := json.Unmarshal(httpRes.Body(), &body); parseErr == nil {
			res.InvoiceRef = body.InvoiceRef
			res.Status = body.Status
		}
		return res, nil
	default:
		return res, fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode())
	}

	if err = json.Unmarshal(httpRes.Body(), &body); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	res.InvoiceRef = body.InvoiceRef
	res.Status = body.Status

	return res, nil
}

package metrics

import (
	"database/sql"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	RegisterEchoMiddleware(e *echo.Echo, path, serviceName string) echo.MiddlewareFunc
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetSettlementPrometheus() *SettlementPrometheusMetrics
	GetBillingPrometheus() *BillingPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	publisherMetrics  *PublisherPrometheusMetrics
	settlementMetrics *SettlementPrometheusMetrics
	billingMetrics    *BillingPrometheusMetrics
}

func New() Metrics {
	reg := prometheus.DefaultRegisterer
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		publisherMetrics:  newPublisherPrometheusMetrics(reg),
		settlementMetrics: newSettlementPrometheusMetrics(reg),
		billingMetrics:    newBillingPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) RegisterEchoMiddleware(e *echo.Echo, path, serviceName string) echo.MiddlewareFunc {
	mw := echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  FlattenName(serviceName),
		Registerer: m.reg,
	})
	e.GET(path, echoprometheus.NewHandler())
	return mw
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetSettlementPrometheus() *SettlementPrometheusMetrics {
	return m.settlementMetrics
}

func (m *metrics) GetBillingPrometheus() *BillingPrometheusMetrics {
	return m.billingMetrics
}

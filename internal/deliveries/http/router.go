package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/svnhec/qoda-sub003/internal/common/graceful"
	commonhttp "github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/common/http/middleware"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/common/metrics"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/deliveries/http/health"
	"github.com/svnhec/qoda-sub003/internal/services"

	v1account "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/account"
	v1audit "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/audit"
	v1billingrun "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/billingrun"
	v1journal "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/journal"
	v1organization "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/organization"
	v1settlement "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/settlement"
	v1webhook "github.com/svnhec/qoda-sub003/internal/deliveries/http/v1/webhook"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	srv *services.Services,
	mtc metrics.Metrics,
) *svc {
	app := echo.New()
	app.HideBanner = true

	s := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", log.CorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	if mtc != nil {
		app.Use(mtc.RegisterEchoMiddleware(app, "/metrics", conf.App.Name))
	}

	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	v1Group := apiGroup.Group("/v1")

	// the card network authenticates with its payload signature, so the
	// webhook route sits outside the secret-key group
	v1webhook.New(v1Group, srv.Settlement)

	v1Group.Use(m.InternalAuth())
	v1account.New(v1Group, srv.Account)
	v1journal.New(v1Group, srv.Journal)
	v1organization.New(v1Group, srv.Balance, srv.Funding, srv.Journal)
	v1settlement.New(v1Group, srv.Settlement)
	v1billingrun.New(v1Group, srv.Billing)
	v1audit.New(v1Group, srv.Audit)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return s
}

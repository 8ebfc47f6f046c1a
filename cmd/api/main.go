package main

import (
	"context"
	"sync"
	"time"

	"github.com/svnhec/qoda-sub003/cmd/setup"
	"github.com/svnhec/qoda-sub003/internal/common/graceful"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	// the chart of accounts must exist before any journal write
	if err = s.Service.Account.SeedChart(ctx); err != nil {
		graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		log.Fatalf(ctx, "failed to seed chart of accounts: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic, s.Service, s.Metrics)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}

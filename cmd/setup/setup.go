package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/svnhec/qoda-sub003/internal/common/billing"
	genericCache "github.com/svnhec/qoda-sub003/internal/common/cache"
	"github.com/svnhec/qoda-sub003/internal/common/graceful"
	"github.com/svnhec/qoda-sub003/internal/common/idgenerator"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	cMetrics "github.com/svnhec/qoda-sub003/internal/common/metrics"
	"github.com/svnhec/qoda-sub003/internal/common/publisher"
	"github.com/svnhec/qoda-sub003/internal/common/retry"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/repositories"
	"github.com/svnhec/qoda-sub003/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	env := os.Getenv("QODA_APP_ENV")
	if env == "" {
		env = "local"
	}

	cfg, err := config.Load(env)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: *cfg,
	}

	development := !config.StringToEnvironment(cfg.App.Env).IsProduction()
	if err = log.Init(cfg.App.LogLevel, development); err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, *cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(*cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	cardCache := genericCache.NewInMemoryClient[models.CardResolution]()
	stopper = append(stopper, func(ctx context.Context) error {
		cardCache.Close()
		return nil
	})

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, *cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	producer, err := publisher.NewKafkaSyncProducer(cfg.MessageBroker.Brokers)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	settlementPub := publisher.NewPublisher(producer, cfg.MessageBroker.TopicSettlement)

	billingClient := billing.New(cfg.BillingSystem, mtc)
	idGenerator := idgenerator.New()
	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	// register service
	srv := services.New(
		*cfg,
		sqlRepo,
		cacheRepo,
		cardCache,
		settlementPub,
		billingClient,
		idGenerator,
		retryer,
		mtc,
	)

	return &Setup{
		Config:    *cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     cache,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(log.Logger())
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}

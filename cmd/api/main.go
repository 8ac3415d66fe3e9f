package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "bizindustry/cmd/internal/config"
	"bizindustry/cmd/internal/domain/sqlite"
	"bizindustry/cmd/internal/domain/sqlite/repository"
	"bizindustry/cmd/internal/http/handler"
	"bizindustry/cmd/internal/http/render"
	"bizindustry/cmd/internal/infrastructure/aws/storage"
	"bizindustry/cmd/internal/infrastructure/catalogapi"
	"bizindustry/cmd/internal/routes"
	"bizindustry/cmd/internal/service"
	"bizindustry/cmd/internal/service/jobs"
	"bizindustry/cmd/internal/utils/uid"
	"bizindustry/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/bizindustry/prod/"

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Every variable has a default, so a missing .env is fine
		if err := godotenv.Load(); err != nil {
			log.Debugf("no .env file loaded: %v", err)
		}
	}

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLvl)

	if err = uid.Init(cfg.NodeID); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Handoff store
	var store service.HandoffStore
	switch cfg.Handoff.Backend {
	case appconfig.BackendS3:
		s3Store, err := storage.NewHandoffStore(ctx, cfg.Handoff.S3Region, cfg.Handoff.S3Bucket)
		if err != nil {
			log.Fatalf("failed to init S3 handoff store: %v", err)
		}
		store = s3Store
	default:
		db, err := sqlite.Init(cfg.Handoff.SQLitePath)
		if err != nil {
			log.Fatalf("failed to init sqlite: %v", err)
		}
		handoffRepo := repository.NewHandoffRepository(db)
		store = handoffRepo

		cleaner := jobs.NewHandoffCleaner(handoffRepo, cfg.Handoff.TTL, cfg.Handoff.SweepInterval)
		go cleaner.Start(ctx)
	}

	// Getting services
	client := catalogapi.NewClient(cfg.Catalog.BaseURL, &http.Client{})
	handoffService := service.NewHandoffService(store)
	catalogService := service.NewCatalogService(client, handoffService, validate)
	resultsService := service.NewResultsService(client, handoffService)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	routes.Register(e, &routes.Handlers{
		Home:    handler.NewHomeDefault(catalogService),
		Results: handler.NewResultsDefault(resultsService),
		Company: handler.NewCompanyDefault(catalogService),
		Health:  handler.NewHealthDefault(catalogService),
	}, routes.DefaultSession(cfg.Server.SecureCookies))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := aws.ToString(param.Name)[len(envVarsPrefix):]
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				log.Fatalf("unable to set environment variable, %v", err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
}

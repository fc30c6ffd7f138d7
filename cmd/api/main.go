package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/product-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/product-insights-api/infrastructure/dataset"
	"github.com/vfg2006/product-insights-api/infrastructure/repository"
	"github.com/vfg2006/product-insights-api/internal/api"
	"github.com/vfg2006/product-insights-api/internal/config"
	"github.com/vfg2006/product-insights-api/internal/scheduler"
	"github.com/vfg2006/product-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/product-insights-api/internal/usecases/product"
	"github.com/vfg2006/product-insights-api/internal/usecases/resolving"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var catalogSource dataset.CatalogSource
	var forecastSource dataset.ForecastSource

	if cfg.Dataset.Source == "postgres" {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		catalogSource = repository.NewCatalogRepository(pgConn)
		forecastSource = repository.NewForecastRepository(pgConn)
	} else {
		catalogSource = dataset.NewFileCatalogSource(cfg.Dataset.CatalogPath)
		forecastSource = dataset.NewFileForecastSource(cfg.Dataset.ForecastsDir)
	}

	// Carga única na inicialização; falhas viram stores vazios com aviso
	snapshot := dataset.Load(ctx, catalogSource, forecastSource)
	provider := dataset.NewProvider(snapshot)

	resolver := resolving.NewService(provider)
	productService := product.NewService(resolver)
	authenticator := authenticating.NewService(cfg)

	refreshService := scheduler.NewDatasetRefreshService(provider, catalogSource, forecastSource, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de datasets")
	}

	server, err := api.New(
		cfg,
		productService,
		authenticator,
		refreshService,
		provider,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

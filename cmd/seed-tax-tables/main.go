package main

import (
	"context"
	"errors"
	"time"

	"nbtech_pricing/internal/adapter/persistence/repository"
	"nbtech_pricing/internal/domain/taxtable"
	"nbtech_pricing/internal/infrastructure/config"
	"nbtech_pricing/internal/infrastructure/database"
	"nbtech_pricing/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// Seeds the built-in ICMS table into DynamoDB so TAX_TABLE_SOURCE=dynamodb
// has something to serve. Existing years are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}
	logger.InitLoggerWithConfig(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewTaxTableDynamoRepository(database.ConnectDynamoDB(ctx, cfg), cfg.TaxTablesTable)

	table := taxtable.Default()
	err = repo.Create(ctx, table)
	switch {
	case errors.Is(err, repository.ErrTaxTableAlreadyExists):
		logger.Info("tax table already seeded", zap.String("tax_year", table.Year()), zap.String("table", cfg.TaxTablesTable))
	case err != nil:
		logger.Fatal("failed to seed tax table", zap.String("tax_year", table.Year()), zap.Error(err))
	default:
		logger.Info("tax table seeded", zap.String("tax_year", table.Year()), zap.String("table", cfg.TaxTablesTable))
	}
}

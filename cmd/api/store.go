package main

import (
	"context"
	"fmt"

	"rxquote/internal/adapter/persistence/memory"
	"rxquote/internal/adapter/persistence/postgres"
	"rxquote/internal/adapter/persistence/repository"
	"rxquote/internal/config"
	"rxquote/internal/infrastructure/database"
	"rxquote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type stores struct {
	prescriptions interfaces.IPrescriptionRepository
	quotes        interfaces.IQuoteRepository
	profiles      interfaces.IProfileRepository
	close         func()
}

// openStores builds the repositories of the configured driver. With migrate set, the
// tables are created first.
func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger, migrate bool) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB, log); err != nil {
				return nil, err
			}
		}
		return &stores{
			prescriptions: repository.NewPrescriptionDynamoRepository(ddb, cfg.DynamoDB.PrescriptionsTable),
			quotes:        repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable, cfg.DynamoDB.PrescriptionsTable),
			profiles:      repository.NewProfileDynamoRepository(ddb, cfg.DynamoDB.ProfilesTable),
			close:         func() {},
		}, nil

	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			log.Info("postgres schema applied")
		}
		return &stores{
			prescriptions: postgres.NewPrescriptionRepository(pool),
			quotes:        postgres.NewQuoteRepository(pool),
			profiles:      postgres.NewProfileRepository(pool),
			close:         pool.Close,
		}, nil

	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		s := memory.NewStore()
		return &stores{
			prescriptions: s.Prescriptions(),
			quotes:        s.Quotes(),
			profiles:      s.Profiles(),
			close:         func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

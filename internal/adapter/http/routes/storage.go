package routes

import (
	"context"
	"fmt"

	"pa_dog_license/internal/adapter/persistence/repository"
	"pa_dog_license/internal/infrastructure/config"
	"pa_dog_license/internal/infrastructure/database"
	"pa_dog_license/internal/infrastructure/storage"
	"pa_dog_license/internal/usecase/interfaces"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// newApplicationRepository picks the backend named by Storage.Driver. The
// returned func releases whatever connection the backend holds.
func newApplicationRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IApplicationRepository, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage; applications are lost on restart")
		return repository.NewApplicationSlotRepository(storage.NewMemorySlotStore(), cfg.Storage.Key), noop, nil

	case config.StorageDriverFile:
		store, err := storage.NewFileSlotStore(afero.NewOsFs(), cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using file storage", zap.String("dir", cfg.Storage.Dir), zap.String("key", cfg.Storage.Key))
		return repository.NewApplicationSlotRepository(store, cfg.Storage.Key), noop, nil

	case config.StorageDriverRedis:
		client := storage.NewRedisClient(storage.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := storage.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		log.Info("using redis storage", zap.String("address", cfg.Redis.Address), zap.String("key", cfg.Storage.Key))
		return repository.NewApplicationSlotRepository(storage.NewRedisSlotStore(client), cfg.Storage.Key),
			func() { _ = client.Close() }, nil

	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using dynamodb storage", zap.String("table", cfg.DynamoDB.Table))
		return repository.NewApplicationDynamoRepository(ddb, cfg.DynamoDB.Table), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/platform/envutil"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type Config struct {
	URI      string
	Database string
}

func ConfigFromEnv() Config {
	return Config{
		URI:      envutil.Str("MONGO_URL", "mongodb://localhost:27017"),
		Database: envutil.Str("DB_NAME", "portfolio_db"),
	}
}

// Service owns the single client handle opened at process start.
// Everything that touches the store receives its Database() explicitly.
type Service struct {
	log    *logger.Logger
	client *mongo.Client
	db     *mongo.Database
}

func NewService(log *logger.Logger, cfg Config) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	serviceLog := log.With("service", "MongoService")

	serviceLog.Info("Connecting to MongoDB...", "database", cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	serviceLog.Info("MongoDB connection established")

	return &Service{
		log:    serviceLog,
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (s *Service) Database() *mongo.Database {
	return s.db
}

func (s *Service) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	contactstore "github.com/dalemusser/matterhub/internal/app/store/contacts"
	matterstore "github.com/dalemusser/matterhub/internal/app/store/matters"
	notestore "github.com/dalemusser/matterhub/internal/app/store/notes"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by every store and
// change feed. Change streams require the server to be a replica set
// member; a standalone mongod will accept the connection but reject
// Watch calls at request time.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes each store relies on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	if err := matterstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("matters indexes: %w", err)
	}
	if err := contactstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("contacts indexes: %w", err)
	}
	if err := notestore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("notes indexes: %w", err)
	}

	logger.Info("ensured MongoDB indexes")
	return nil
}

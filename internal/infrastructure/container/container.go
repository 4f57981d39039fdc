// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	mealplanapp "github.com/lutongbahay/v2/internal/application/mealplan"
	"github.com/lutongbahay/v2/internal/application/planner"
	recipeapp "github.com/lutongbahay/v2/internal/application/recipe"
	sessionapp "github.com/lutongbahay/v2/internal/application/session"
	"github.com/lutongbahay/v2/internal/infrastructure/cache"
	"github.com/lutongbahay/v2/internal/infrastructure/config"
	"github.com/lutongbahay/v2/internal/infrastructure/http/server"
	gormRepo "github.com/lutongbahay/v2/internal/infrastructure/persistence/gorm"
	redisRepo "github.com/lutongbahay/v2/internal/infrastructure/persistence/redis"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM database connection. Postgres is
// the production driver; any other configured driver falls back to a
// local SQLite file for development.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}
		gormCfg := &gorm.Config{Logger: gormLogger.Default.LogMode(logLevel)}

		var (
			db  *gorm.DB
			err error
		)
		switch cfg.Database.Driver {
		case "postgres":
			db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormCfg)
		default:
			db, err = gorm.Open(sqlite.Open(cfg.Database.Database+".db"), gormCfg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		if cfg.Database.AutoMigrate {
			if err := db.AutoMigrate(
				&gormRepo.RecipeModel{},
				&gormRepo.IngredientModel{},
				&gormRepo.MealPlanModel{},
				&gormRepo.MealModel{},
			); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		log.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Database),
		)
		return db, nil
	},
)

// CacheModule provides the Redis client
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*cache.RedisClient, error) {
		return cache.NewRedisClient(&cfg.Redis, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewMealPlanRepository,

	func(cfg *config.Config, redis *cache.RedisClient, log *zap.Logger) outbound.SessionStore {
		return redisRepo.NewSessionStore(redis, cfg.Guest.SessionTTL, log)
	},
	func(redis *cache.RedisClient, log *zap.Logger) outbound.PreviewCache {
		return redisRepo.NewPreviewCache(redis, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(log *zap.Logger) *planner.Generator {
		return planner.NewGenerator(planner.NewRandomSource(), log)
	},

	func(
		recipes outbound.RecipeRepository,
		sessions outbound.SessionStore,
		plans outbound.MealPlanRepository,
		preview outbound.PreviewCache,
		generator *planner.Generator,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlanService {
		return mealplanapp.NewPlanService(recipes, sessions, plans, preview, generator, cfg.Guest.DefaultBudget, log)
	},

	func(recipes outbound.RecipeRepository, cfg *config.Config, log *zap.Logger) inbound.RecipeService {
		return recipeapp.NewRecipeService(recipes, cfg.Guest.RecipeListLimit, log)
	},

	func(sessions outbound.SessionStore, recipes outbound.RecipeRepository, cfg *config.Config, log *zap.Logger) inbound.SessionService {
		return sessionapp.NewSessionService(sessions, recipes, cfg.Guest.DefaultBudget, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	redis *cache.RedisClient,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if err := redis.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}

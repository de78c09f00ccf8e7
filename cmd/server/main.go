package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/address-parser-ar/app/config"
	"github.com/address-parser-ar/app/controllers"
	"github.com/address-parser-ar/app/services"
	"github.com/address-parser-ar/internal/addrcache"
	"github.com/address-parser-ar/routes"
	"github.com/address-parser-ar/pkg/addr"
)

func main() {
	if err := config.Load("config/parser.yaml"); err != nil {
		// A missing config file is not fatal; viper below still supplies defaults.
	}
	loadEnvOverrides()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting address parser service")

	cache, backendName := initCache(logger)

	parser := addr.New(addr.WithCache(cache))
	reviews := services.NewReviewService(logger)

	addressController := controllers.NewAddressController(parser, reviews, backendName, logger)
	reviewController := controllers.NewReviewController(reviews, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, addressController, reviewController)

	port := config.C.Port
	logger.Info("listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

// loadEnvOverrides mirrors the teacher's dual config-loading texture: the
// YAML file is the primary source, the env vars bound below override it
// (CACHE_BACKEND is already applied by config.Load), and viper's defaults
// fill any field the YAML left empty, rather than unifying the two loaders.
func loadEnvOverrides() {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("cache.backend", "lru")
	viper.SetDefault("cache.capacity", 10000)
	viper.SetDefault("cache.redis_url", "redis://localhost:6379")
	viper.SetDefault("cache.mongo_uri", "mongodb://localhost:27017")
	viper.SetDefault("cache.mongo_db", "address_parser")
	viper.AutomaticEnv()
	viper.BindEnv("app.port", "PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_url", "REDIS_URL")
	viper.BindEnv("cache.mongo_uri", "MONGO_URI")

	if config.C.Port == "" || os.Getenv("PORT") != "" {
		config.C.Port = viper.GetString("app.port")
	}
	if config.C.Cache.Backend == "" {
		config.C.Cache.Backend = config.CacheBackend(viper.GetString("cache.backend"))
	}
	if config.C.Cache.Capacity == 0 {
		config.C.Cache.Capacity = viper.GetInt("cache.capacity")
	}
	if config.C.Cache.RedisURL == "" || os.Getenv("REDIS_URL") != "" {
		config.C.Cache.RedisURL = viper.GetString("cache.redis_url")
	}
	if config.C.Cache.MongoURI == "" || os.Getenv("MONGO_URI") != "" {
		config.C.Cache.MongoURI = viper.GetString("cache.mongo_uri")
	}
	if config.C.Cache.MongoDB == "" {
		config.C.Cache.MongoDB = viper.GetString("cache.mongo_db")
	}
}

func initLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetString("app.env") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func initCache(logger *zap.Logger) (addrcache.Cache, string) {
	backend := config.C.Cache.Backend
	switch backend {
	case config.CacheBackendNone, "":
		return addrcache.NoCache{}, "none"
	case config.CacheBackendMemory:
		return addrcache.NewMemoryCache(config.C.Cache.TTL), "memory"
	case config.CacheBackendLRU:
		cap := config.C.Cache.Capacity
		if cap <= 0 {
			cap = 10000
		}
		c, err := addrcache.NewLRUCache(cap)
		if err != nil {
			logger.Fatal("failed to initialize lru cache", zap.Error(err))
		}
		return c, "lru"
	case config.CacheBackendRedis:
		c, err := addrcache.NewRedisCache(config.C.Cache.RedisURL, config.C.Cache.TTL, logger)
		if err != nil {
			logger.Fatal("failed to initialize redis cache", zap.Error(err))
		}
		return c, "redis"
	case config.CacheBackendMongo:
		db := mustMongoDB(logger)
		c, err := addrcache.NewMongoCache(db, config.C.Cache.Capacity, logger)
		if err != nil {
			logger.Fatal("failed to initialize mongo cache", zap.Error(err))
		}
		return c, "mongo"
	case config.CacheBackendHybrid:
		redisCache, err := addrcache.NewRedisCache(config.C.Cache.RedisURL, config.C.Cache.TTL, logger)
		if err != nil {
			logger.Fatal("failed to initialize redis tier", zap.Error(err))
		}
		db := mustMongoDB(logger)
		mongoCache, err := addrcache.NewMongoCache(db, config.C.Cache.Capacity, logger)
		if err != nil {
			logger.Fatal("failed to initialize mongo tier", zap.Error(err))
		}
		return addrcache.NewHybridCache(redisCache, mongoCache, logger), "hybrid"
	default:
		logger.Warn("unknown cache backend, falling back to lru", zap.String("backend", string(backend)))
		c, err := addrcache.NewLRUCache(10000)
		if err != nil {
			logger.Fatal("failed to initialize fallback lru cache", zap.Error(err))
		}
		return c, "lru"
	}
}

func mustMongoDB(logger *zap.Logger) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.C.Cache.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongo", zap.Error(err))
	}
	return client.Database(config.C.Cache.MongoDB)
}

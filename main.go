package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/config"
	"github.com/neighborhood-resolver/app/services"
	"github.com/neighborhood-resolver/internal/dataset"
	"github.com/neighborhood-resolver/internal/gazetteer"
	"github.com/neighborhood-resolver/internal/matcher"
	"github.com/neighborhood-resolver/internal/reconcile"
)

func main() {
	// 1. Load configuration
	loadConfig()

	// 2. Init logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting neighborhood resolver batch run")

	// 3. Load the reference dataset and the source listing
	provinces, err := dataset.LoadProvinces(config.C.Datasets.Provinces)
	if err != nil {
		logger.Fatal("Failed to load province table", zap.Error(err))
	}
	districts, err := dataset.LoadDistricts(config.C.Datasets.Districts)
	if err != nil {
		logger.Fatal("Failed to load district table", zap.Error(err))
	}
	neighborhoods, err := dataset.LoadNeighborhoods(config.C.Datasets.Neighborhoods)
	if err != nil {
		logger.Fatal("Failed to load neighborhood table", zap.Error(err))
	}
	records, err := dataset.LoadSourceListing(config.C.Datasets.Source)
	if err != nil {
		logger.Fatal("Failed to load source listing", zap.Error(err))
	}

	// 4. Build the reference index
	index, err := gazetteer.Build(provinces, districts, neighborhoods)
	if err != nil {
		logger.Fatal("Failed to build reference index", zap.Error(err))
	}
	logger.Info("Reference index built",
		zap.Int("provinces", len(provinces)),
		zap.Int("districts", len(districts)),
		zap.Int("neighborhoods", len(neighborhoods)),
		zap.Int("source_records", len(records)))

	// 5. Wire the pipeline
	thresholds := matcher.Thresholds{
		District:           config.C.Thresholds.District,
		NeighborhoodFirst:  config.C.Thresholds.NeighborhoodFirst,
		NeighborhoodSecond: config.C.Thresholds.NeighborhoodSecond,
	}
	m := matcher.New(index, thresholds, logger)
	reconciler := reconcile.New(logger)
	resolveService := services.NewResolveService(index, m, reconciler, logger)

	// 6. Resolve and write the output
	rows, stats := resolveService.ResolveAll(records)

	if err := dataset.WriteOutput(config.C.Datasets.Output, rows); err != nil {
		logger.Fatal("Failed to write output", zap.Error(err))
	}

	logger.Info("Output written",
		zap.String("path", config.C.Datasets.Output),
		zap.Int("rows", stats.Resolved),
		zap.Int("dropped", stats.Total-stats.Resolved))
}

// loadConfig loads .env, the viper app config and the resolver tuning file.
func loadConfig() {
	_ = godotenv.Load()

	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.env", "development")
	viper.SetDefault("resolver.config", "config/resolver.yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}

	if err := config.Load(viper.GetString("resolver.config")); err != nil {
		log.Fatalf("Cannot load resolver config: %v", err)
	}
}

// initLogger builds the structured logger for the configured environment.
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", viper.GetString("app.env"))

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}

	return logger
}

// getEnv reads an environment variable with a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

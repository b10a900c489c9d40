package main

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ghdehrl12345/foodLens/config"
	"github.com/ghdehrl12345/foodLens/logger"
	"github.com/ghdehrl12345/foodLens/routes"
	"github.com/ghdehrl12345/foodLens/services"
	"github.com/ghdehrl12345/foodLens/storage"
	"github.com/ghdehrl12345/foodLens/utils"
)

func main() {
	logger.Init()
	defer logger.Sync()
	log := logger.L()

	cfg := config.Load(log)
	ctx := context.Background()

	var store storage.Store
	if cfg.DB.Host != "" {
		db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		store, err = storage.NewGormStore(db)
		if err != nil {
			log.Fatal("failed to prepare record store", zap.Error(err))
		}
	} else {
		log.Warn("DB_HOST not set, using in-memory storage (data is lost on restart)")
		store = storage.NewMemoryStore()
	}

	if cfg.S3Bucket != "" {
		if err := utils.InitS3(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL); err != nil {
			log.Fatal("failed to initialize S3", zap.Error(err))
		}
	}

	analyzer, err := services.NewAnalyzer(ctx, services.AnalyzerConfig{
		Mode:    cfg.AnalyzerMode,
		BaseURL: cfg.ModelBaseURL,
	}, cfg.AWSRegion, store, log)
	if err != nil {
		log.Fatal("failed to build analyzer", zap.Error(err))
	}
	log.Info("analyzer ready", zap.String("mode", cfg.AnalyzerMode))

	ledger := services.NewLedgerService(store, log)
	profile := services.NewProfileService(store)

	r := routes.SetupRouter(ledger, profile, analyzer, log)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

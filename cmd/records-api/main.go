package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/spvm/records-api/internal/bootstrap"
	"github.com/spvm/records-api/internal/handler"
	"github.com/spvm/records-api/internal/middleware"
	"github.com/spvm/records-api/internal/repository"
	"github.com/spvm/records-api/internal/service"
	"github.com/spvm/records-api/pkg/cache"
	"github.com/spvm/records-api/pkg/config"
	"github.com/spvm/records-api/pkg/database"
	"github.com/spvm/records-api/pkg/logger"
	corsmiddleware "github.com/spvm/records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/spvm/records-api/pkg/middleware/requestid"
)

// @title SPVM Records API
// @version 1.0.0
// @description Police records management service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := bootstrap.Run(ctx, db, cfg.Seed, logr); err != nil {
		logr.Sugar().Fatalw("failed to bootstrap database", "error", err)
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, reference caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New()

	officerRepo := repository.NewOfficerRepository(db)
	rankRepo := repository.NewRankRepository(db)
	penalCodeRepo := repository.NewPenalCodeRepository(db)
	arrestRepo := repository.NewArrestRepository(db)
	fineRepo := repository.NewFineRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	sanctionRepo := repository.NewSanctionRepository(db)
	warrantRepo := repository.NewWarrantRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(officerRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	officerSvc := service.NewOfficerService(officerRepo, rankRepo, validate, logr)
	rankSvc := service.NewRankService(rankRepo, officerRepo, validate, logr)
	penalCodeSvc := service.NewPenalCodeService(penalCodeRepo, cacheRepo, metricsSvc, cfg.Cache.TTL, validate, logr)
	reportSvc := service.NewReportService(arrestRepo, fineRepo, validate, logr)
	complaintSvc := service.NewComplaintService(complaintRepo, validate, logr)
	sanctionSvc := service.NewSanctionService(sanctionRepo, officerRepo, validate, logr)
	warrantSvc := service.NewWarrantService(warrantRepo, validate, logr)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Officer:   handler.NewOfficerHandler(officerSvc),
		Rank:      handler.NewRankHandler(rankSvc),
		PenalCode: handler.NewPenalCodeHandler(penalCodeSvc),
		Report:    handler.NewReportHandler(reportSvc),
		Complaint: handler.NewComplaintHandler(complaintSvc),
		Sanction:  handler.NewSanctionHandler(sanctionSvc),
		Warrant:   handler.NewWarrantHandler(warrantSvc),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg, handlers, authSvc, metricsSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

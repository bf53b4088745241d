package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/config"
	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/handler"
	"github.com/weiawesome/wes-io-social/internal/idgen"
	"github.com/weiawesome/wes-io-social/internal/repository"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/database"
	pkglog "github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

const serviceName = "social-service"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty || cfg.Log.Level == "debug",
		ServiceName: serviceName,
	})
	logger := pkglog.L()

	// 3. Init DB and migrate
	db, err := database.New(&database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get underlying sql.DB")
	}
	defer sqlDB.Close()

	if err := database.AutoMigrate(db, domain.Models()...); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database migration completed")

	// 4. Id generator
	ids, err := idgen.New(cfg.ID)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create id generator")
	}

	// 5. Activity publisher
	publisher, err := pubsub.NewPublisher(context.Background(), cfg.Events)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Events.Driver).Msg("failed to create activity publisher")
	}
	defer publisher.Close()
	logger.Info().Str("driver", cfg.Events.Driver).Msg("activity publisher ready")

	// 6. Create repos and services
	userRepo := repository.NewGormUserRepository(db, ids)
	postRepo := repository.NewGormPostRepository(db, ids)
	commentRepo := repository.NewGormCommentRepository(db, ids)
	likeRepo := repository.NewGormLikeRepository(db, ids)
	commentLikeRepo := repository.NewGormCommentLikeRepository(db, ids)
	followRepo := repository.NewGormFollowRepository(db)

	httpHandler := handler.NewHandler(
		service.NewUserService(userRepo, publisher),
		service.NewFollowService(followRepo, userRepo, publisher),
		service.NewPostService(postRepo, userRepo, publisher),
		service.NewCommentService(commentRepo, postRepo, userRepo, publisher),
		service.NewLikeService(likeRepo, commentLikeRepo, postRepo, commentRepo, userRepo, publisher),
	)

	// 7. Setup Gin router + HTTP server
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("addr", addr).Msg(serviceName + " starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// 8. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP server forced to shutdown")
	}
	logger.Info().Msg(serviceName + " stopped")
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

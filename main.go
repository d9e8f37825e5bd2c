package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fintrack/internal/config"
	"fintrack/internal/repository"
	"fintrack/internal/server"
	"fintrack/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	postgresPool, err := pgxpool.Connect(ctx, cfg.PostgresEndpoint)
	if err != nil {
		logrus.Fatalf("couldn't connect to postgres: %v", err)
	}
	defer postgresPool.Close()

	mongoCli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoEndpoint))
	if err != nil {
		logrus.Fatalf("couldn't connect to mongo: %v", err)
	}
	defer func() {
		if err = mongoCli.Disconnect(context.Background()); err != nil {
			logrus.Errorf("couldn't disconnect mongo: %v", err)
		}
	}()
	if err = mongoCli.Ping(ctx, readpref.Primary()); err != nil {
		logrus.Fatalf("couldn't ping mongo: %v", err)
	}

	userRepo := repository.NewPostgres(postgresPool)
	categoryRepo := repository.NewCategoryMongo(mongoCli, cfg.MongoDatabase)
	transactionRepo := repository.NewTransactionMongo(mongoCli, cfg.MongoDatabase)
	if err = categoryRepo.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("couldn't ensure mongo indexes: %v", err)
	}

	locker := service.NewLocker()
	authService := service.NewAuth(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	categoryService := service.NewCategories(categoryRepo, transactionRepo, locker)
	transactionService := service.NewTransactions(transactionRepo, categoryRepo, locker)
	reporter := service.NewReporter(categoryRepo, transactionRepo)

	srv := server.New(authService, categoryService, transactionService, reporter, validator.New())
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		logrus.Infof("http server listening on %s", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("http server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http server shutdown error: %v", err)
	}
}

package main

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"

  "github.com/gin-gonic/gin"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/issues/internal/app/issues"
  "github.com/ushakovn/issues/internal/app/rest"
  "github.com/ushakovn/issues/internal/config"
  "github.com/ushakovn/issues/internal/deps/storage/mongodb"
  "github.com/ushakovn/issues/pkg/logger"

  _ "github.com/ushakovn/boiler/pkg/app"
)

func main() {
  ctx := context.Background()

  logger.InitWithLevel(config.Get(ctx, config.LogLevel).String(), map[string]any{
    "app": "issues",
  })

  if logger.IsProduction() {
    gin.SetMode(gin.ReleaseMode)
  }

  log.Warn("issues app initializing")

  mongoConfig := mongodb.Config{
    Host: config.Get(ctx, config.MongodbHost).String(),
    Port: config.Get(ctx, config.MongodbPort).String(),
  }
  if user := config.Get(ctx, config.MongodbUser); !user.IsEmpty() {
    mongoConfig.Authentication = &mongodb.Authentication{
      User:     user.String(),
      Password: config.Get(ctx, config.MongodbPassword).String(),
    }
  }

  mongoClient, err := mongodb.NewClient(ctx, mongoConfig, mongodb.Dependencies{
    Client: http.DefaultClient,
  })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }
  log.Info("mongodb connection successfully")

  issuesApp := issues.NewIssues(issues.Config{
    Database:   config.Get(ctx, config.MongodbDatabase).String(),
    Collection: config.Get(ctx, config.MongodbCollection).String(),
  }, issues.Dependencies{
    Mongodb: mongoClient,
  })

  transport := rest.NewTransport(rest.Dependencies{
    Issues:  issuesApp,
    Mongodb: mongoClient,
  })

  server := &http.Server{
    Addr:    fmt.Sprintf(":%d", config.Get(ctx, config.HttpPort).Int()),
    Handler: transport.Handler(),
  }

  go func() {
    log.WithField("addr", server.Addr).Info("http server starting")

    if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      log.Fatalf("server.ListenAndServe: %v", err)
    }
  }()

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal

  log.Warn("issues app terminating")

  shutdownCtx, cancel := context.WithTimeout(ctx, config.Get(ctx, config.HttpShutdownTimeout).Duration())
  defer cancel()

  if err = server.Shutdown(shutdownCtx); err != nil {
    log.Errorf("server.Shutdown: %v", err)
  }
  if err = mongoClient.Disconnect(shutdownCtx); err != nil {
    log.Errorf("mongoClient.Disconnect: %v", err)
  }
}

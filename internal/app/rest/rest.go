package rest

import (
  "context"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/ushakovn/issues/internal/app/issues"
)

type Transport struct {
  deps   Dependencies
  engine *gin.Engine
}

type Pinger interface {
  Ping(ctx context.Context) error
}

type Dependencies struct {
  Issues  *issues.Issues
  Mongodb Pinger
}

func NewTransport(deps Dependencies) *Transport {
  engine := gin.New()
  engine.Use(gin.Recovery(), requestLogger())

  b := &Transport{
    deps:   deps,
    engine: engine,
  }
  b.registerHandlers()

  return b
}

func (b *Transport) Handler() http.Handler {
  return b.engine
}

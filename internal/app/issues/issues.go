package issues

import (
  "context"
  "errors"
  "time"

  "github.com/ushakovn/issues/internal/deps/storage/mongodb"
)

var (
  ErrRequiredFieldsMissing = errors.New("required field(s) missing")
  ErrMissingID             = errors.New("missing _id")
  ErrInvalidID             = errors.New("invalid _id")
  ErrNoUpdateFields        = errors.New("no update field(s) sent")
)

type Issues struct {
  config Config
  deps   Dependencies
  now    func() time.Time
}

type Config struct {
  Database   string
  Collection string
}

type Storage interface {
  Find(ctx context.Context, params mongodb.FindParams) ([]any, error)
  Insert(ctx context.Context, params mongodb.InsertParams) (id any, err error)
  Update(ctx context.Context, params mongodb.UpdateParams) (matched int64, err error)
  Delete(ctx context.Context, params mongodb.DeleteParams) (count int64, err error)
}

type Dependencies struct {
  Mongodb Storage
}

func NewIssues(config Config, deps Dependencies) *Issues {
  return &Issues{
    config: config,
    deps:   deps,
    now:    time.Now,
  }
}

package config

import (
  "context"
  "os"
  "time"

  "github.com/spf13/cast"
)

type Key string

const (
  MongodbHost       Key = "MONGODB_HOST"
  MongodbPort       Key = "MONGODB_PORT"
  MongodbUser       Key = "MONGODB_USER"
  MongodbPassword   Key = "MONGODB_PASSWORD"
  MongodbDatabase   Key = "MONGODB_DATABASE"
  MongodbCollection Key = "MONGODB_COLLECTION"

  HttpPort            Key = "HTTP_PORT"
  HttpShutdownTimeout Key = "HTTP_SHUTDOWN_TIMEOUT"

  LogLevel Key = "LOG_LEVEL"
)

var defaults = map[Key]any{
  MongodbHost:       "localhost",
  MongodbPort:       "27017",
  MongodbDatabase:   "issues",
  MongodbCollection: "issues",

  HttpPort:            8080,
  HttpShutdownTimeout: "10s",

  LogLevel: "info",
}

type Value struct {
  value any
}

// Get reads the key from the environment and falls back to its default.
func Get(_ context.Context, key Key) Value {
  if value, ok := os.LookupEnv(string(key)); ok {
    return Value{value: value}
  }
  return Value{value: defaults[key]}
}

func (v Value) String() string {
  return cast.ToString(v.value)
}

func (v Value) Int() int {
  return cast.ToInt(v.value)
}

func (v Value) Duration() time.Duration {
  return cast.ToDuration(v.value)
}

func (v Value) IsEmpty() bool {
  return v.String() == ""
}

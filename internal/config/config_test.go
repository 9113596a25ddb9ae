package config

import (
  "context"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
  ctx := context.Background()

  assert.Equal(t, "localhost", Get(ctx, MongodbHost).String())
  assert.Equal(t, 8080, Get(ctx, HttpPort).Int())
  assert.Equal(t, 10*time.Second, Get(ctx, HttpShutdownTimeout).Duration())
  assert.True(t, Get(ctx, MongodbUser).IsEmpty())
}

func TestGet_Environment(t *testing.T) {
  ctx := context.Background()

  t.Setenv(string(MongodbHost), "mongo")
  t.Setenv(string(HttpPort), "3000")
  t.Setenv(string(HttpShutdownTimeout), "2s")

  assert.Equal(t, "mongo", Get(ctx, MongodbHost).String())
  assert.Equal(t, 3000, Get(ctx, HttpPort).Int())
  assert.Equal(t, 2*time.Second, Get(ctx, HttpShutdownTimeout).Duration())
}

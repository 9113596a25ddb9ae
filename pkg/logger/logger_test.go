package logger

import (
  "bytes"
  "encoding/json"
  "testing"

  log "github.com/sirupsen/logrus"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
  f := formatter{
    format: new(log.JSONFormatter),
    fields: map[string]any{
      "app":     "issues",
      "project": "default",
    },
  }

  entry := log.NewEntry(log.New()).WithField("project", "apitest")
  entry.Message = "issue created"

  out, err := f.Format(entry)
  require.NoError(t, err)

  var fields map[string]any
  require.NoError(t, json.NewDecoder(bytes.NewReader(out)).Decode(&fields))

  assert.Equal(t, "issues", fields["app"])
  assert.Equal(t, "apitest", fields["project"])
  assert.Equal(t, "issue created", fields["msg"])
}

func TestInitWithLevel(t *testing.T) {
  defer log.SetLevel(log.InfoLevel)

  InitWithLevel("debug", map[string]any{})
  assert.Equal(t, log.DebugLevel, log.GetLevel())

  InitWithLevel("loud", map[string]any{})
  assert.Equal(t, log.InfoLevel, log.GetLevel())
}

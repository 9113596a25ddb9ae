package logger

import (
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/boiler/pkg/env"
)

type formatter struct {
  format log.Formatter
  fields map[string]any
}

func (f formatter) Format(entry *log.Entry) ([]byte, error) {
  for k, v := range f.fields {
    if _, exists := entry.Data[k]; !exists {
      entry.Data[k] = v
    }
  }
  return f.format.Format(entry)
}

// InitWithLevel falls back to info when level can not be parsed.
func InitWithLevel(level string, fields map[string]any) {
  var (
    format log.Formatter
    caller bool
  )

  if IsProduction() {
    format = new(log.JSONFormatter)
    caller = true
  } else {
    format = new(log.TextFormatter)
  }

  lvl, err := log.ParseLevel(level)
  if err != nil {
    lvl = log.InfoLevel
  }

  log.SetFormatter(formatter{
    fields: fields,
    format: format,
  })
  log.SetLevel(lvl)
  log.SetReportCaller(caller)

  if err != nil {
    log.Warnf("logger: unknown level %q: using %s", level, lvl)
  }
}

func IsProduction() bool {
  return env.AppEnv() == env.ProductionEnv
}

package rest

import (
  "math"
  "net/url"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/gin-gonic/gin/binding"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
  "github.com/ushakovn/issues/internal/models"
)

const (
  errorDatabase       = "Database error"
  errorRequiredFields = "required field(s) missing"
  errorMissingID      = "missing _id"
  errorNoUpdateFields = "no update field(s) sent"
  errorCouldNotUpdate = "could not update"
  errorCouldNotDelete = "could not delete"

  resultUpdated = "successfully updated"
  resultDeleted = "successfully deleted"
)

// Client input errors are sent with status 200, like every other payload.
type errorResponse struct {
  Error string `json:"error"`
  ID    string `json:"_id,omitempty"`
}

type resultResponse struct {
  Result string `json:"result"`
  ID     string `json:"_id"`
}

func makeListIssuesParams(c *gin.Context) models.ListIssuesParams {
  params := models.ListIssuesParams{
    Project: c.Param("project"),
    Fields:  map[string]string{},
  }

  for key, values := range c.Request.URL.Query() {
    if key == "open" || len(values) == 0 {
      continue
    }
    params.Fields[key] = values[0]
  }

  if open := c.Query("open"); open != "" {
    params.Open = lo.ToPtr(open == "true")
  }

  return params
}

// bindFields decodes a JSON or urlencoded body into a flat map.
// Unreadable bodies are treated as empty.
func bindFields(c *gin.Context) map[string]any {
  fields := map[string]any{}

  body, err := c.GetRawData()
  if err != nil {
    log.Warnf("c.GetRawData: %v", err)
    return fields
  }
  if len(body) == 0 {
    return fields
  }

  switch c.ContentType() {
  case binding.MIMEJSON:
    if err = binding.JSON.BindBody(body, &fields); err != nil {
      log.Warnf("binding.JSON.BindBody: %v", err)
      return map[string]any{}
    }

  case binding.MIMEPOSTForm:
    values, err := url.ParseQuery(string(body))
    if err != nil {
      log.Warnf("url.ParseQuery: %v", err)
      return fields
    }
    for key := range values {
      fields[key] = values.Get(key)
    }

  default:
    log.Warnf("unsupported content type: %q", c.ContentType())
  }

  return fields
}

// stringField returns "" for falsy values: false, 0, null and "".
func stringField(fields map[string]any, key string) string {
  value, ok := fields[key]
  if !ok || isFalsy(value) {
    return ""
  }
  return cast.ToString(value)
}

func isFalsy(value any) bool {
  switch v := value.(type) {
  case nil:
    return true
  case bool:
    return !v
  case float64:
    return v == 0 || math.IsNaN(v)
  case string:
    return v == ""
  default:
    return false
  }
}

// optionalStringField treats an empty value as not sent.
func optionalStringField(fields map[string]any, key string) *string {
  return lo.EmptyableToPtr(stringField(fields, key))
}

func openField(fields map[string]any) *bool {
  value, ok := fields["open"]
  if !ok || value == nil {
    return nil
  }
  if open, ok := value.(bool); ok {
    return lo.ToPtr(open)
  }
  return lo.ToPtr(cast.ToString(value) == "true")
}

func requestLogger() gin.HandlerFunc {
  return func(c *gin.Context) {
    start := time.Now()

    c.Next()

    log.
      WithFields(log.Fields{
        "http.method":  c.Request.Method,
        "http.path":    c.Request.URL.Path,
        "http.status":  c.Writer.Status(),
        "http.latency": time.Since(start).String(),
      }).
      Info("http request handled")
  }
}

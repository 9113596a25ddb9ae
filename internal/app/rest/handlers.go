package rest

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/issues/internal/app/issues"
  "github.com/ushakovn/issues/internal/models"
)

func (b *Transport) handleHealth(c *gin.Context) {
  if err := b.deps.Mongodb.Ping(c.Request.Context()); err != nil {
    log.Errorf("b.deps.Mongodb.Ping: %v", err)

    c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
    return
  }

  c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (b *Transport) handleListIssues(c *gin.Context) {
  params := makeListIssuesParams(c)

  list, err := b.deps.Issues.List(c.Request.Context(), params)
  if err != nil {
    log.
      WithField("project", params.Project).
      Errorf("b.deps.Issues.List: %v", err)

    c.JSON(http.StatusInternalServerError, errorResponse{Error: errorDatabase})
    return
  }

  c.JSON(http.StatusOK, list)
}

func (b *Transport) handleCreateIssue(c *gin.Context) {
  fields := bindFields(c)

  issue, err := b.deps.Issues.Create(c.Request.Context(), models.CreateIssueParams{
    Project:    c.Param("project"),
    IssueTitle: stringField(fields, "issue_title"),
    IssueText:  stringField(fields, "issue_text"),
    CreatedBy:  stringField(fields, "created_by"),
    AssignedTo: stringField(fields, "assigned_to"),
    StatusText: stringField(fields, "status_text"),
  })
  if err != nil {
    if errors.Is(err, issues.ErrRequiredFieldsMissing) {
      c.JSON(http.StatusOK, errorResponse{Error: errorRequiredFields})
      return
    }
    log.
      WithField("project", c.Param("project")).
      Errorf("b.deps.Issues.Create: %v", err)

    c.JSON(http.StatusInternalServerError, errorResponse{Error: errorDatabase})
    return
  }

  c.JSON(http.StatusOK, issue)
}

func (b *Transport) handleUpdateIssue(c *gin.Context) {
  fields := bindFields(c)
  id := stringField(fields, "_id")

  err := b.deps.Issues.Update(c.Request.Context(), models.UpdateIssueParams{
    Project:    c.Param("project"),
    ID:         id,
    IssueTitle: optionalStringField(fields, "issue_title"),
    IssueText:  optionalStringField(fields, "issue_text"),
    CreatedBy:  optionalStringField(fields, "created_by"),
    AssignedTo: optionalStringField(fields, "assigned_to"),
    StatusText: optionalStringField(fields, "status_text"),
    Open:       openField(fields),
  })

  switch {
  case err == nil:
    c.JSON(http.StatusOK, resultResponse{Result: resultUpdated, ID: id})

  case errors.Is(err, issues.ErrMissingID):
    c.JSON(http.StatusOK, errorResponse{Error: errorMissingID})

  case errors.Is(err, issues.ErrNoUpdateFields):
    c.JSON(http.StatusOK, errorResponse{Error: errorNoUpdateFields, ID: id})

  default:
    log.
      WithFields(log.Fields{
        "project":  c.Param("project"),
        "issue.id": id,
      }).
      Warnf("b.deps.Issues.Update: %v", err)

    c.JSON(http.StatusOK, errorResponse{Error: errorCouldNotUpdate, ID: id})
  }
}

func (b *Transport) handleDeleteIssue(c *gin.Context) {
  fields := bindFields(c)
  id := stringField(fields, "_id")

  err := b.deps.Issues.Delete(c.Request.Context(), models.DeleteIssueParams{
    Project: c.Param("project"),
    ID:      id,
  })

  switch {
  case err == nil:
    c.JSON(http.StatusOK, resultResponse{Result: resultDeleted, ID: id})

  case errors.Is(err, issues.ErrMissingID):
    c.JSON(http.StatusOK, errorResponse{Error: errorMissingID})

  default:
    log.
      WithFields(log.Fields{
        "project":  c.Param("project"),
        "issue.id": id,
      }).
      Warnf("b.deps.Issues.Delete: %v", err)

    c.JSON(http.StatusOK, errorResponse{Error: errorCouldNotDelete, ID: id})
  }
}

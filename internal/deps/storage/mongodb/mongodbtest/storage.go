// Package mongodbtest provides an in-memory issue collection with the
// method set of mongodb.Client.
package mongodbtest

import (
  "context"
  "fmt"
  "sync"

  "github.com/samber/lo"
  "github.com/ushakovn/issues/internal/deps/storage/mongodb"
  "github.com/ushakovn/issues/internal/models"
  "go.mongodb.org/mongo-driver/bson/primitive"
)

type Storage struct {
  mu     sync.Mutex
  issues []models.Issue
  err    error
}

func NewStorage() *Storage {
  return &Storage{}
}

// Fail makes every following call return err. Nil restores normal behaviour.
func (s *Storage) Fail(err error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.err = err
}

// Issues returns stored documents including the project field.
func (s *Storage) Issues() []models.Issue {
  s.mu.Lock()
  defer s.mu.Unlock()

  out := make([]models.Issue, len(s.issues))
  copy(out, s.issues)

  return out
}

func (s *Storage) Ping(_ context.Context) error {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.err
}

func (s *Storage) Find(_ context.Context, params mongodb.FindParams) ([]any, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.err != nil {
    return nil, s.err
  }
  out := make([]any, 0, len(s.issues))

  for _, issue := range s.issues {
    if !matches(issue, params.Filters) {
      continue
    }
    if lo.Contains(params.Exclude, "project") {
      issue.Project = ""
    }
    found := issue
    out = append(out, &found)

    if params.Limit != 0 && int64(len(out)) == params.Limit {
      break
    }
  }

  return out, nil
}

func (s *Storage) Insert(_ context.Context, params mongodb.InsertParams) (any, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.err != nil {
    return nil, s.err
  }

  var issue models.Issue

  switch doc := params.Document.(type) {
  case *models.Issue:
    issue = *doc
  case models.Issue:
    issue = doc
  default:
    return nil, fmt.Errorf("unsupported document type: %T", params.Document)
  }

  if issue.ID.IsZero() {
    issue.ID = primitive.NewObjectID()
  }
  s.issues = append(s.issues, issue)

  return issue.ID, nil
}

func (s *Storage) Update(_ context.Context, params mongodb.UpdateParams) (int64, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.err != nil {
    return 0, s.err
  }

  update, ok := params.Document.(models.IssueUpdate)
  if !ok {
    return 0, fmt.Errorf("unsupported document type: %T", params.Document)
  }

  for index, issue := range s.issues {
    if !matches(issue, params.Filters) {
      continue
    }
    s.issues[index] = applyUpdate(issue, update)

    return 1, nil
  }

  return 0, nil
}

func (s *Storage) Delete(_ context.Context, params mongodb.DeleteParams) (int64, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  if s.err != nil {
    return 0, s.err
  }

  for index, issue := range s.issues {
    if !matches(issue, params.Filters) {
      continue
    }
    s.issues = append(s.issues[:index], s.issues[index+1:]...)

    return 1, nil
  }

  return 0, nil
}

func applyUpdate(issue models.Issue, update models.IssueUpdate) models.Issue {
  if update.IssueTitle != nil {
    issue.IssueTitle = *update.IssueTitle
  }
  if update.IssueText != nil {
    issue.IssueText = *update.IssueText
  }
  if update.CreatedBy != nil {
    issue.CreatedBy = *update.CreatedBy
  }
  if update.AssignedTo != nil {
    issue.AssignedTo = *update.AssignedTo
  }
  if update.StatusText != nil {
    issue.StatusText = *update.StatusText
  }
  if update.Open != nil {
    issue.Open = *update.Open
  }
  if !update.UpdatedOn.IsZero() {
    issue.UpdatedOn = update.UpdatedOn
  }
  return issue
}

func matches(issue models.Issue, filters map[string]any) bool {
  for key, value := range filters {
    var field any

    switch key {
    case "_id":
      field = issue.ID
    case "project":
      field = issue.Project
    case "issue_title":
      field = issue.IssueTitle
    case "issue_text":
      field = issue.IssueText
    case "created_by":
      field = issue.CreatedBy
    case "assigned_to":
      field = issue.AssignedTo
    case "status_text":
      field = issue.StatusText
    case "open":
      field = issue.Open
    default:
      return false
    }

    if field != value {
      return false
    }
  }
  return true
}

package issues

import (
  "context"
  "errors"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/issues/internal/deps/storage/mongodb"
  "github.com/ushakovn/issues/internal/models"
  "go.mongodb.org/mongo-driver/bson/primitive"
)

func (c *Issues) List(ctx context.Context, params models.ListIssuesParams) ([]*models.Issue, error) {
  res, err := c.deps.Mongodb.Find(ctx, mongodb.FindParams{
    CommonParams: c.commonParams(),
    Filters:      makeIssuesFilters(params),
    Exclude:      []string{"project"},
  })
  if err != nil {
    return nil, fmt.Errorf("c.deps.Mongodb.Find: %w", err)
  }

  return makeListIssues(res)
}

func (c *Issues) Create(ctx context.Context, params models.CreateIssueParams) (*models.Issue, error) {
  if err := params.Validate(); err != nil {
    return nil, fmt.Errorf("%w: %v", ErrRequiredFieldsMissing, err)
  }
  now := c.timestamp()

  issue := &models.Issue{
    Project:    params.Project,
    IssueTitle: params.IssueTitle,
    IssueText:  params.IssueText,
    CreatedBy:  params.CreatedBy,
    AssignedTo: params.AssignedTo,
    StatusText: params.StatusText,
    Open:       true,
    CreatedOn:  now,
    UpdatedOn:  now,
  }

  id, err := c.deps.Mongodb.Insert(ctx, mongodb.InsertParams{
    CommonParams: c.commonParams(),
    Document:     issue,
  })
  if err != nil {
    return nil, fmt.Errorf("c.deps.Mongodb.Insert: %w", err)
  }

  oid, ok := id.(primitive.ObjectID)
  if !ok {
    return nil, fmt.Errorf("cast %v with type: %[1]T to: %T failed", id, primitive.ObjectID{})
  }
  issue.ID = oid

  log.
    WithFields(log.Fields{
      "issue.id":      oid.Hex(),
      "issue.project": issue.Project,
    }).
    Info("issue created")

  return issue, nil
}

func (c *Issues) Update(ctx context.Context, params models.UpdateIssueParams) error {
  id, err := parseIssueID(params.ID)
  if err != nil {
    return err
  }
  if !params.HasUpdates() {
    return ErrNoUpdateFields
  }

  matched, err := c.deps.Mongodb.Update(ctx, mongodb.UpdateParams{
    GetParams: mongodb.GetParams{
      CommonParams: c.commonParams(),
      Filters:      makeIssueFilters(id, params.Project),
    },
    Document: models.IssueUpdate{
      IssueTitle: params.IssueTitle,
      IssueText:  params.IssueText,
      CreatedBy:  params.CreatedBy,
      AssignedTo: params.AssignedTo,
      StatusText: params.StatusText,
      Open:       params.Open,
      UpdatedOn:  c.timestamp(),
    },
  })
  if err != nil {
    return fmt.Errorf("c.deps.Mongodb.Update: %w", err)
  }
  if matched == 0 {
    return fmt.Errorf("%w: _id: %s project: %s", mongodb.ErrNotFound, id, params.Project)
  }

  log.
    WithFields(log.Fields{
      "issue.id":      id.String(),
      "issue.project": params.Project,
    }).
    Info("issue updated")

  return nil
}

func (c *Issues) Delete(ctx context.Context, params models.DeleteIssueParams) error {
  id, err := parseIssueID(params.ID)
  if err != nil {
    return err
  }

  count, err := c.deps.Mongodb.Delete(ctx, mongodb.DeleteParams{
    CommonParams: c.commonParams(),
    Filters:      makeIssueFilters(id, params.Project),
  })
  if err != nil {
    return fmt.Errorf("c.deps.Mongodb.Delete: %w", err)
  }
  if count == 0 {
    return fmt.Errorf("%w: _id: %s project: %s", mongodb.ErrNotFound, id, params.Project)
  }

  log.
    WithFields(log.Fields{
      "issue.id":      id.String(),
      "issue.project": params.Project,
    }).
    Info("issue deleted")

  return nil
}

func parseIssueID(raw string) (models.IssueID, error) {
  if raw == "" {
    return models.IssueID{}, ErrMissingID
  }
  if !models.IsValidIssueID(raw) {
    return models.IssueID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
  }
  id, err := models.ParseIssueID(raw)
  if err != nil {
    return models.IssueID{}, errors.Join(ErrInvalidID, err)
  }
  return id, nil
}

package issues

import (
  "fmt"
  "time"

  set "github.com/deckarep/golang-set/v2"
  "github.com/ushakovn/issues/internal/deps/storage/mongodb"
  "github.com/ushakovn/issues/internal/models"
)

// Text fields a list request may filter on. Other keys never reach the query.
var filterFields = set.NewSet(
  "issue_title",
  "issue_text",
  "created_by",
  "assigned_to",
  "status_text",
)

func (c *Issues) commonParams() mongodb.CommonParams {
  return mongodb.CommonParams{
    Database:   c.config.Database,
    Collection: c.config.Collection,
    StructType: models.Issue{},
  }
}

// timestamp is truncated to the precision of BSON dates.
func (c *Issues) timestamp() time.Time {
  return c.now().UTC().Truncate(time.Millisecond)
}

func makeIssuesFilters(params models.ListIssuesParams) map[string]any {
  filters := map[string]any{
    "project": params.Project,
  }

  for key, value := range params.Fields {
    if value == "" || !filterFields.ContainsOne(key) {
      continue
    }
    filters[key] = value
  }

  if params.Open != nil {
    filters["open"] = *params.Open
  }

  return filters
}

func makeIssueFilters(id models.IssueID, project string) map[string]any {
  return map[string]any{
    "_id":     id.ObjectID(),
    "project": project,
  }
}

func makeListIssues(res []any) (list []*models.Issue, err error) {
  list = make([]*models.Issue, 0, len(res))

  for _, record := range res {
    issue, ok := record.(*models.Issue)
    if !ok {
      return nil, fmt.Errorf("cast %v with type: %[1]T to: %T failed", record, new(models.Issue))
    }

    list = append(list, issue)
  }

  return list, nil
}

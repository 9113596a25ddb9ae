package models

import (
  "fmt"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueID is a client supplied issue identifier checked against the storage id format.
type IssueID struct {
  raw string
  oid primitive.ObjectID
}

func ParseIssueID(raw string) (IssueID, error) {
  oid, err := primitive.ObjectIDFromHex(raw)
  if err != nil {
    return IssueID{}, fmt.Errorf("primitive.ObjectIDFromHex: %q: %w", raw, err)
  }
  return IssueID{
    raw: raw,
    oid: oid,
  }, nil
}

func IsValidIssueID(raw string) bool {
  return primitive.IsValidObjectID(raw)
}

func (id IssueID) ObjectID() primitive.ObjectID {
  return id.oid
}

func (id IssueID) String() string {
  return id.raw
}

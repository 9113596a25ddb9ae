package models

import (
  "time"

  "github.com/go-playground/validator/v10"
  "go.mongodb.org/mongo-driver/bson/primitive"
)

type Issue struct {
  ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
  Project    string             `bson:"project,omitempty" json:"-"`
  IssueTitle string             `bson:"issue_title" json:"issue_title"`
  IssueText  string             `bson:"issue_text" json:"issue_text"`
  CreatedBy  string             `bson:"created_by" json:"created_by"`
  AssignedTo string             `bson:"assigned_to" json:"assigned_to"`
  StatusText string             `bson:"status_text" json:"status_text"`
  Open       bool               `bson:"open" json:"open"`
  CreatedOn  time.Time          `bson:"created_on" json:"created_on"`
  UpdatedOn  time.Time          `bson:"updated_on" json:"updated_on"`
}

// IssueUpdate is a $set document: nil fields were not sent by the client.
type IssueUpdate struct {
  IssueTitle *string   `bson:"issue_title"`
  IssueText  *string   `bson:"issue_text"`
  CreatedBy  *string   `bson:"created_by"`
  AssignedTo *string   `bson:"assigned_to"`
  StatusText *string   `bson:"status_text"`
  Open       *bool     `bson:"open"`
  UpdatedOn  time.Time `bson:"updated_on"`
}

type ListIssuesParams struct {
  Project string
  Fields  map[string]string
  Open    *bool
}

type CreateIssueParams struct {
  Project    string `validate:"required"`
  IssueTitle string `validate:"required"`
  IssueText  string `validate:"required"`
  CreatedBy  string `validate:"required"`
  AssignedTo string
  StatusText string
}

func (p *CreateIssueParams) Validate() error {
  return validator.New().Struct(p)
}

type UpdateIssueParams struct {
  Project    string
  ID         string
  IssueTitle *string
  IssueText  *string
  CreatedBy  *string
  AssignedTo *string
  StatusText *string
  Open       *bool
}

func (p *UpdateIssueParams) HasUpdates() bool {
  return p.IssueTitle != nil ||
    p.IssueText != nil ||
    p.CreatedBy != nil ||
    p.AssignedTo != nil ||
    p.StatusText != nil ||
    p.Open != nil
}

type DeleteIssueParams struct {
  Project string
  ID      string
}

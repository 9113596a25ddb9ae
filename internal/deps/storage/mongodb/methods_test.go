package mongodb

import (
  "context"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/bson/primitive"
  "go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type testDocument struct {
  ID    primitive.ObjectID `bson:"_id,omitempty"`
  Title string             `bson:"title"`
  Open  bool               `bson:"open"`
}

var testCommonParams = CommonParams{
  Database:   "issues",
  Collection: "issues",
  StructType: testDocument{},
}

func TestClient_Methods(t *testing.T) {
  mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

  ctx := context.Background()

  mt.Run("find decodes documents", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    first := primitive.NewObjectID()
    second := primitive.NewObjectID()

    mt.AddMockResponses(mtest.CreateCursorResponse(0, "issues.issues", mtest.FirstBatch,
      bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "first"}, {Key: "open", Value: true}},
      bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "second"}},
    ))

    out, err := client.Find(ctx, FindParams{
      CommonParams: testCommonParams,
      Filters:      map[string]any{"project": "apitest"},
      Exclude:      []string{"project"},
    })
    require.NoError(mt, err)
    require.Len(mt, out, 2)

    doc, ok := out[0].(*testDocument)
    require.True(mt, ok)
    assert.Equal(mt, first, doc.ID)
    assert.Equal(mt, "first", doc.Title)
    assert.True(mt, doc.Open)

    doc, ok = out[1].(*testDocument)
    require.True(mt, ok)
    assert.Equal(mt, second, doc.ID)
    assert.False(mt, doc.Open)
  })

  mt.Run("find without struct type decodes maps", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateCursorResponse(0, "issues.issues", mtest.FirstBatch,
      bson.D{{Key: "title", Value: "first"}},
    ))

    out, err := client.Find(ctx, FindParams{
      CommonParams: CommonParams{Database: "issues", Collection: "issues"},
    })
    require.NoError(mt, err)
    require.Len(mt, out, 1)

    _, ok := out[0].(map[string]any)
    assert.True(mt, ok)
  })

  mt.Run("find command error", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
      Code:    2,
      Name:    "BadValue",
      Message: "bad filter",
    }))

    _, err := client.Find(ctx, FindParams{CommonParams: testCommonParams})
    assert.Error(mt, err)
  })

  mt.Run("insert returns generated id", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateSuccessResponse())

    id, err := client.Insert(ctx, InsertParams{
      CommonParams: testCommonParams,
      Document:     testDocument{Title: "new", Open: true},
    })
    require.NoError(mt, err)

    oid, ok := id.(primitive.ObjectID)
    require.True(mt, ok)
    assert.False(mt, oid.IsZero())
  })

  mt.Run("insert write error", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
      Index:   0,
      Code:    11000,
      Message: "duplicate key error",
    }))

    _, err := client.Insert(ctx, InsertParams{
      CommonParams: testCommonParams,
      Document:     testDocument{Title: "new"},
    })
    assert.Error(mt, err)
  })

  mt.Run("update returns matched count", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateSuccessResponse(
      bson.E{Key: "n", Value: 1},
      bson.E{Key: "nModified", Value: 1},
    ))

    matched, err := client.Update(ctx, UpdateParams{
      GetParams: GetParams{
        CommonParams: testCommonParams,
        Filters:      map[string]any{"_id": primitive.NewObjectID()},
      },
      Document: testDocument{Title: "updated"},
    })
    require.NoError(mt, err)
    assert.Equal(mt, int64(1), matched)
  })

  mt.Run("update without match", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateSuccessResponse(
      bson.E{Key: "n", Value: 0},
      bson.E{Key: "nModified", Value: 0},
    ))

    matched, err := client.Update(ctx, UpdateParams{
      GetParams: GetParams{
        CommonParams: testCommonParams,
        Filters:      map[string]any{"_id": primitive.NewObjectID()},
      },
      Document: testDocument{Title: "updated"},
    })
    require.NoError(mt, err)
    assert.Zero(mt, matched)
  })

  mt.Run("delete returns deleted count", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

    count, err := client.Delete(ctx, DeleteParams{
      CommonParams: testCommonParams,
      Filters:      map[string]any{"_id": primitive.NewObjectID()},
    })
    require.NoError(mt, err)
    assert.Equal(mt, int64(1), count)
  })

  mt.Run("delete command error", func(mt *mtest.T) {
    client := &Client{client: mt.Client}

    mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
      Code:    13,
      Name:    "Unauthorized",
      Message: "not authorized",
    }))

    _, err := client.Delete(ctx, DeleteParams{
      CommonParams: testCommonParams,
      Filters:      map[string]any{"_id": primitive.NewObjectID()},
    })
    assert.Error(mt, err)
  })
}

package mongodb

import (
  "reflect"
  "sort"
  "strings"

  "go.mongodb.org/mongo-driver/bson"
)

func makeBsonDUpdates(document any) bson.D {
  updates := bson.D{}

  typ := reflect.TypeOf(document)
  value := reflect.ValueOf(document)

  if typ.Kind() == reflect.Ptr {
    typ = typ.Elem()
    value = value.Elem()
  }

  for i := 0; i < typ.NumField(); i++ {
    field := typ.Field(i)

    key := bsonKey(field)
    if key == "" || key == "_id" {
      continue
    }

    val := value.Field(i)

    if !isZeroType(val) {
      update := bson.E{
        Key:   key,
        Value: val.Interface(),
      }
      updates = append(updates, update)
    }
  }

  return bson.D{{
    Key:   "$set",
    Value: updates,
  }}
}

// makeBsonDFilters sorts keys so equal filters produce equal documents.
func makeBsonDFilters(kv map[string]any) bson.D {
  keys := make([]string, 0, len(kv))
  for key := range kv {
    keys = append(keys, key)
  }
  sort.Strings(keys)

  out := bson.D{}

  for _, key := range keys {
    out = append(out, bson.E{
      Key:   key,
      Value: kv[key],
    })
  }

  return out
}

func makeBsonDExclusion(fields []string) bson.D {
  out := bson.D{}

  for _, field := range fields {
    out = append(out, bson.E{
      Key:   field,
      Value: 0,
    })
  }

  return out
}

func bsonKey(field reflect.StructField) string {
  if !field.IsExported() {
    return ""
  }
  tag := field.Tag.Get("bson")
  if tag == "-" {
    return ""
  }
  key, _, _ := strings.Cut(tag, ",")

  if key == "" {
    return strings.ToLower(field.Name)
  }
  return key
}

func isZeroType(value reflect.Value) bool {
  zero := reflect.Zero(value.Type()).Interface()

  switch value.Kind() {
  case reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
    return value.Len() == 0
  default:
    return reflect.DeepEqual(zero, value.Interface())
  }
}

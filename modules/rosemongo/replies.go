// Package rosemongo runs roseredis batches against MongoDB and reads command replies.
package rosemongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/isaymatato/roseredis"
)

type M = bson.M

// Doc returns reply as a bson.M. Ordered documents are converted.
func Doc(reply any) (M, bool) {

	switch r := reply.(type) {
	case M:
		return r, true
	case map[string]any:
		return M(r), true
	case bson.D:
		m := make(M, len(r))
		for _, e := range r {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}

// FirstBatch returns the documents of a find or aggregate reply.
func FirstBatch(reply any) []M {

	doc, ok := Doc(reply)
	if !ok {
		return nil
	}
	cursor, ok := Doc(doc["cursor"])
	if !ok {
		return nil
	}

	var batch []any
	switch b := cursor["firstBatch"].(type) {
	case bson.A:
		batch = b
	case []any:
		batch = b
	default:
		return nil
	}

	out := make([]M, 0, len(batch))
	for _, item := range batch {
		if d, ok := Doc(item); ok {
			out = append(out, d)
		}
	}
	return out
}

// First returns the first document of a find or aggregate reply.
func First(reply any) (M, bool) {
	batch := FirstBatch(reply)
	if len(batch) == 0 {
		return nil, false
	}
	return batch[0], true
}

// Count returns the "n" field of an insert, update, delete or count reply.
func Count(reply any) (int64, bool) {
	doc, ok := Doc(reply)
	if !ok {
		return 0, false
	}
	return roseredis.Int(doc["n"])
}

// ObjectID returns the hex form of an ObjectID field, which is what the result tree
// should carry for JSON output.
func ObjectID(doc M, key string) (string, bool) {
	id, ok := doc[key].(primitive.ObjectID)
	if !ok {
		return "", false
	}
	return id.Hex(), true
}

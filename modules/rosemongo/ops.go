package rosemongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/isaymatato/roseredis"
)

// FindOne sets the first document matching filter at path, or nil when nothing matches.
func FindOne(collection string, filter any, path string) roseredis.Op {
	return roseredis.Op{
		Command: bson.D{
			{Key: "find", Value: collection},
			{Key: "filter", Value: filter},
			{Key: "limit", Value: 1},
			{Key: "singleBatch", Value: true},
		},
		Handler: func(reply any) roseredis.Directive {
			doc, ok := First(reply)
			if !ok {
				return roseredis.SetKey(path, nil)
			}
			return roseredis.SetKey(path, map[string]any(doc))
		},
	}
}

// Find sets every document of the first batch matching filter at path.
func Find(collection string, filter any, path string) roseredis.Op {
	return roseredis.Op{
		Command: bson.D{
			{Key: "find", Value: collection},
			{Key: "filter", Value: filter},
		},
		Handler: func(reply any) roseredis.Directive {
			batch := FirstBatch(reply)
			docs := make([]any, len(batch))
			for i, d := range batch {
				docs[i] = map[string]any(d)
			}
			return roseredis.SetKey(path, docs)
		},
	}
}

// Insert inserts docs and adds the number inserted to countPath. An empty countPath
// merges nothing.
func Insert(collection string, countPath string, docs ...any) roseredis.Op {
	op := roseredis.Op{
		Command: bson.D{
			{Key: "insert", Value: collection},
			{Key: "documents", Value: bson.A(docs)},
		},
	}
	if countPath != "" {
		op.Handler = countHandler(countPath, true)
	}
	return op
}

// CountDocuments sets the number of documents matching filter at path.
func CountDocuments(collection string, filter any, path string) roseredis.Op {
	return roseredis.Op{
		Command: bson.D{
			{Key: "count", Value: collection},
			{Key: "query", Value: filter},
		},
		Handler: countHandler(path, false),
	}
}

func countHandler(path string, inc bool) roseredis.Handler {
	return func(reply any) roseredis.Directive {
		n, ok := Count(reply)
		if !ok {
			return roseredis.Directive{}
		}
		if inc {
			return roseredis.IncKey(path, n)
		}
		return roseredis.SetKey(path, n)
	}
}

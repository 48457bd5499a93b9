package rosemongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Executor runs each command document with Database.RunCommand, in batch order.
// Commands must be ordered documents (bson.D) unless they have a single key.
type Executor struct {
	DB *mongo.Database

	// Transaction runs the whole batch in a session transaction, so a failing command
	// aborts the ones before it. Needs a replica set or sharded cluster.
	Transaction bool
}

func New(db *mongo.Database) *Executor {
	return &Executor{DB: db}
}

// Exec implements roseredis.Executor. Replies are decoded as bson.M.
func (e *Executor) Exec(ctx context.Context, cmds []any) ([]any, error) {

	if !e.Transaction {
		return e.run(ctx, cmds)
	}

	sess, err := e.DB.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return e.run(sc, cmds)
	})
	if err != nil {
		return nil, err
	}

	replies, ok := out.([]any)
	if !ok {
		return nil, errors.New("transaction returned no replies")
	}
	return replies, nil
}

func (e *Executor) run(ctx context.Context, cmds []any) ([]any, error) {

	replies := make([]any, len(cmds))
	for i, cmd := range cmds {
		var doc M
		if err := e.DB.RunCommand(ctx, cmd).Decode(&doc); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		replies[i] = doc
	}
	return replies, nil
}

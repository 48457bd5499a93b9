// Package goredis submits roseredis batches through github.com/redis/go-redis.
package goredis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Executor sends each batch as one MULTI/EXEC transaction. Commands are argument lists
// ([]any or []string) or a single space separated string.
type Executor struct {
	Client redis.Cmdable

	// NoTx sends the batch as a plain pipeline instead of a transaction.
	NoTx bool
}

func New(client redis.Cmdable) *Executor {
	return &Executor{Client: client}
}

// Exec implements roseredis.Executor. A nil reply (redis.Nil) is returned as nil; any
// other command error fails the batch.
func (e *Executor) Exec(ctx context.Context, cmds []any) ([]any, error) {

	var pipe redis.Pipeliner
	if e.NoTx {
		pipe = e.Client.Pipeline()
	} else {
		pipe = e.Client.TxPipeline()
	}

	rcmds := make([]*redis.Cmd, len(cmds))
	for i, cmd := range cmds {
		args, err := Args(cmd)
		if err != nil {
			pipe.Discard()
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		rcmds[i] = pipe.Do(ctx, args...)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	replies := make([]any, len(rcmds))
	for i, c := range rcmds {
		v, err := c.Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		replies[i] = v
	}
	return replies, nil
}

var ErrEmptyCommand = errors.New("empty command")

// Args converts a raw command into the argument list go-redis expects.
func Args(cmd any) ([]any, error) {

	var args []any
	switch c := cmd.(type) {
	case []any:
		args = c
	case []string:
		args = make([]any, len(c))
		for i, s := range c {
			args[i] = s
		}
	case string:
		for _, f := range strings.Fields(c) {
			args = append(args, f)
		}
	default:
		return nil, fmt.Errorf("unsupported command type %T", cmd)
	}

	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}

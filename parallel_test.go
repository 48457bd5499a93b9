package roseredis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func echo(ctx context.Context, cmds []any) ([]any, error) {
	return cmds, nil
}

func TestInParallel(t *testing.T) {
	set := func(reply any) Directive {
		return SetKey("v", reply)
	}

	pipelines := make([]*Pipeline, 5)
	for i := range pipelines {
		pipelines[i] = NewPipeline(ExecutorFunc(echo), nil).Command(Op{Command: i, Handler: set})
	}

	res, err := InParallel(context.Background(), pipelines...)
	require.NoError(t, err)
	require.Len(t, res, 5)
	for i, r := range res {
		v, _ := r.Lookup("v")
		require.Equal(t, i, v)
	}
}

func TestInParallelFailure(t *testing.T) {
	fail := ExecutorFunc(func(ctx context.Context, cmds []any) ([]any, error) {
		return nil, errors.New("connection reset")
	})

	ok := NewPipeline(ExecutorFunc(echo), nil).Command("a")
	bad := NewPipeline(fail, nil).Command("b")

	res, err := InParallel(context.Background(), ok, bad)
	require.Nil(t, res)

	var execErr ExecutorError
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, bad.ID(), execErr.ID)
	require.Equal(t, Completed, ok.State())
}

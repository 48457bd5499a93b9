package roseredis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/oklog/ulid/v2"
)

// Executor sends a batch of raw commands to the store, usually as one transaction, and
// returns one reply per command in the same order.
type Executor interface {
	Exec(ctx context.Context, cmds []any) ([]any, error)
}

type ExecutorFunc func(ctx context.Context, cmds []any) ([]any, error)

func (f ExecutorFunc) Exec(ctx context.Context, cmds []any) ([]any, error) {
	return f(ctx, cmds)
}

type Logger interface {
	LogMessage(msg string)
	LogBatchStart(id ulid.ULID, cmds []any)
	LogBatchComplete(success bool, elapsed time.Duration, id ulid.ULID, n int)
	LogError(id ulid.ULID, err error)
}

type DefaultLogger struct{}

func (l DefaultLogger) LogMessage(msg string) {
	log.Print(msg)
}

func (l DefaultLogger) LogBatchStart(id ulid.ULID, cmds []any) {
	// Ignore
}

func (l DefaultLogger) LogBatchComplete(success bool, elapsed time.Duration, id ulid.ULID, n int) {

	// Column 1: Success or failure
	lbl := color.New(color.FgWhite).Add(color.BgGreen).Sprintf(" OK  ")
	if !success {
		lbl = color.New(color.FgWhite).Add(color.BgRed).Sprintf(" ERR ")
	}

	// Column 2: Time elapsed
	tclr := color.New(color.FgWhite, color.Faint)
	if elapsed > time.Millisecond {
		tclr = color.New(color.FgWhite).Add(color.BgCyan)
	}
	t := tclr.Sprintf("%13v", elapsed)

	// Column 3: Batch
	log.Print("|" + lbl + "| " + t + " | " + fmt.Sprintf("%s (%d commands)", id, n))
}

func (l DefaultLogger) LogError(id ulid.ULID, err error) {
	log.Printf("")
	log.Printf("Error: %s: %s", id, err)
	log.Printf("")
}

// VerboseLogger is a DefaultLogger that also prints every command of a batch.
type VerboseLogger struct {
	DefaultLogger
}

func (l VerboseLogger) LogBatchStart(id ulid.ULID, cmds []any) {
	log.Printf("%s:", id)
	for i, cmd := range cmds {
		log.Printf("  %3d  %s", i, CommandString(cmd))
	}
}

// Exec submits the queued commands as one batch and merges every handler's directive
// into a fresh result, in queue order.
//
// An empty pipeline returns an empty result without calling the executor. If the executor
// fails, or answers with the wrong number of replies, Exec returns an ExecutorError and no
// result; the executor's error is only passed to the Logger.
func (p *Pipeline) Exec(ctx context.Context) (*Map, error) {

	if p.state != Building {
		return nil, ErrSubmitted
	}
	p.state = Submitted

	if p.err != nil {
		p.state = Failed
		return nil, p.err
	}

	if len(p.commands) == 0 {
		p.state = Completed
		return NewMap(), nil
	}

	if p.lgr != nil {
		p.lgr.LogMessage("Starting batch " + p.id.String() + "...")
		p.lgr.LogBatchStart(p.id, p.commands)
	}

	t := time.Now()

	replies, err := p.exec.Exec(ctx, p.commands)
	if err == nil && len(replies) != len(p.commands) {
		err = fmt.Errorf("got %d replies for %d commands", len(replies), len(p.commands))
	}

	if p.lgr != nil {
		p.lgr.LogBatchComplete(err == nil, time.Since(t), p.id, len(p.commands))
	}

	if err != nil {
		p.state = Failed
		if p.lgr != nil {
			p.lgr.LogError(p.id, err)
		}
		return nil, ExecutorError{ID: p.id}
	}

	res, err := p.merge(replies)
	if err != nil {
		p.state = Failed
		if p.lgr != nil {
			p.lgr.LogError(p.id, err)
		}
		return nil, err
	}

	p.state = Completed
	return res, nil
}

func (p *Pipeline) merge(replies []any) (*Map, error) {

	res := NewMap()
	for i, reply := range replies {
		h := p.handlers[i]
		if h == nil {
			continue
		}
		if err := h(reply).Apply(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

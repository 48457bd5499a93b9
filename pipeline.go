package roseredis

import (
	"github.com/oklog/ulid/v2"
)

type State int

const (
	Building State = iota
	Submitted
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Submitted:
		return "submitted"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Pipeline queues commands and their reply handlers for a single batch. Commands are
// sent, their replies are paired with handlers, and handler output is merged, all in queue
// order. A Pipeline is single use and not safe for concurrent use.
//
// Pipelines should be defined by queueing each command with Command or Call. The
// definition should read like:
//
//	res, err := client.Multi().
//	    Command([]any{"DEL", "k"}).
//	    Call("setTest", "v1").
//	    Call("getTest").
//	    Exec(ctx)
type Pipeline struct {
	id       ulid.ULID
	exec     Executor
	lgr      Logger
	ops      *Registry
	commands []any
	handlers []Handler
	state    State
	err      error // sticky, returned by Exec
}

// NewPipeline returns an empty pipeline that submits to exec. lgr may be nil.
func NewPipeline(exec Executor, lgr Logger) *Pipeline {
	return &Pipeline{
		id:   ulid.Make(),
		exec: exec,
		lgr:  lgr,
	}
}

func (p *Pipeline) ID() ulid.ULID {
	return p.id
}

func (p *Pipeline) State() State {
	return p.state
}

func (p *Pipeline) Len() int {
	return len(p.commands)
}

// Commands returns a copy of the queued raw commands in batch order.
func (p *Pipeline) Commands() []any {
	return append([]any(nil), p.commands...)
}

// Command queues cmd. cmd is either a raw command, which gets no handler, or an Op. A nil
// *Op queues an empty command with no handler.
func (p *Pipeline) Command(cmd any) *Pipeline {

	if p.state != Building {
		panic("roseredis: command queued on a " + p.state.String() + " pipeline")
	}

	var op Op
	switch c := cmd.(type) {
	case Op:
		op = c
	case *Op:
		if c != nil {
			op = *c
		}
	default:
		op = Op{Command: cmd}
	}

	p.commands = append(p.commands, op.Command)
	p.handlers = append(p.handlers, op.Handler)
	return p
}

// Call queues the Op registered under name. An unknown name makes Exec fail without
// sending anything.
func (p *Pipeline) Call(name string, args ...any) *Pipeline {

	var fn OpFunc
	var ok bool
	if p.ops != nil {
		fn, ok = p.ops.Lookup(name)
	}
	if !ok {
		if p.err == nil {
			p.err = UnknownOperationError{Name: name}
		}
		return p
	}

	return p.Command(fn(args...))
}

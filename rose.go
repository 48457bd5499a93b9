// Package roseredis batches commands for a key-value store into one transaction and folds
// the replies into a single result tree.
package roseredis

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
)

type H map[string]any

// Handler turns the reply of its command into a Directive. Handlers run synchronously,
// one after another in queue order, so a handler must not block.
type Handler func(reply any) Directive

// Op is a command together with the handler for its reply. Handler may be nil.
type Op struct {
	Command any
	Handler Handler
}

// OpFunc builds an Op from call arguments. It is what gets registered under a name.
type OpFunc func(args ...any) Op

// Errors

type InvalidPathError struct {
	Path string
}

func (e InvalidPathError) Error() string {
	return "invalid path " + strconv.Quote(e.Path)
}

type InvalidDeltaError struct {
	Path  string
	Delta any
}

func (e InvalidDeltaError) Error() string {
	return fmt.Sprintf("invalid delta %v (%T) for path %q", e.Delta, e.Delta, e.Path)
}

// ExecutorError is returned when the executor fails a batch. The backend error is logged
// and dropped; ID identifies the log lines.
type ExecutorError struct {
	ID ulid.ULID
}

func (e ExecutorError) Error() string {
	return "pipeline " + e.ID.String() + ": something went wrong"
}

type UnknownOperationError struct {
	Name string
}

func (e UnknownOperationError) Error() string {
	return "unknown operation " + strconv.Quote(e.Name)
}

var ErrSubmitted = errors.New("pipeline already submitted")
